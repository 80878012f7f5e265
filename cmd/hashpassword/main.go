// Package main provides a tool to generate the admin password hash.
//
// The output goes into the ADMIN_PASSWORD_HASH environment variable.
//
// Usage:
//
//	go run ./cmd/hashpassword
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/loacademie/academie-server/internal/auth"
)

func main() {
	fmt.Print("Password: ")

	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}
	password = strings.TrimRight(password, "\r\n")

	if password == "" {
		log.Fatal("Password must not be empty")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	fmt.Println()
	fmt.Println("Add this to your environment:")
	fmt.Printf("ADMIN_PASSWORD_HASH='%s'\n", hash)
}
