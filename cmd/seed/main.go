// Package main provides a tool to reset the database to the demo catalog.
//
// Usage:
//
//	go run ./cmd/seed
//	DB_PATH=/srv/academie/db go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/loacademie/academie-server/internal/config"
	"github.com/loacademie/academie-server/internal/domain"
	"github.com/loacademie/academie-server/internal/store"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		// Same default root as the server's config loader, so the seed
		// lands in the database the server actually opens.
		base, err := config.DefaultStoragePath()
		if err != nil {
			log.Fatalf("Failed to resolve storage path: %v", err)
		}
		dbPath = filepath.Join(base, "db")
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := store.New(dbPath, nil, store.NewNoopEmitter())
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	seed := domain.SeedCourses()
	if err := s.ResetCourses(context.Background(), seed); err != nil {
		log.Fatalf("Failed to reset catalog: %v", err)
	}

	fmt.Printf("Catalog reset to %d seed courses\n", len(seed))
}
