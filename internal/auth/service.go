package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/loacademie/academie-server/internal/errors"
	"github.com/loacademie/academie-server/internal/logger"
)

// Service verifies the admin password and manages opaque session
// tokens in memory. Tokens do not survive a restart, which is fine for
// a single-admin catalog: logging in again is cheap.
type Service struct {
	passwordHash string
	tokenTTL     time.Duration
	logger       *logger.Logger

	mu     sync.Mutex
	tokens map[string]time.Time // token → expiry
	now    func() time.Time
}

// NewService creates an auth service. An empty passwordHash disables
// admin login entirely; every Login attempt then fails.
func NewService(passwordHash string, tokenTTL time.Duration, log *logger.Logger) *Service {
	return &Service{
		passwordHash: passwordHash,
		tokenTTL:     tokenTTL,
		logger:       log,
		tokens:       make(map[string]time.Time),
		now:          time.Now,
	}
}

// Enabled reports whether an admin password hash is configured.
func (s *Service) Enabled() bool {
	return s.passwordHash != ""
}

// Login checks the password and returns a fresh session token with its
// expiry. Wrong passwords and a disabled gate both come back as
// invalid credentials so probes learn nothing.
func (s *Service) Login(password string) (string, time.Time, error) {
	if !s.Enabled() {
		if s.logger != nil {
			s.logger.Warn("admin login attempted but no password hash configured")
		}
		return "", time.Time{}, errors.InvalidCredentials("invalid credentials")
	}

	ok, err := VerifyPassword(password, s.passwordHash)
	if err != nil {
		return "", time.Time{}, errors.Internal("failed to verify password").WithCause(err)
	}
	if !ok {
		return "", time.Time{}, errors.InvalidCredentials("invalid credentials")
	}

	token, err := generateToken()
	if err != nil {
		return "", time.Time{}, errors.Internal("failed to generate token").WithCause(err)
	}

	expiry := s.now().Add(s.tokenTTL)

	s.mu.Lock()
	s.sweepLocked()
	s.tokens[token] = expiry
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info("admin logged in", "expires_at", expiry)
	}

	return token, expiry, nil
}

// Verify reports whether the token names a live admin session.
func (s *Service) Verify(token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.tokens[token]
	if !ok {
		return false
	}
	if s.now().After(expiry) {
		delete(s.tokens, token)
		return false
	}
	return true
}

// Logout revokes a token. Revoking an unknown token is a no-op.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}

// sweepLocked drops expired tokens. Caller holds s.mu.
func (s *Service) sweepLocked() {
	now := s.now()
	for token, expiry := range s.tokens {
		if now.After(expiry) {
			delete(s.tokens, token)
		}
	}
}

// generateToken returns 32 bytes of randomness, URL-safe encoded.
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
