// Package store persists the course catalog in a Badger key-value
// database and fans out change notifications to in-process subscribers
// and SSE clients.
package store

import (
	"github.com/go-json-experiment/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/loacademie/academie-server/internal/logger"
)

// EventEmitter is the interface for emitting SSE events.
// Store uses this to broadcast changes without depending on SSE
// implementation details.
type EventEmitter interface {
	Emit(event any)
}

// NoopEmitter is a no-op implementation of EventEmitter for testing.
type NoopEmitter struct{}

// Emit implements EventEmitter.Emit as a no-op.
func (NoopEmitter) Emit(_ any) {}

// NewNoopEmitter creates a new no-op emitter for testing.
func NewNoopEmitter() EventEmitter {
	return NoopEmitter{}
}

// Store errors.
var (
	ErrCourseNotFound = errors.New("course not found")
)

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *logger.Logger

	// SSE event emitter for broadcasting changes to other tabs.
	eventEmitter EventEmitter

	// In-process subscribers, see subscribers.go.
	subs subscriberHub
}

// New creates a new Store instance with the given database path and
// event emitter. The emitter is required and used to broadcast catalog
// changes via SSE.
func New(path string, log *logger.Logger, emitter EventEmitter) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes survive a crash
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	store := &Store{
		db:           db,
		logger:       log,
		eventEmitter: emitter,
	}

	if log != nil {
		log.Info("Badger database opened successfully", "path", path)
	}

	return store, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	return s.db.Close()
}

// RunValueLogGC reclaims space in Badger's value log. Called
// periodically by the maintenance scheduler. Badger returns
// ErrNoRewrite when there is nothing to collect, which is not an error
// for the caller.
func (s *Store) RunValueLogGC() error {
	for {
		err := s.db.RunValueLogGC(0.5)
		if errors.Is(err, badger.ErrNoRewrite) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("value log gc: %w", err)
		}
	}
}

// get retrieves a value by key into dest via JSON.
func (s *Store) get(key []byte, dest any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dest)
		})
	})
}
