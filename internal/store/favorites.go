package store

import (
	"context"
	"github.com/go-json-experiment/json"
	"errors"
	"sort"

	"github.com/dgraph-io/badger/v4"

	"github.com/loacademie/academie-server/internal/sse"
)

// Key prefix for per-profile favorites.
const favoritesPrefix = "favorites:" // favorites:{profileID} → []courseID JSON

// ListFavorites returns the profile's favorite course IDs, sorted. A
// profile with no record, or a record that fails to decode, reads as
// having no favorites.
func (s *Store) ListFavorites(ctx context.Context, profileID string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var ids []string
	err := s.get([]byte(favoritesPrefix+profileID), &ids)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return []string{}, nil
	}
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("undecodable favorites record, treating as empty",
				"profile_id", profileID, "error", err)
		}
		return []string{}, nil
	}

	sort.Strings(ids)
	return ids, nil
}

// FavoriteSet returns the profile's favorites as a membership set for
// the filter engine.
func (s *Store) FavoriteSet(ctx context.Context, profileID string) (map[string]bool, error) {
	ids, err := s.ListFavorites(ctx, profileID)
	if err != nil {
		return nil, err
	}

	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// ToggleFavorite flips the favorite state of one course for a profile
// and reports the new state. Toggling does not require the course to
// exist; a stale favorite simply never matches a visible course.
func (s *Store) ToggleFavorite(ctx context.Context, profileID, courseID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var favorite bool
	key := []byte(favoritesPrefix + profileID)

	err := s.db.Update(func(txn *badger.Txn) error {
		var ids []string

		item, err := txn.Get(key)
		if err == nil {
			verr := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &ids)
			})
			if verr != nil {
				ids = nil // corrupt record resets to empty
			}
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		idx := -1
		for i, id := range ids {
			if id == courseID {
				idx = i
				break
			}
		}

		if idx >= 0 {
			ids = append(ids[:idx], ids[idx+1:]...)
			favorite = false
		} else {
			ids = append(ids, courseID)
			favorite = true
		}

		data, err := json.Marshal(ids)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
	if err != nil {
		return false, err
	}

	s.eventEmitter.Emit(sse.NewFavoriteToggledEvent(profileID, courseID, favorite))

	return favorite, nil
}
