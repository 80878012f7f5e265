package store

import (
	"context"
	"github.com/go-json-experiment/json"
	"errors"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/loacademie/academie-server/internal/domain"
	"github.com/loacademie/academie-server/internal/sse"
)

// Key prefix for course storage.
const coursePrefix = "course:" // course:{id} → Course JSON

// GetCourse retrieves a course by ID.
func (s *Store) GetCourse(ctx context.Context, courseID string) (*domain.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var c domain.Course
	err := s.get([]byte(coursePrefix+courseID), &c)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// ListCourses returns every stored course, most recently touched first.
// A save moves its course to the front of the list, so clients see the
// freshest edits on top. Records that fail to decode are skipped rather
// than failing the whole listing.
func (s *Store) ListCourses(ctx context.Context) ([]domain.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefix := []byte(coursePrefix)
	var courses []domain.Course
	skipped := 0

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchSize = 100

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var c domain.Course
			err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &c)
			})
			if err != nil {
				skipped++
				continue
			}
			courses = append(courses, c)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	if skipped > 0 && s.logger != nil {
		s.logger.Warn("skipped undecodable course records", "count", skipped)
	}

	sort.SliceStable(courses, func(i, j int) bool {
		return courses[i].UpdatedAt.After(courses[j].UpdatedAt)
	})

	return courses, nil
}

// SaveCourse upserts a course. New courses get their CreatedAt stamped;
// existing ones keep it. UpdatedAt always advances, which is what moves
// the course to the front of ListCourses.
func (s *Store) SaveCourse(ctx context.Context, course *domain.Course) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	existing, err := s.GetCourse(ctx, course.ID)
	if err != nil && !errors.Is(err, ErrCourseNotFound) {
		return err
	}
	created := existing == nil

	if created {
		course.CreatedAt = time.Now()
	} else {
		course.CreatedAt = existing.CreatedAt
	}
	course.Touch()

	data, err := json.Marshal(course)
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(coursePrefix+course.ID), data)
	})
	if err != nil {
		return err
	}

	if created {
		s.eventEmitter.Emit(sse.NewCourseCreatedEvent(course))
	} else {
		s.eventEmitter.Emit(sse.NewCourseUpdatedEvent(course))
	}
	s.notifySubscribers(ctx)

	return nil
}

// DeleteCourse removes a course. Deleting an absent ID is a no-op and
// emits nothing.
func (s *Store) DeleteCourse(ctx context.Context, courseID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := s.GetCourse(ctx, courseID)
	if errors.Is(err, ErrCourseNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(coursePrefix + courseID))
	})
	if err != nil {
		return err
	}

	s.eventEmitter.Emit(sse.NewCourseDeletedEvent(courseID))
	s.notifySubscribers(ctx)

	return nil
}

// ResetCourses replaces the whole catalog in one transaction and sends
// a single reset notification instead of one event per course.
func (s *Store) ResetCourses(ctx context.Context, courses []domain.Course) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	now := time.Now()

	err := s.db.Update(func(txn *badger.Txn) error {
		// Drop all existing course records.
		prefix := []byte(coursePrefix)
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		var stale [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keyCopy := make([]byte, len(it.Item().Key()))
			copy(keyCopy, it.Item().Key())
			stale = append(stale, keyCopy)
		}
		it.Close()

		for _, k := range stale {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}

		for i := range courses {
			c := &courses[i]
			if c.CreatedAt.IsZero() {
				c.CreatedAt = now
			}
			c.UpdatedAt = now

			data, err := json.Marshal(c)
			if err != nil {
				return err
			}
			if err := txn.Set([]byte(coursePrefix+c.ID), data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("catalog reset", "count", len(courses))
	}

	s.eventEmitter.Emit(sse.NewCatalogResetEvent(len(courses)))
	s.notifySubscribers(ctx)

	return nil
}

// CountCourses returns the number of stored course records.
func (s *Store) CountCourses(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	prefix := []byte(coursePrefix)
	count := 0

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})

	return count, err
}

// EnsureSeeded loads the demo catalog when no readable course exists,
// so a fresh install or a fully unreadable catalog starts with content
// instead of a blank screen. Counting via ListCourses matters here:
// raw keys may all hold undecodable values.
func (s *Store) EnsureSeeded(ctx context.Context) error {
	courses, err := s.ListCourses(ctx)
	if err != nil {
		return err
	}
	if len(courses) > 0 {
		return nil
	}

	if s.logger != nil {
		s.logger.Info("no readable courses, seeding demo catalog")
	}
	return s.ResetCourses(ctx, domain.SeedCourses())
}
