package store

import (
	"context"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loacademie/academie-server/internal/domain"
)

func writeRawRecord(t *testing.T, s *Store, id string, value []byte) {
	t.Helper()
	require.NoError(t, s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(coursePrefix+id), value)
	}))
}

func TestEnsureSeededReplacesUnreadableCatalog(t *testing.T) {
	s, err := New(t.TempDir(), nil, NewNoopEmitter())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	// Every stored record is undecodable, so the catalog reads as empty
	// even though keys exist.
	writeRawRecord(t, s, "kapot-a", []byte("{not json"))
	writeRawRecord(t, s, "kapot-b", []byte(""))

	require.NoError(t, s.EnsureSeeded(ctx))

	courses, err := s.ListCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, len(domain.SeedCourses()))

	// The unreadable records were dropped, not left shadowing the seed.
	_, err = s.GetCourse(ctx, "kapot-a")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestEnsureSeededKeepsReadableCourses(t *testing.T) {
	s, err := New(t.TempDir(), nil, NewNoopEmitter())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	require.NoError(t, s.SaveCourse(ctx, &domain.Course{
		ID:        "crs-goed",
		Title:     "Leesbaar",
		Organizer: domain.OrganizerKVLO,
		Date:      "2030-01-01",
		Location:  "Zeist",
		Region:    domain.RegionWest,
	}))
	writeRawRecord(t, s, "kapot", []byte("{not json"))

	// One readable course means the catalog is not empty, so no reseed.
	require.NoError(t, s.EnsureSeeded(ctx))

	courses, err := s.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "crs-goed", courses[0].ID)
}
