package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loacademie/academie-server/internal/sse"
)

func TestToggleFavorite(t *testing.T) {
	s, emitter := setupTestStore(t)
	ctx := context.Background()

	on, err := s.ToggleFavorite(ctx, "profile-1", "crs-a")
	require.NoError(t, err)
	assert.True(t, on)

	on, err = s.ToggleFavorite(ctx, "profile-1", "crs-b")
	require.NoError(t, err)
	assert.True(t, on)

	ids, err := s.ListFavorites(ctx, "profile-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"crs-a", "crs-b"}, ids)

	// Second toggle removes.
	on, err = s.ToggleFavorite(ctx, "profile-1", "crs-a")
	require.NoError(t, err)
	assert.False(t, on)

	ids, err = s.ListFavorites(ctx, "profile-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"crs-b"}, ids)

	// Events are scoped to the owning profile.
	require.Len(t, emitter.events, 3)
	for _, evt := range emitter.events {
		assert.Equal(t, sse.EventFavoriteToggled, evt.Type)
		assert.Equal(t, "profile-1", evt.ProfileID)
	}
}

func TestFavoritesIsolatedPerProfile(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	_, err := s.ToggleFavorite(ctx, "profile-1", "crs-a")
	require.NoError(t, err)

	ids, err := s.ListFavorites(ctx, "profile-2")
	require.NoError(t, err)
	assert.Empty(t, ids)

	set, err := s.FavoriteSet(ctx, "profile-1")
	require.NoError(t, err)
	assert.True(t, set["crs-a"])
	assert.False(t, set["crs-b"])
}

func TestListFavoritesUnknownProfileIsEmpty(t *testing.T) {
	s, _ := setupTestStore(t)

	ids, err := s.ListFavorites(context.Background(), "profile-nope")
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestFavoriteOfDeletedCourseSurvivesToggle(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveCourse(ctx, makeCourse("crs-a", "A", "2026-01-26")))
	_, err := s.ToggleFavorite(ctx, "profile-1", "crs-a")
	require.NoError(t, err)

	// Deleting the course leaves the favorite record alone; it simply
	// stops matching anything visible.
	require.NoError(t, s.DeleteCourse(ctx, "crs-a"))

	ids, err := s.ListFavorites(ctx, "profile-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"crs-a"}, ids)
}
