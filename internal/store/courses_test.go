package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loacademie/academie-server/internal/domain"
	"github.com/loacademie/academie-server/internal/sse"
	"github.com/loacademie/academie-server/internal/store"
)

// captureEmitter records emitted events for assertions.
type captureEmitter struct {
	mu     sync.Mutex
	events []sse.Event
}

func (c *captureEmitter) Emit(event any) {
	evt, ok := event.(sse.Event)
	if !ok {
		return
	}
	c.mu.Lock()
	c.events = append(c.events, evt)
	c.mu.Unlock()
}

func (c *captureEmitter) types() []sse.EventType {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]sse.EventType, len(c.events))
	for i, e := range c.events {
		out[i] = e.Type
	}
	return out
}

func setupTestStore(t *testing.T) (*store.Store, *captureEmitter) {
	t.Helper()

	emitter := &captureEmitter{}
	s, err := store.New(t.TempDir(), nil, emitter)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s, emitter
}

func makeCourse(id, title, date string) *domain.Course {
	return &domain.Course{
		ID:        id,
		Title:     title,
		Organizer: domain.OrganizerKVLO,
		Date:      date,
		Location:  "Zeist",
		Region:    domain.RegionWest,
		Price:     99.50,
		URL:       "https://example.org/" + id,
	}
}

func TestCourseCRUD(t *testing.T) {
	s, emitter := setupTestStore(t)
	ctx := context.Background()

	course := makeCourse("crs-1", "Studiedag", "2026-01-26")
	require.NoError(t, s.SaveCourse(ctx, course))
	assert.False(t, course.CreatedAt.IsZero())
	assert.False(t, course.UpdatedAt.IsZero())

	got, err := s.GetCourse(ctx, "crs-1")
	require.NoError(t, err)
	assert.Equal(t, "Studiedag", got.Title)

	// Update keeps CreatedAt, advances UpdatedAt.
	created := got.CreatedAt
	time.Sleep(5 * time.Millisecond)
	got.Title = "Studiedag LO"
	require.NoError(t, s.SaveCourse(ctx, got))

	updated, err := s.GetCourse(ctx, "crs-1")
	require.NoError(t, err)
	assert.Equal(t, "Studiedag LO", updated.Title)
	assert.Equal(t, created.UnixNano(), updated.CreatedAt.UnixNano())
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	require.NoError(t, s.DeleteCourse(ctx, "crs-1"))
	_, err = s.GetCourse(ctx, "crs-1")
	assert.ErrorIs(t, err, store.ErrCourseNotFound)

	assert.Equal(t, []sse.EventType{
		sse.EventCourseCreated,
		sse.EventCourseUpdated,
		sse.EventCourseDeleted,
	}, emitter.types())
}

func TestSaveSameIDIsUpsert(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveCourse(ctx, makeCourse("crs-1", "Eerste", "2026-01-26")))
	require.NoError(t, s.SaveCourse(ctx, makeCourse("crs-1", "Tweede", "2026-02-10")))

	count, err := s.CountCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := s.GetCourse(ctx, "crs-1")
	require.NoError(t, err)
	assert.Equal(t, "Tweede", got.Title)
}

func TestListCoursesFreshestFirst(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveCourse(ctx, makeCourse("crs-a", "A", "2026-01-26")))
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, s.SaveCourse(ctx, makeCourse("crs-b", "B", "2026-02-10")))
	time.Sleep(5 * time.Millisecond)

	// Re-saving A moves it back to the front.
	a, err := s.GetCourse(ctx, "crs-a")
	require.NoError(t, err)
	require.NoError(t, s.SaveCourse(ctx, a))

	courses, err := s.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "crs-a", courses[0].ID)
	assert.Equal(t, "crs-b", courses[1].ID)
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	s, emitter := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.DeleteCourse(ctx, "crs-nope"))
	assert.Empty(t, emitter.types())
}

func TestResetCoursesReplacesCatalog(t *testing.T) {
	s, emitter := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveCourse(ctx, makeCourse("crs-old", "Oud", "2025-06-01")))

	fresh := []domain.Course{
		*makeCourse("crs-x", "X", "2026-03-05"),
		*makeCourse("crs-y", "Y", "2026-03-18"),
	}
	require.NoError(t, s.ResetCourses(ctx, fresh))

	courses, err := s.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 2)

	_, err = s.GetCourse(ctx, "crs-old")
	assert.ErrorIs(t, err, store.ErrCourseNotFound)

	// Bulk replace sends one reset event, not per-course events.
	types := emitter.types()
	require.NotEmpty(t, types)
	assert.Equal(t, sse.EventCatalogReset, types[len(types)-1])
	assert.NotContains(t, types[1:], sse.EventCourseCreated)
}

func TestEnsureSeeded(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.EnsureSeeded(ctx))

	courses, err := s.ListCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, len(domain.SeedCourses()))

	// Seeding is idempotent: a populated store is left alone.
	require.NoError(t, s.DeleteCourse(ctx, courses[0].ID))
	require.NoError(t, s.EnsureSeeded(ctx))

	after, err := s.CountCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(courses)-1, after)
}

func TestSubscribeFiresImmediatelyAndOnMutations(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveCourse(ctx, makeCourse("crs-1", "Eerste", "2026-01-26")))

	var mu sync.Mutex
	var snapshots [][]domain.Course
	unsubscribe, err := s.Subscribe(ctx, func(courses []domain.Course) {
		mu.Lock()
		snapshots = append(snapshots, courses)
		mu.Unlock()
	})
	require.NoError(t, err)

	mu.Lock()
	require.Len(t, snapshots, 1, "subscriber fires immediately")
	assert.Len(t, snapshots[0], 1)
	mu.Unlock()

	require.NoError(t, s.SaveCourse(ctx, makeCourse("crs-2", "Tweede", "2026-02-10")))
	require.NoError(t, s.DeleteCourse(ctx, "crs-1"))

	mu.Lock()
	require.Len(t, snapshots, 3)
	assert.Len(t, snapshots[1], 2)
	assert.Len(t, snapshots[2], 1)
	mu.Unlock()

	unsubscribe()
	unsubscribe() // safe to call twice
	assert.Zero(t, s.SubscriberCount())

	require.NoError(t, s.SaveCourse(ctx, makeCourse("crs-3", "Derde", "2026-03-01")))
	mu.Lock()
	assert.Len(t, snapshots, 3, "no notifications after unsubscribe")
	mu.Unlock()
}
