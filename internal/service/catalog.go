// Package service provides the business logic layer between the HTTP
// handlers and the store plus the pure derivation engines.
package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/loacademie/academie-server/internal/calendar"
	"github.com/loacademie/academie-server/internal/catalog"
	"github.com/loacademie/academie-server/internal/domain"
	"github.com/loacademie/academie-server/internal/errors"
	"github.com/loacademie/academie-server/internal/geo"
	"github.com/loacademie/academie-server/internal/id"
	"github.com/loacademie/academie-server/internal/logger"
	"github.com/loacademie/academie-server/internal/store"
	"github.com/loacademie/academie-server/internal/validation"
)

// CatalogService orchestrates catalog operations.
type CatalogService struct {
	store     *store.Store
	validator *validation.Validator
	logger    *logger.Logger
	now       func() time.Time

	// Live full-collection snapshot, kept current through the store's
	// subscriber hub.
	mu          sync.RWMutex
	snapshot    []domain.Course
	unsubscribe func()
}

// NewCatalogService creates a new catalog service and subscribes it to
// the store, so the snapshot tracks every mutation from registration on.
func NewCatalogService(st *store.Store, validator *validation.Validator, log *logger.Logger) (*CatalogService, error) {
	s := &CatalogService{
		store:     st,
		validator: validator,
		logger:    log,
		now:       time.Now,
	}

	unsubscribe, err := st.Subscribe(context.Background(), s.setSnapshot)
	if err != nil {
		return nil, err
	}
	s.unsubscribe = unsubscribe

	return s, nil
}

// Close drops the store subscription.
func (s *CatalogService) Close() {
	s.unsubscribe()
}

func (s *CatalogService) setSnapshot(courses []domain.Course) {
	s.mu.Lock()
	s.snapshot = courses
	s.mu.Unlock()
}

// Snapshot returns the whole catalog as of the last mutation, hidden
// courses included. The assistant uses this as model context, so no
// view filter can make it report an existing course as missing.
func (s *CatalogService) Snapshot() []domain.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.snapshot)
}

// ListOptions carries the per-request view context.
type ListOptions struct {
	Filters domain.SearchFilters
	Sort    domain.SortOption
	// ProfileID selects whose favorites apply, empty means none.
	ProfileID     string
	FavoritesOnly bool
	// Admin lifts past-date suppression.
	Admin bool
}

// ListVisible returns the filtered, sorted course list for one view.
func (s *CatalogService) ListVisible(ctx context.Context, opts ListOptions) ([]domain.Course, error) {
	courses, err := s.store.ListCourses(ctx)
	if err != nil {
		return nil, err
	}

	favorites := map[string]bool{}
	if opts.ProfileID != "" {
		favorites, err = s.store.FavoriteSet(ctx, opts.ProfileID)
		if err != nil {
			return nil, err
		}
	}

	visible := catalog.Visible(courses, opts.Filters, favorites, catalog.Options{
		Today:         catalog.Today(s.now()),
		Admin:         opts.Admin,
		FavoritesOnly: opts.FavoritesOnly,
	})

	if opts.Sort != "" {
		if !opts.Sort.Valid() {
			return nil, errors.Validation("unknown sort option")
		}
		visible = catalog.SortCourses(visible, opts.Sort)
	}

	return visible, nil
}

// GetCourse returns one course by ID.
func (s *CatalogService) GetCourse(ctx context.Context, courseID string) (*domain.Course, error) {
	return s.store.GetCourse(ctx, courseID)
}

// SaveCourse validates and upserts a course. A missing ID marks a new
// course and gets one generated.
func (s *CatalogService) SaveCourse(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	if course.ID == "" {
		generated, err := id.Generate("crs")
		if err != nil {
			return nil, errors.Internal("failed to generate course id").WithCause(err)
		}
		course.ID = generated
		course.IsNew = true
	}

	if course.URL == "" {
		course.URL = domain.NoURL
	}

	if err := s.validator.Validate(course); err != nil {
		return nil, err
	}

	if err := s.store.SaveCourse(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse removes a course by ID.
func (s *CatalogService) DeleteCourse(ctx context.Context, courseID string) error {
	return s.store.DeleteCourse(ctx, courseID)
}

// ResetToSeed replaces the catalog with the demo seed set.
func (s *CatalogService) ResetToSeed(ctx context.Context) (int, error) {
	seed := domain.SeedCourses()
	if err := s.store.ResetCourses(ctx, seed); err != nil {
		return 0, err
	}
	return len(seed), nil
}

// Tags returns the tag vocabulary of the whole collection, independent
// of active filters.
func (s *CatalogService) Tags(ctx context.Context) ([]string, error) {
	courses, err := s.store.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.TagVocabulary(courses), nil
}

// Marker is one placed map pin: the course plus its resolved position.
type Marker struct {
	Course   domain.Course `json:"course"`
	Position geo.Point     `json:"position"`
}

// Markers places the visible course set on the map. Online courses are
// left out. Each call runs a fresh placement pass, so the same catalog
// and filters always yield the same layout.
func (s *CatalogService) Markers(ctx context.Context, opts ListOptions) ([]Marker, error) {
	visible, err := s.ListVisible(ctx, opts)
	if err != nil {
		return nil, err
	}

	registry := geo.NewRegistry()
	markers := make([]Marker, 0, len(visible))
	for _, c := range visible {
		point, ok := geo.Resolve(c.Location, c.Region, registry)
		if !ok {
			continue
		}
		markers = append(markers, Marker{Course: c, Position: point})
	}
	return markers, nil
}

// MonthGrid builds the calendar layout for one month over the visible
// course set.
func (s *CatalogService) MonthGrid(ctx context.Context, year int, month time.Month, opts ListOptions) (calendar.Grid, error) {
	visible, err := s.ListVisible(ctx, opts)
	if err != nil {
		return calendar.Grid{}, err
	}
	return calendar.BuildMonth(year, month, visible, s.now().Location()), nil
}

// Focus picks the month a freshly opened calendar should show.
func (s *CatalogService) Focus(ctx context.Context, opts ListOptions) (int, time.Month, error) {
	visible, err := s.ListVisible(ctx, opts)
	if err != nil {
		return 0, 0, err
	}
	year, month := calendar.InitialFocus(visible, s.now())
	return year, month, nil
}
