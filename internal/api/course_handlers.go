package api

import (
	"github.com/go-json-experiment/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/loacademie/academie-server/internal/domain"
	"github.com/loacademie/academie-server/internal/http/response"
	"github.com/loacademie/academie-server/internal/ics"
	"github.com/loacademie/academie-server/internal/service"
)

// listOptionsFromRequest translates query parameters into view options.
// Past-date suppression lifts only for requests carrying a live admin
// session.
func (s *Server) listOptionsFromRequest(r *http.Request) service.ListOptions {
	q := r.URL.Query()

	filters := domain.SearchFilters{
		Query:     q.Get("query"),
		Region:    domain.Region(q.Get("region")),
		DateStart: q.Get("dateStart"),
		DateEnd:   q.Get("dateEnd"),
		Organizer: domain.Organizer(q.Get("organizer")),
	}
	if tags := q.Get("tags"); tags != "" {
		filters.SelectedTags = strings.Split(tags, ",")
	}

	return service.ListOptions{
		Filters:       filters,
		Sort:          domain.SortOption(q.Get("sort")),
		ProfileID:     q.Get("profile"),
		FavoritesOnly: q.Get("favoritesOnly") == "true",
		Admin:         s.isAdmin(r),
	}
}

// handleListCourses returns the filtered, sorted course list.
func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := s.catalogService.ListVisible(r.Context(), s.listOptionsFromRequest(r))
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Success(w, courses, s.logger.Logger)
}

// handleGetCourse returns a single course by ID.
func (s *Server) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Course ID is required", s.logger.Logger)
		return
	}

	course, err := s.catalogService.GetCourse(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Success(w, course, s.logger.Logger)
}

// handleCreateCourse creates a new course.
func (s *Server) handleCreateCourse(w http.ResponseWriter, r *http.Request) {
	var course domain.Course
	if err := json.UnmarshalRead(r.Body, &course); err != nil {
		response.BadRequest(w, "Invalid JSON body", s.logger.Logger)
		return
	}
	course.ID = "" // server-assigned

	saved, err := s.catalogService.SaveCourse(r.Context(), &course)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Created(w, saved, s.logger.Logger)
}

// handleUpdateCourse replaces a course record under its existing ID.
func (s *Server) handleUpdateCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Course ID is required", s.logger.Logger)
		return
	}

	// Edits are full-record replaces, so the record must exist.
	if _, err := s.catalogService.GetCourse(r.Context(), id); err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	var course domain.Course
	if err := json.UnmarshalRead(r.Body, &course); err != nil {
		response.BadRequest(w, "Invalid JSON body", s.logger.Logger)
		return
	}
	course.ID = id

	saved, err := s.catalogService.SaveCourse(r.Context(), &course)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Success(w, saved, s.logger.Logger)
}

// handleDeleteCourse removes a course. Deleting an absent ID succeeds.
func (s *Server) handleDeleteCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Course ID is required", s.logger.Logger)
		return
	}

	if err := s.catalogService.DeleteCourse(r.Context(), id); err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.NoContent(w)
}

// handleSeedCourses resets the catalog to the demo seed set.
func (s *Server) handleSeedCourses(w http.ResponseWriter, r *http.Request) {
	n, err := s.catalogService.ResetToSeed(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Success(w, map[string]int{"seeded": n}, s.logger.Logger)
}

// handleCourseInvite serves the course as a downloadable calendar invite.
func (s *Server) handleCourseInvite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Course ID is required", s.logger.Logger)
		return
	}

	course, err := s.catalogService.GetCourse(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	invite, err := ics.Invite(course)
	if err != nil {
		s.logger.Error("failed to render invite", "error", err, "id", id)
		response.InternalError(w, "Failed to render calendar invite", s.logger.Logger)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ics.Filename(course)+`"`)
	_, _ = w.Write([]byte(invite))
}

// handleListTags returns the collection-wide tag vocabulary.
func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.catalogService.Tags(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Success(w, tags, s.logger.Logger)
}
