package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/loacademie/academie-server/internal/http/response"
)

// handleListFavorites returns a profile's favorite course IDs.
func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")
	if profileID == "" {
		response.BadRequest(w, "Profile ID is required", s.logger.Logger)
		return
	}

	ids, err := s.store.ListFavorites(r.Context(), profileID)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Success(w, ids, s.logger.Logger)
}

// handleToggleFavorite flips the favorite state of one course for a
// profile and reports the new state.
func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	profileID := chi.URLParam(r, "profileID")
	courseID := chi.URLParam(r, "courseID")
	if profileID == "" || courseID == "" {
		response.BadRequest(w, "Profile ID and course ID are required", s.logger.Logger)
		return
	}

	favorite, err := s.store.ToggleFavorite(r.Context(), profileID, courseID)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Success(w, map[string]bool{"favorite": favorite}, s.logger.Logger)
}
