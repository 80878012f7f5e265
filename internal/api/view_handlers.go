package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/loacademie/academie-server/internal/http/response"
)

// handleCalendarMonth returns the 42-cell grid for one month of the
// visible course set.
func (s *Server) handleCalendarMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "Invalid year", s.logger.Logger)
		return
	}

	monthNum, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		response.BadRequest(w, "Invalid month", s.logger.Logger)
		return
	}

	grid, err := s.catalogService.MonthGrid(r.Context(), year, time.Month(monthNum), s.listOptionsFromRequest(r))
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Success(w, grid, s.logger.Logger)
}

// handleCalendarFocus returns the month a freshly opened calendar
// should show.
func (s *Server) handleCalendarFocus(w http.ResponseWriter, r *http.Request) {
	year, month, err := s.catalogService.Focus(r.Context(), s.listOptionsFromRequest(r))
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Success(w, map[string]int{
		"year":  year,
		"month": int(month),
	}, s.logger.Logger)
}

// handleMapMarkers returns the placed markers for the visible course set.
func (s *Server) handleMapMarkers(w http.ResponseWriter, r *http.Request) {
	markers, err := s.catalogService.Markers(r.Context(), s.listOptionsFromRequest(r))
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Success(w, markers, s.logger.Logger)
}
