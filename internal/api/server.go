// Package api provides the HTTP API server and handlers for the course catalog.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/loacademie/academie-server/internal/assistant"
	"github.com/loacademie/academie-server/internal/auth"
	"github.com/loacademie/academie-server/internal/http/response"
	"github.com/loacademie/academie-server/internal/logger"
	"github.com/loacademie/academie-server/internal/service"
	"github.com/loacademie/academie-server/internal/sse"
	"github.com/loacademie/academie-server/internal/store"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store           *store.Store
	catalogService  *service.CatalogService
	authService     *auth.Service
	assistantClient *assistant.Client
	sseHandler      *sse.Handler
	router          *chi.Mux
	logger          *logger.Logger
	allowedOrigins  []string
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(st *store.Store, catalogService *service.CatalogService, authService *auth.Service, assistantClient *assistant.Client, sseHandler *sse.Handler, allowedOrigins []string, log *logger.Logger) *Server {
	s := &Server{
		store:           st,
		catalogService:  catalogService,
		authService:     authService,
		assistantClient: assistantClient,
		sseHandler:      sseHandler,
		router:          chi.NewRouter(),
		logger:          log,
		allowedOrigins:  allowedOrigins,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		// Auth endpoints (public).
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", s.handleLogin)
			r.Post("/logout", s.handleLogout)
		})

		// Courses.
		r.Route("/courses", func(r chi.Router) {
			r.Get("/", s.handleListCourses)
			r.Get("/{id}", s.handleGetCourse)
			r.Get("/{id}/invite.ics", s.handleCourseInvite)

			// Mutations require the admin gate.
			r.Group(func(r chi.Router) {
				r.Use(s.requireAdmin)
				r.Post("/", s.handleCreateCourse)
				r.Put("/{id}", s.handleUpdateCourse)
				r.Delete("/{id}", s.handleDeleteCourse)
				r.Post("/seed", s.handleSeedCourses)
			})
		})

		// Tag vocabulary.
		r.Get("/tags", s.handleListTags)

		// Calendar views.
		r.Route("/calendar", func(r chi.Router) {
			r.Get("/focus", s.handleCalendarFocus)
			r.Get("/{year}/{month}", s.handleCalendarMonth)
		})

		// Map markers.
		r.Get("/map/markers", s.handleMapMarkers)

		// Per-profile favorites.
		r.Route("/profiles/{profileID}/favorites", func(r chi.Router) {
			r.Get("/", s.handleListFavorites)
			r.Post("/{courseID}", s.handleToggleFavorite)
		})

		// Assistant.
		r.Post("/assistant", s.handleAssistant)

		// Live updates.
		r.Get("/events", s.sseHandler.ServeHTTP)
	})
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger.Logger)
}
