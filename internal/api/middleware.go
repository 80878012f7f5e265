package api

import (
	"net/http"
	"strings"

	"github.com/loacademie/academie-server/internal/http/response"
)

// bearerToken extracts the token from an Authorization header.
// Returns the empty string when the header is missing or malformed.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return header[len(prefix):]
}

// isAdmin reports whether the request carries a live admin session.
func (s *Server) isAdmin(r *http.Request) bool {
	return s.authService.Verify(bearerToken(r))
}

// requireAdmin rejects requests without a live admin session.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.isAdmin(r) {
			s.logger.Warn("rejected unauthenticated mutation",
				"path", r.URL.Path,
				"remote", r.RemoteAddr)
			response.Unauthorized(w, "admin session required", s.logger.Logger)
			return
		}
		next.ServeHTTP(w, r)
	})
}
