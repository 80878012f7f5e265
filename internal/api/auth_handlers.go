package api

import (
	"github.com/go-json-experiment/json"
	"net/http"
	"time"

	"github.com/loacademie/academie-server/internal/http/response"
)

// loginRequest is the admin login payload.
type loginRequest struct {
	Password string `json:"password"`
}

// loginResponse carries the session token and its expiry.
type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// handleLogin trades the admin password for a session token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body", s.logger.Logger)
		return
	}

	token, expiresAt, err := s.authService.Login(req.Password)
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Success(w, loginResponse{Token: token, ExpiresAt: expiresAt}, s.logger.Logger)
}

// handleLogout revokes the current session token. Logging out without
// a token is harmless.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := bearerToken(r); token != "" {
		s.authService.Logout(token)
	}
	response.NoContent(w)
}
