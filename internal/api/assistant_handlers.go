package api

import (
	"github.com/go-json-experiment/json"
	"net/http"
	"strings"

	"github.com/loacademie/academie-server/internal/http/response"
)

// assistantRequest is the question payload.
type assistantRequest struct {
	Question string `json:"question"`
}

// assistantResponse carries the model's answer.
type assistantResponse struct {
	Answer string `json:"answer"`
}

// handleAssistant forwards a question to the model with the full
// current catalog as context. The requester's view filters never apply
// here: the model must be able to answer about courses a filter hides.
func (s *Server) handleAssistant(w http.ResponseWriter, r *http.Request) {
	var req assistantRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body", s.logger.Logger)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		response.BadRequest(w, "Question is required", s.logger.Logger)
		return
	}

	answer, err := s.assistantClient.Ask(r.Context(), req.Question, s.catalogService.Snapshot())
	if err != nil {
		response.HandleError(w, err, s.logger.Logger)
		return
	}

	response.Success(w, assistantResponse{Answer: answer}, s.logger.Logger)
}
