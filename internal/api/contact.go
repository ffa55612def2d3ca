package api

import (
	"encoding/json"
	"net/http"

	"github.com/sagelight/outreach/internal/service"
)

// handleContact runs the contact workflow for POST /sendContactEmail.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var req service.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSONBody)
		return
	}

	message, err := s.contactSvc.Send(r.Context(), req)
	if err != nil {
		s.writeWorkflowError(w, err)
		return
	}
	writeSuccess(w, message)
}
