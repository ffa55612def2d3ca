package api

import (
	"encoding/json"
	"net/http"

	"github.com/sagelight/outreach/internal/service"
)

// handleSubscribe runs the subscription workflow for POST /sendEmail.
func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	var req service.SubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSONBody)
		return
	}

	message, err := s.subscriptionSvc.Subscribe(r.Context(), req)
	if err != nil {
		s.writeWorkflowError(w, err)
		return
	}
	writeSuccess(w, message)
}

// handleAddSubscriber performs a direct list add without emailing.
//
// Deprecated: kept for older front-end revisions; new clients use
// /sendEmail.
func (s *Server) handleAddSubscriber(w http.ResponseWriter, r *http.Request) {
	var req service.SubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errInvalidJSONBody)
		return
	}

	if err := s.subscriptionSvc.AddSubscriber(r.Context(), req); err != nil {
		s.writeWorkflowError(w, err)
		return
	}
	writeSuccess(w, "Subscriber added.")
}
