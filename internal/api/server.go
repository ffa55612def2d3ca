// Package api is the HTTP boundary: it parses and normalizes request
// bodies, maps workflow errors to status codes and shapes JSON or HTML
// responses. No workflow branching lives here.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sagelight/outreach/internal/service"
	"github.com/sagelight/outreach/internal/storage"
)

const errInvalidJSONBody = "invalid JSON body"

// Server holds all dependencies for the HTTP handlers.
type Server struct {
	subscriptionSvc service.SubscriptionService
	contactSvc      service.ContactService
	deliveryStore   storage.DeliveryStore
	logger          *slog.Logger
}

// New creates an API Server backed by the provided services.
func New(
	subscriptionSvc service.SubscriptionService,
	contactSvc service.ContactService,
	deliveryStore storage.DeliveryStore,
	logger *slog.Logger,
) *Server {
	return &Server{
		subscriptionSvc: subscriptionSvc,
		contactSvc:      contactSvc,
		deliveryStore:   deliveryStore,
		logger:          logger,
	}
}

// Mount registers all routes under the given router. Endpoint names
// match the front end's existing fetch targets.
func (s *Server) Mount(r chi.Router) {
	r.Post("/sendEmail", s.handleSubscribe)
	r.Options("/sendEmail", s.handlePreflight)

	r.Get("/unsubscribeUser", s.handleUnsubscribe)
	r.Post("/unsubscribeUser", s.handleUnsubscribe)
	r.Options("/unsubscribeUser", s.handlePreflight)

	r.Post("/sendContactEmail", s.handleContact)
	r.Options("/sendContactEmail", s.handlePreflight)

	// Deprecated: superseded by /sendEmail, kept for older front-end
	// revisions that add the subscriber before requesting emails.
	r.Post("/addSubscriber", s.handleAddSubscriber)
	r.Options("/addSubscriber", s.handlePreflight)

	r.Get("/deliveries", s.handleListDeliveries)
}

// handlePreflight answers bare OPTIONS requests the way the site's
// front end expects: empty 204 with the allowed methods and headers.
// Browser preflights carrying Access-Control-Request-Method are handled
// by the CORS middleware before reaching the router.
func (s *Server) handlePreflight(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.WriteHeader(http.StatusNoContent)
}

// ─── Shared helpers ───────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": message})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

// writeWorkflowError maps the service error taxonomy onto HTTP statuses.
// List-store failures are reported generically; all other errors expose
// their message to the caller.
func (s *Server) writeWorkflowError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, verr.Error())
		return
	}

	var cerr *service.ConflictError
	if errors.As(err, &cerr) {
		writeError(w, http.StatusConflict, cerr.Error())
		return
	}

	var uerr *service.UpstreamError
	if errors.As(err, &uerr) {
		s.logger.Error("list store failure", slog.Any("error", uerr))
		writeError(w, http.StatusInternalServerError, "service temporarily unavailable")
		return
	}

	s.logger.Error("workflow failure", slog.Any("error", err))
	writeError(w, http.StatusInternalServerError, err.Error())
}
