package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sagelight/outreach/internal/metrics"
	"github.com/sagelight/outreach/internal/notification"
	"github.com/sagelight/outreach/internal/storage"
)

// ContactRequest is one contact-form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactService handles contact-form submissions. No list store is
// involved; the workflow is validate → notify → respond.
type ContactService interface {
	// Send validates the submission and dispatches the admin
	// notification and visitor acknowledgment pair. Returns the
	// confirmation message shown to the caller.
	Send(ctx context.Context, req ContactRequest) (string, error)
}

type contactServiceImpl struct {
	dispatcher *dispatcher
	composer   *notification.Composer
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewContactService creates a ContactService.
func NewContactService(
	provider notification.Provider,
	composer *notification.Composer,
	store storage.DeliveryStore,
	m *metrics.Metrics,
	logger *slog.Logger,
) ContactService {
	return &contactServiceImpl{
		dispatcher: newDispatcher(provider, store, m, logger),
		composer:   composer,
		metrics:    m,
		logger:     logger,
	}
}

// Send implements the contact workflow.
func (s *contactServiceImpl) Send(ctx context.Context, req ContactRequest) (string, error) {
	for _, f := range []struct{ field, value string }{
		{"name", req.Name},
		{"email", req.Email},
		{"message", req.Message},
	} {
		if strings.TrimSpace(f.value) == "" {
			s.metrics.WorkflowTotal.WithLabelValues("contact", "validation_error").Inc()
			return "", &ValidationError{Field: f.field, Message: f.field + " is required"}
		}
	}

	err := s.dispatcher.sendAll(ctx,
		job{kind: "contact.admin", msg: s.composer.AdminContact(req.Name, req.Email, req.Message)},
		job{kind: "contact.ack", msg: s.composer.ContactAck(req.Name, req.Email, req.Message)},
	)
	if err != nil {
		s.metrics.WorkflowTotal.WithLabelValues("contact", "notification_error").Inc()
		return "", err
	}

	s.metrics.WorkflowTotal.WithLabelValues("contact", "success").Inc()
	s.logger.Info("contact form delivered", slog.String("email", req.Email))
	return "Message sent successfully! We'll get back to you soon.", nil
}
