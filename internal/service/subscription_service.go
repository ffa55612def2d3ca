// Package service implements the request workflows: subscription,
// unsubscription and contact-form handling. Each workflow is a linear
// validate → mutate → notify → respond sequence with no state carried
// across requests.
package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sagelight/outreach/internal/liststore"
	"github.com/sagelight/outreach/internal/metrics"
	"github.com/sagelight/outreach/internal/notification"
	"github.com/sagelight/outreach/internal/storage"
)

// SubscriptionRequest is the input to Subscribe. It exists only for the
// duration of one request; persistence is delegated to the list store.
type SubscriptionRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UnsubscriptionRequest is the input to Unsubscribe. Name is optional.
type UnsubscriptionRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UnsubscribeResult reports the outcome of an unsubscription.
type UnsubscribeResult struct {
	Email string
	// AlreadyUnsubscribed is true when the list store reported
	// not_found: the address was not on the list, which is treated as
	// an idempotent success and sends no emails.
	AlreadyUnsubscribed bool
}

// SubscriptionService orchestrates the subscribe and unsubscribe workflows.
type SubscriptionService interface {
	// Subscribe validates the request, adds the subscriber to the list
	// store and sends the welcome/admin notification pair. Returns the
	// confirmation message shown to the caller.
	Subscribe(ctx context.Context, req SubscriptionRequest) (string, error)
	// Unsubscribe validates the request, removes the subscriber and
	// sends the confirmation/admin pair unless the address was already
	// absent from the list.
	Unsubscribe(ctx context.Context, req UnsubscriptionRequest) (*UnsubscribeResult, error)
	// AddSubscriber performs a direct list add without sending any
	// email.
	//
	// Deprecated: older front-end revisions call this before hitting
	// Subscribe; new clients should use Subscribe alone.
	AddSubscriber(ctx context.Context, req SubscriptionRequest) error
}

type subscriptionServiceImpl struct {
	list       liststore.Client
	dispatcher *dispatcher
	composer   *notification.Composer
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewSubscriptionService creates a SubscriptionService.
func NewSubscriptionService(
	list liststore.Client,
	provider notification.Provider,
	composer *notification.Composer,
	store storage.DeliveryStore,
	m *metrics.Metrics,
	logger *slog.Logger,
) SubscriptionService {
	return &subscriptionServiceImpl{
		list:       list,
		dispatcher: newDispatcher(provider, store, m, logger),
		composer:   composer,
		metrics:    m,
		logger:     logger,
	}
}

// Subscribe implements the add workflow: validate, mutate, branch on
// duplicate, notify, respond. A duplicate verdict is terminal and sends
// nothing; a notification failure after the mutation is surfaced to the
// caller even though the list was already updated.
func (s *subscriptionServiceImpl) Subscribe(ctx context.Context, req SubscriptionRequest) (string, error) {
	if strings.TrimSpace(req.Name) == "" {
		s.metrics.WorkflowTotal.WithLabelValues("subscribe", "validation_error").Inc()
		return "", &ValidationError{Field: "name", Message: "name is required"}
	}
	if strings.TrimSpace(req.Email) == "" {
		s.metrics.WorkflowTotal.WithLabelValues("subscribe", "validation_error").Inc()
		return "", &ValidationError{Field: "email", Message: "email is required"}
	}

	result, err := s.list.Mutate(ctx, liststore.ActionAdd, req.Name, req.Email)
	if err != nil {
		s.metrics.ListStoreTotal.WithLabelValues(liststore.ActionAdd, "error").Inc()
		s.metrics.WorkflowTotal.WithLabelValues("subscribe", "upstream_error").Inc()
		return "", &UpstreamError{Err: err}
	}
	s.metrics.ListStoreTotal.WithLabelValues(liststore.ActionAdd, result.Result).Inc()

	if result.Result == liststore.ResultDuplicate {
		s.metrics.WorkflowTotal.WithLabelValues("subscribe", "duplicate").Inc()
		return "", &ConflictError{Email: req.Email}
	}

	err = s.dispatcher.sendAll(ctx,
		job{kind: "subscribe.welcome", msg: s.composer.Welcome(req.Name, req.Email)},
		job{kind: "subscribe.admin", msg: s.composer.AdminSubscription(req.Name, req.Email)},
	)
	if err != nil {
		// The list already holds the subscriber at this point; the
		// inconsistency is accepted and reported, not rolled back.
		s.metrics.WorkflowTotal.WithLabelValues("subscribe", "notification_error").Inc()
		return "", err
	}

	s.metrics.WorkflowTotal.WithLabelValues("subscribe", "success").Inc()
	s.logger.Info("subscription completed", slog.String("email", req.Email))
	return "Subscription successful! Check your email.", nil
}

// Unsubscribe implements the remove workflow. A not_found verdict from
// the list store is an idempotent success: the caller gets the same
// confirmation shape and no emails are sent.
func (s *subscriptionServiceImpl) Unsubscribe(ctx context.Context, req UnsubscriptionRequest) (*UnsubscribeResult, error) {
	if strings.TrimSpace(req.Email) == "" {
		s.metrics.WorkflowTotal.WithLabelValues("unsubscribe", "validation_error").Inc()
		return nil, &ValidationError{Field: "email", Message: "email is required"}
	}

	result, err := s.list.Mutate(ctx, liststore.ActionRemove, req.Name, req.Email)
	if err != nil {
		s.metrics.ListStoreTotal.WithLabelValues(liststore.ActionRemove, "error").Inc()
		s.metrics.WorkflowTotal.WithLabelValues("unsubscribe", "upstream_error").Inc()
		return nil, &UpstreamError{Err: err}
	}
	s.metrics.ListStoreTotal.WithLabelValues(liststore.ActionRemove, result.Result).Inc()

	if result.Result == liststore.ResultNotFound {
		s.metrics.WorkflowTotal.WithLabelValues("unsubscribe", "already_unsubscribed").Inc()
		return &UnsubscribeResult{Email: req.Email, AlreadyUnsubscribed: true}, nil
	}

	err = s.dispatcher.sendAll(ctx,
		job{kind: "unsubscribe.confirmation", msg: s.composer.UnsubscribeConfirmation(req.Name, req.Email)},
		job{kind: "unsubscribe.admin", msg: s.composer.AdminUnsubscribe(req.Name, req.Email)},
	)
	if err != nil {
		s.metrics.WorkflowTotal.WithLabelValues("unsubscribe", "notification_error").Inc()
		return nil, err
	}

	s.metrics.WorkflowTotal.WithLabelValues("unsubscribe", "success").Inc()
	s.logger.Info("unsubscription completed", slog.String("email", req.Email))
	return &UnsubscribeResult{Email: req.Email}, nil
}

// AddSubscriber adds the subscriber to the list store without emailing.
func (s *subscriptionServiceImpl) AddSubscriber(ctx context.Context, req SubscriptionRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if strings.TrimSpace(req.Email) == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}

	result, err := s.list.Mutate(ctx, liststore.ActionAdd, req.Name, req.Email)
	if err != nil {
		s.metrics.ListStoreTotal.WithLabelValues(liststore.ActionAdd, "error").Inc()
		return &UpstreamError{Err: err}
	}
	s.metrics.ListStoreTotal.WithLabelValues(liststore.ActionAdd, result.Result).Inc()

	if result.Result == liststore.ResultDuplicate {
		return &ConflictError{Email: req.Email}
	}
	return nil
}
