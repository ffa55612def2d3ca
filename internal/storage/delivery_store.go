// Package storage persists the email delivery log in SQLite. The
// subscriber list itself lives in the external list store; only the
// record of outbound send attempts is kept locally.
package storage

import (
	"context"
	"time"
)

// DeliveryLogEntry records a single email send attempt.
type DeliveryLogEntry struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"` // e.g. "subscribe.welcome", "contact.admin"
	Provider  string    `json:"provider"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"` // "sent" or "failed"
	ErrorMsg  string    `json:"error_msg"`
	CreatedAt time.Time `json:"created_at"`
}

// DeliveryStore defines the interface for persisting the delivery log.
type DeliveryStore interface {
	// LogDelivery records an email send attempt.
	LogDelivery(ctx context.Context, entry DeliveryLogEntry) error
	// ListDeliveries returns the most recent entries, up to limit.
	ListDeliveries(ctx context.Context, limit int) ([]DeliveryLogEntry, error)
}
