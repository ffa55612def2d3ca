// Package notification wraps outbound transactional email delivery for
// the site: subscriber welcomes, unsubscribe confirmations, contact-form
// acknowledgments and their admin-facing counterparts.
package notification

import "context"

// Message is one email to be delivered by a Provider.
type Message struct {
	From     string
	To       string
	Subject  string
	TextBody string
	// HTMLBody, when non-empty, is attached as an HTML alternative to
	// the plain-text body.
	HTMLBody string
}

// Provider is the interface for notification delivery backends.
type Provider interface {
	// Name returns the provider identifier (e.g. "smtp").
	Name() string
	// Send delivers the message using the provider's transport.
	// One attempt; no retries.
	Send(ctx context.Context, msg Message) error
}
