package service

import "fmt"

// ValidationError is returned when request data fails validation.
// No side effects have occurred when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
	}
	return e.Message
}

// ConflictError is returned when the list store reports the email is
// already subscribed. The store's duplicate verdict is authoritative.
type ConflictError struct {
	Email string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("email %q is already subscribed", e.Email)
}

// UpstreamError is returned when the list store call fails (transport
// or response parsing). The wrapped detail stays server-side; callers
// receive a generic message.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("list store request failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// NotificationError is returned when an email send fails after any list
// mutation has already happened. The mutation is not compensated.
type NotificationError struct {
	Kind string
	Err  error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("sending %s notification: %v", e.Kind, e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }
