// Package liststore is a thin client for the external subscriber list
// store: a single HTTP endpoint that adds and removes name/email pairs
// and answers with a result code. The store's verdict on duplicates and
// missing entries is authoritative; no part of it is re-derived here.
package liststore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Actions accepted by the list store.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// Result codes the workflows branch on. Any other value returned by the
// store is carried through verbatim and treated as ordinary success.
const (
	ResultSuccess   = "success"
	ResultDuplicate = "duplicate"
	ResultNotFound  = "not_found"
)

// MutationResult is the list store's answer to an add or remove.
type MutationResult struct {
	Result  string `json:"result"`
	Message string `json:"message,omitempty"`
}

// Client mutates the external subscriber list.
type Client interface {
	// Mutate performs a single add or remove for the given subscriber.
	// One attempt only; failures surface immediately.
	Mutate(ctx context.Context, action, name, email string) (*MutationResult, error)
}

// UnreachableError indicates the transport call itself failed
// (network, DNS, timeout).
type UnreachableError struct {
	Err error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("list store unreachable: %v", e.Err)
}

func (e *UnreachableError) Unwrap() error { return e.Err }

// MalformedError indicates the store answered with a body that is not
// the expected JSON document.
type MalformedError struct {
	Detail string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed list store response: %s", e.Detail)
}

// HTTPClient implements Client against the configured endpoint URL.
type HTTPClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewHTTPClient creates a list store client for the given endpoint.
// Accepts an optional http.Client for custom timeouts or transport settings.
func NewHTTPClient(endpoint string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPClient{endpoint: endpoint, httpClient: httpClient}
}

type mutationRequest struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email"`
	Action string `json:"action"`
}

// Mutate sends one POST with {name, email, action} and parses the
// {result, message} answer.
func (c *HTTPClient) Mutate(ctx context.Context, action, name, email string) (*MutationResult, error) {
	payload, err := json.Marshal(mutationRequest{Name: name, Email: email, Action: action})
	if err != nil {
		return nil, fmt.Errorf("encoding list store request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating list store request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UnreachableError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnreachableError{Err: err}
	}

	// The store is known to answer with an HTML error document under a
	// 2xx status when its backing script fails. Sniff the body instead
	// of relying on a parse failure alone.
	if looksLikeHTML(body) {
		return nil, &MalformedError{Detail: "received HTML document instead of JSON"}
	}

	var result MutationResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &MalformedError{Detail: fmt.Sprintf("invalid JSON: %v", err)}
	}
	return &result, nil
}

// looksLikeHTML reports whether body starts with an HTML marker.
func looksLikeHTML(body []byte) bool {
	trimmed := strings.TrimSpace(string(body))
	lower := strings.ToLower(trimmed)
	return strings.HasPrefix(lower, "<!doctype") ||
		strings.HasPrefix(lower, "<html") ||
		strings.HasPrefix(trimmed, "<")
}
