package service_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagelight/outreach/internal/metrics"
	"github.com/sagelight/outreach/internal/notification"
	"github.com/sagelight/outreach/internal/service"
)

func newContactService(provider *stubProvider) (service.ContactService, *stubDeliveryStore) {
	logStore := &stubDeliveryStore{}
	composer := &notification.Composer{
		SiteName:  "Sagelight Press",
		FromAddr:  "no-reply@sagelight.example",
		AdminAddr: "editors@sagelight.example",
	}
	m := metrics.New(prometheus.NewRegistry())
	return service.NewContactService(provider, composer, logStore, m, slog.Default()), logStore
}

func TestContactSend_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  service.ContactRequest
	}{
		{name: "missing name", req: service.ContactRequest{Email: "a@x.com", Message: "hi"}},
		{name: "missing email", req: service.ContactRequest{Name: "A", Message: "hi"}},
		{name: "missing message", req: service.ContactRequest{Name: "A", Email: "a@x.com"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			provider := &stubProvider{}
			svc, _ := newContactService(provider)

			_, err := svc.Send(context.Background(), tc.req)

			var verr *service.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Empty(t, provider.sent)
		})
	}
}

func TestContactSend_RoundTrip(t *testing.T) {
	provider := &stubProvider{}
	svc, logStore := newContactService(provider)

	msg, err := svc.Send(context.Background(), service.ContactRequest{
		Name: "A", Email: "a@x.com", Message: "hi",
	})
	require.NoError(t, err)
	assert.Contains(t, msg, "Message sent successfully")

	provider.mu.Lock()
	defer provider.mu.Unlock()
	require.Len(t, provider.sent, 2)

	var admin, ack *notification.Message
	for i := range provider.sent {
		switch provider.sent[i].To {
		case "editors@sagelight.example":
			admin = &provider.sent[i]
		case "a@x.com":
			ack = &provider.sent[i]
		}
	}
	require.NotNil(t, admin, "admin notification sent")
	require.NotNil(t, ack, "visitor acknowledgment sent")
	assert.Contains(t, admin.TextBody, "hi", "admin email carries the message verbatim")
	assert.Contains(t, ack.TextBody, "hi", "acknowledgment echoes the message")

	assert.Len(t, logStore.entries, 2)
}

func TestContactSend_NotificationFailure(t *testing.T) {
	provider := &stubProvider{failTo: "a@x.com"}
	svc, _ := newContactService(provider)

	_, err := svc.Send(context.Background(), service.ContactRequest{
		Name: "A", Email: "a@x.com", Message: "hi",
	})

	var nerr *service.NotificationError
	require.ErrorAs(t, err, &nerr)
}
