package notification_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagelight/outreach/internal/notification"
)

func newComposer() *notification.Composer {
	return &notification.Composer{
		SiteName:  "Sagelight Press",
		FromAddr:  "no-reply@sagelight.example",
		AdminAddr: "editors@sagelight.example",
	}
}

func TestWelcome(t *testing.T) {
	msg := newComposer().Welcome("Ada", "ada@example.com")

	assert.Equal(t, "no-reply@sagelight.example", msg.From)
	assert.Equal(t, "ada@example.com", msg.To)
	assert.Contains(t, msg.Subject, "Welcome")
	assert.Contains(t, msg.TextBody, "Dear Ada")
	require.NotEmpty(t, msg.HTMLBody)
	assert.Contains(t, msg.HTMLBody, "Sagelight Press")
}

func TestAdminSubscription(t *testing.T) {
	msg := newComposer().AdminSubscription("Ada", "ada@example.com")

	assert.Equal(t, "editors@sagelight.example", msg.To)
	assert.Contains(t, msg.TextBody, "Name: Ada")
	assert.Contains(t, msg.TextBody, "Email: ada@example.com")
	assert.Empty(t, msg.HTMLBody, "admin notices are plain text")
}

func TestUnsubscribeConfirmation_NoName(t *testing.T) {
	msg := newComposer().UnsubscribeConfirmation("", "ada@example.com")

	assert.Equal(t, "ada@example.com", msg.To)
	assert.Contains(t, msg.TextBody, "Dear reader")
	assert.Contains(t, msg.TextBody, "unsubscribed")
}

func TestAdminContact_MessageVerbatim(t *testing.T) {
	msg := newComposer().AdminContact("Ada", "ada@example.com", "hi there\nsecond line")

	assert.Equal(t, "editors@sagelight.example", msg.To)
	assert.Contains(t, msg.TextBody, "hi there\nsecond line")
	assert.Contains(t, msg.TextBody, "You can reply directly to: ada@example.com")
	assert.Contains(t, msg.Subject, "Ada")
}

func TestContactAck_EchoesMessage(t *testing.T) {
	msg := newComposer().ContactAck("Ada", "ada@example.com", "hi")

	assert.Equal(t, "ada@example.com", msg.To)
	assert.Contains(t, msg.TextBody, "Your message:\nhi")
}

func TestRenderHTML_EscapesContent(t *testing.T) {
	msg := newComposer().Welcome("<script>alert(1)</script>", "ada@example.com")

	require.NotEmpty(t, msg.HTMLBody)
	assert.False(t, strings.Contains(msg.HTMLBody, "<script>alert(1)</script>"),
		"user input must be escaped in HTML bodies")
}
