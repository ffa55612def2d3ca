package storage_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagelight/outreach/internal/storage"
)

func newStore(t *testing.T) *storage.SQLiteDeliveryStore {
	t.Helper()
	db, err := storage.NewSQLiteDB(filepath.Join(t.TempDir(), "outreach.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return storage.NewSQLiteDeliveryStore(db)
}

func TestLogDelivery_AssignsID(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	err := store.LogDelivery(ctx, storage.DeliveryLogEntry{
		Kind:      "subscribe.welcome",
		Provider:  "smtp",
		Recipient: "ada@example.com",
		Subject:   "Welcome",
		Status:    "sent",
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	entries, err := store.ListDeliveries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].ID)
	assert.Equal(t, "subscribe.welcome", entries[0].Kind)
	assert.Equal(t, "ada@example.com", entries[0].Recipient)
}

func TestListDeliveries_OrderAndLimit(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.LogDelivery(ctx, storage.DeliveryLogEntry{
			Kind:      "contact.admin",
			Provider:  "smtp",
			Recipient: "editors@example.com",
			Status:    "sent",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := store.ListDeliveries(ctx, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// Newest first.
	assert.True(t, entries[0].CreatedAt.After(entries[2].CreatedAt))
}

func TestListDeliveries_DefaultLimit(t *testing.T) {
	store := newStore(t)
	entries, err := store.ListDeliveries(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLogDelivery_FailedStatusKeepsError(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.LogDelivery(ctx, storage.DeliveryLogEntry{
		Kind:      "unsubscribe.confirmation",
		Provider:  "smtp",
		Recipient: "ada@example.com",
		Status:    "failed",
		ErrorMsg:  "dial tcp: connection refused",
		CreatedAt: time.Now().UTC(),
	}))

	entries, err := store.ListDeliveries(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "failed", entries[0].Status)
	assert.Contains(t, entries[0].ErrorMsg, "connection refused")
}
