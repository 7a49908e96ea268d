package storage

import (
	"context"
	"testing"
	"time"

	"github.com/WebOleg/tether-admin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveAndGetUpload(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	upload := domain.Upload{
		ID:        "upload-1",
		Status:    domain.UploadStatusProcessing,
		CreatedAt: time.Now(),
	}

	err := store.SaveUpload(ctx, upload)
	require.NoError(t, err)

	got, err := store.GetUpload(ctx, "upload-1")
	require.NoError(t, err)
	assert.Equal(t, "upload-1", got.ID)
	assert.Equal(t, domain.UploadStatusProcessing, got.Status)
}

func TestMemoryStore_GetUpload_NotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetUpload(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, domain.ErrUploadNotFound)
}

func TestMemoryStore_SaveUpload_Overwrites(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.SaveUpload(ctx, domain.Upload{ID: "upload-1", Status: domain.UploadStatusProcessing}))
	require.NoError(t, store.SaveUpload(ctx, domain.Upload{ID: "upload-1", Status: domain.UploadStatusCompleted}))

	got, err := store.GetUpload(ctx, "upload-1")
	require.NoError(t, err)
	assert.Equal(t, domain.UploadStatusCompleted, got.Status)
}

func TestMemoryStore_DrainNotifications(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.AddNotification(ctx, domain.Notification{ID: "n1", Message: "first"}))
	require.NoError(t, store.AddNotification(ctx, domain.Notification{ID: "n2", Message: "second"}))

	drained, err := store.DrainNotifications(ctx)
	require.NoError(t, err)
	assert.Len(t, drained, 2)

	// Drain delivers each notification exactly once.
	drained, err = store.DrainNotifications(ctx)
	require.NoError(t, err)
	assert.Empty(t, drained)
}

func TestMemoryStore_DrainNotifications_EmptyIsNotNil(t *testing.T) {
	store := NewMemoryStore()

	drained, err := store.DrainNotifications(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, drained)
	assert.Empty(t, drained)
}
