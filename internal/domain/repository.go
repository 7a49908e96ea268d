package domain

import "context"

// Repository is the gateway's local view-state store: upload snapshots
// cached read-through from the backend, and pending notifications. It holds
// no authoritative data.
type Repository interface {
	// Upload snapshot cache
	SaveUpload(ctx context.Context, upload Upload) error
	GetUpload(ctx context.Context, uploadID string) (*Upload, error)

	// Notifications
	AddNotification(ctx context.Context, n Notification) error
	DrainNotifications(ctx context.Context) ([]Notification, error)
}
