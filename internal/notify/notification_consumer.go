package notify

import (
	"context"
	"time"

	"github.com/WebOleg/tether-admin/internal/domain"
	"github.com/WebOleg/tether-admin/pkg/logger"
	"github.com/google/uuid"
)

// NotificationConsumer turns lifecycle events into stored user-facing
// notifications, the server-side stand-in for dashboard toasts.
type NotificationConsumer struct {
	repo        domain.Repository
	logger      *logger.Logger
	workerCount int
}

func NewNotificationConsumer(repo domain.Repository, log *logger.Logger, workerCount int) *NotificationConsumer {
	return &NotificationConsumer{
		repo:        repo,
		logger:      log,
		workerCount: workerCount,
	}
}

func (nc *NotificationConsumer) Consume(ctx context.Context, event Event) error {
	notification := domain.Notification{
		ID:        uuid.New().String(),
		UploadID:  event.Payload.UploadID,
		Level:     event.Payload.Level,
		Message:   event.Payload.Message,
		CreatedAt: time.Now(),
	}

	if err := nc.repo.AddNotification(ctx, notification); err != nil {
		nc.logger.Error(ctx, "Failed to store notification",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	nc.logger.Debug(ctx, "Notification stored",
		"event_type", event.Type,
		"level", event.Payload.Level,
	)

	return nil
}

func (nc *NotificationConsumer) WorkerCount() int {
	return nc.workerCount
}
