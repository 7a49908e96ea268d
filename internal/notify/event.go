package notify

import "time"

type EventType string

const (
	EventTypeUploadCompleted  EventType = "upload_completed"
	EventTypeUploadFailed     EventType = "upload_failed"
	EventTypeVopCompleted     EventType = "vop_completed"
	EventTypeVopTimeout       EventType = "vop_timeout"
	EventTypeBillingCompleted EventType = "billing_completed"
	EventTypeSyncRejected     EventType = "sync_rejected"
)

// Event is one lifecycle announcement flowing through the bus.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Payload   LifecycleEvent
	Timestamp time.Time `json:"timestamp"`
}

// LifecycleEvent is the payload for every lifecycle event type.
type LifecycleEvent struct {
	UploadID string `json:"upload_id"`
	Level    string `json:"level"`
	Message  string `json:"message"`
}
