package storage

import (
	"context"
	"sync"

	"github.com/WebOleg/tether-admin/internal/domain"
)

// MemoryStore is the gateway's view-state cache. Nothing here is
// authoritative: upload snapshots are read-through copies of backend state
// and notifications are pending one-shot messages.
type MemoryStore struct {
	uploads       map[string]domain.Upload
	notifications []domain.Notification
	mu            sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		uploads: make(map[string]domain.Upload),
	}
}

func (s *MemoryStore) SaveUpload(ctx context.Context, upload domain.Upload) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.uploads[upload.ID] = upload

	return nil
}

func (s *MemoryStore) GetUpload(ctx context.Context, uploadID string) (*domain.Upload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	upload, exists := s.uploads[uploadID]
	if !exists {
		return nil, domain.ErrUploadNotFound
	}

	snapshot := upload
	return &snapshot, nil
}

func (s *MemoryStore) AddNotification(ctx context.Context, n domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append(s.notifications, n)

	return nil
}

// DrainNotifications returns all pending notifications and clears them.
// Each notification is delivered exactly once.
func (s *MemoryStore) DrainNotifications(ctx context.Context) ([]domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drained := s.notifications
	s.notifications = nil

	if drained == nil {
		drained = []domain.Notification{}
	}

	return drained, nil
}
