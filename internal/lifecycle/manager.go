// Package lifecycle orchestrates the upload workflow against the remote
// backend: file submission, status polling, the two-stage validation
// sequence, VOP verification polling and gating, billing sync polling, and
// chargeback filtering. The backend stays authoritative for every rule;
// this package only sequences calls and relays state.
package lifecycle

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/WebOleg/tether-admin/internal/backend"
	"github.com/WebOleg/tether-admin/internal/config"
	"github.com/WebOleg/tether-admin/internal/domain"
	"github.com/WebOleg/tether-admin/internal/notify"
	"github.com/WebOleg/tether-admin/internal/preflight"
	"github.com/WebOleg/tether-admin/pkg/logger"
	"github.com/WebOleg/tether-admin/pkg/poller"
	"github.com/google/uuid"
)

type Manager struct {
	client   backend.Client
	repo     domain.Repository
	bus      notify.Bus
	checker  *preflight.Checker
	cfg      config.PollConfig
	pageSize int
	debounce time.Duration
	logger   *logger.Logger

	mu       sync.RWMutex
	sessions map[string]*DetailSession
	watchers map[string]*poller.Poller
}

func NewManager(
	client backend.Client,
	repo domain.Repository,
	bus notify.Bus,
	checker *preflight.Checker,
	cfg *config.Config,
	log *logger.Logger,
) *Manager {
	return &Manager{
		client:   client,
		repo:     repo,
		bus:      bus,
		checker:  checker,
		cfg:      cfg.Poll,
		pageSize: cfg.Upload.DebtorsPageSize,
		debounce: cfg.Upload.SearchDebounce,
		logger:   log,
	}
}

func (m *Manager) init() {
	if m.sessions == nil {
		m.sessions = make(map[string]*DetailSession)
	}
	if m.watchers == nil {
		m.watchers = make(map[string]*poller.Poller)
	}
}

// SubmissionResult pairs preflight findings with the backend's answer.
type SubmissionResult struct {
	FileInfo *preflight.FileInfo  `json:"file_info"`
	Result   *domain.UploadResult `json:"result"`
}

// SubmitFile runs preflight locally, submits the file, and starts a status
// watcher when the backend reports a non-terminal state. A preflight
// rejection returns before any network call.
func (m *Manager) SubmitFile(ctx context.Context, filename string, size int64, file io.Reader) (*SubmissionResult, error) {
	info, content, err := m.checker.Check(ctx, filename, size, file)
	if err != nil {
		return nil, err
	}

	result, err := m.client.SubmitUpload(ctx, filename, bytes.NewReader(content))
	if err != nil {
		m.logger.Error(ctx, "Upload submission failed",
			"filename", filename,
			"error", err,
		)
		return nil, err
	}

	ctx = logger.WithUploadID(ctx, result.Upload.ID)

	if err := m.repo.SaveUpload(ctx, result.Upload); err != nil {
		m.logger.Warn(ctx, "Failed to cache upload snapshot",
			"error", err,
		)
	}

	m.logger.Info(ctx, "Upload submitted",
		"filename", filename,
		"queued", result.Queued,
		"created", result.Created,
		"skipped", result.Skipped.Total,
	)

	if result.Queued || !result.Upload.Status.IsTerminal() {
		m.WatchStatus(context.Background(), result.Upload.ID, nil)
	}

	return &SubmissionResult{FileInfo: info, Result: result}, nil
}

// WatchStatus polls the upload status every StatusInterval until a terminal
// state is observed. A fetch error is treated as terminal failure: status
// polling assumes the resource is gone or broken, unlike the tolerant VOP
// and billing loops. onTerminal, when set, fires exactly once.
//
// The loop is deliberately unbounded: backend processing time is assumed
// finite. Stop or the parent context tears it down.
func (m *Manager) WatchStatus(ctx context.Context, uploadID string, onTerminal func(*domain.Upload, error)) *poller.Poller {
	m.mu.Lock()
	m.init()
	if existing, ok := m.watchers[uploadID]; ok {
		select {
		case <-existing.Done():
			// finished; replace it
		default:
			m.mu.Unlock()
			return existing
		}
	}

	watchCtx := logger.WithUploadID(ctx, uploadID)

	p := poller.Start(watchCtx, m.cfg.StatusInterval, func(tickCtx context.Context, cycle int) poller.Action {
		upload, err := m.client.GetUpload(tickCtx, uploadID)
		if err != nil {
			m.logger.Error(watchCtx, "Status poll failed, treating upload as failed",
				"cycle", cycle,
				"error", err,
			)
			m.publish(watchCtx, notify.EventTypeUploadFailed, uploadID, "error",
				"upload status check failed")
			if onTerminal != nil {
				onTerminal(nil, err)
			}
			return poller.Fail
		}

		if err := m.repo.SaveUpload(tickCtx, *upload); err != nil {
			m.logger.Warn(watchCtx, "Failed to cache upload snapshot",
				"error", err,
			)
		}

		if !upload.Status.IsTerminal() {
			return poller.Continue
		}

		if upload.Status == domain.UploadStatusCompleted {
			m.publish(watchCtx, notify.EventTypeUploadCompleted, uploadID, "success",
				fmt.Sprintf("upload processed: %d records", upload.TotalRecords))
		} else {
			m.publish(watchCtx, notify.EventTypeUploadFailed, uploadID, "error",
				"upload processing failed")
		}

		if onTerminal != nil {
			onTerminal(upload, nil)
		}
		return poller.Stop
	})

	m.watchers[uploadID] = p
	m.mu.Unlock()

	return p
}

// GetUpload reads through to the backend and refreshes the local snapshot.
// On backend failure the cached snapshot is returned when one exists.
func (m *Manager) GetUpload(ctx context.Context, uploadID string) (*domain.Upload, error) {
	upload, err := m.client.GetUpload(ctx, uploadID)
	if err != nil {
		if cached, cacheErr := m.repo.GetUpload(ctx, uploadID); cacheErr == nil {
			m.logger.Warn(ctx, "Backend fetch failed, serving cached snapshot",
				"upload_id", uploadID,
				"error", err,
			)
			return cached, nil
		}
		return nil, err
	}

	if err := m.repo.SaveUpload(ctx, *upload); err != nil {
		m.logger.Warn(ctx, "Failed to cache upload snapshot",
			"error", err,
		)
	}

	return upload, nil
}

// Session returns an open detail session by id.
func (m *Manager) Session(sessionID string) (*DetailSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

// CloseSession tears a session down: every poll loop and pending debounce
// owned by it stops before the call returns.
func (m *Manager) CloseSession(sessionID string) error {
	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	if ok {
		delete(m.sessions, sessionID)
	}
	m.mu.Unlock()

	if !ok {
		return domain.ErrSessionNotFound
	}

	s.Close()
	return nil
}

// Shutdown stops every watcher and session.
func (m *Manager) Shutdown(ctx context.Context) {
	m.mu.Lock()
	watchers := make([]*poller.Poller, 0, len(m.watchers))
	for _, w := range m.watchers {
		watchers = append(watchers, w)
	}
	sessions := make([]*DetailSession, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.watchers = nil
	m.sessions = nil
	m.mu.Unlock()

	for _, w := range watchers {
		w.Stop()
	}
	for _, s := range sessions {
		s.Close()
	}

	m.logger.Info(ctx, "Lifecycle manager stopped",
		"watchers", len(watchers),
		"sessions", len(sessions),
	)
}

func (m *Manager) publish(ctx context.Context, eventType notify.EventType, uploadID, level, message string) {
	err := m.bus.Publish(ctx, notify.Event{
		ID:   uuid.New().String(),
		Type: eventType,
		Payload: notify.LifecycleEvent{
			UploadID: uploadID,
			Level:    level,
			Message:  message,
		},
		Timestamp: time.Now(),
	})
	if err != nil {
		m.logger.Warn(ctx, "Failed to publish lifecycle event",
			"event_type", eventType,
			"error", err,
		)
	}
}
