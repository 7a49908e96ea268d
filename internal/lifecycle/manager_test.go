package lifecycle

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/WebOleg/tether-admin/internal/config"
	"github.com/WebOleg/tether-admin/internal/domain"
	"github.com/WebOleg/tether-admin/internal/notify"
	"github.com/WebOleg/tether-admin/internal/preflight"
	"github.com/WebOleg/tether-admin/internal/storage"
	"github.com/WebOleg/tether-admin/mocks"
	"github.com/WebOleg/tether-admin/pkg/logger"
	"github.com/WebOleg/tether-admin/pkg/poller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const csvContent = "name,iban,amount\nJohn Doe,DE89370400440532013000,120.50\n"

func testConfig() *config.Config {
	return &config.Config{
		Upload: config.UploadConfig{
			MaxFileSize:     50 * 1024 * 1024,
			DebtorsPageSize: 100,
			SearchDebounce:  20 * time.Millisecond,
		},
		Poll: config.PollConfig{
			StatusInterval:  10 * time.Millisecond,
			VopInterval:     10 * time.Millisecond,
			VopMaxPolls:     24,
			BillingInterval: 10 * time.Millisecond,
		},
	}
}

func newTestManager(t *testing.T, client *mocks.MockClient) (*Manager, *storage.MemoryStore) {
	t.Helper()

	cfg := testConfig()
	log := logger.NewNop()
	repo := storage.NewMemoryStore()
	bus := notify.New(log, nil)
	checker := preflight.NewChecker(cfg.Upload, log)

	m := NewManager(client, repo, bus, checker, cfg, log)
	t.Cleanup(func() {
		m.Shutdown(context.Background())
	})

	return m, repo
}

func TestSubmitFile_Success(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, repo := newTestManager(t, client)

	client.EXPECT().SubmitUpload(mock.Anything, "clients.csv", mock.Anything).Return(&domain.UploadResult{
		Upload:  domain.Upload{ID: "u1", Status: domain.UploadStatusCompleted, TotalRecords: 1},
		Created: 1,
	}, nil).Once()

	result, err := m.SubmitFile(context.Background(), "clients.csv", int64(len(csvContent)), strings.NewReader(csvContent))

	require.NoError(t, err)
	assert.Equal(t, 1, result.Result.Created)
	assert.Equal(t, "clients.csv", result.FileInfo.Filename)

	cached, err := repo.GetUpload(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.UploadStatusCompleted, cached.Status)
}

func TestSubmitFile_SnapshotCacheFailureIsTolerated(t *testing.T) {
	client := mocks.NewMockClient(t)
	repo := mocks.NewMockRepository(t)

	cfg := testConfig()
	log := logger.NewNop()
	m := NewManager(client, repo, notify.New(log, nil), preflight.NewChecker(cfg.Upload, log), cfg, log)
	t.Cleanup(func() {
		m.Shutdown(context.Background())
	})

	client.EXPECT().SubmitUpload(mock.Anything, "clients.csv", mock.Anything).Return(&domain.UploadResult{
		Upload:  domain.Upload{ID: "u1", Status: domain.UploadStatusCompleted, TotalRecords: 1},
		Created: 1,
	}, nil).Once()
	repo.EXPECT().SaveUpload(mock.Anything, mock.Anything).Return(errors.New("cache full")).Once()

	result, err := m.SubmitFile(context.Background(), "clients.csv", int64(len(csvContent)), strings.NewReader(csvContent))

	require.NoError(t, err)
	assert.Equal(t, 1, result.Result.Created)
}

func TestSubmitFile_PreflightRejectionSkipsBackend(t *testing.T) {
	// no expectations registered: any backend call fails the test
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)

	_, err := m.SubmitFile(context.Background(), "clients.pdf", 128, strings.NewReader("%PDF"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestSubmitFile_QueuedStartsWatcher(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)

	client.EXPECT().SubmitUpload(mock.Anything, "clients.csv", mock.Anything).Return(&domain.UploadResult{
		Upload: domain.Upload{ID: "u1", Status: domain.UploadStatusPending},
		Queued: true,
	}, nil).Once()
	client.EXPECT().GetUpload(mock.Anything, "u1").Return(&domain.Upload{
		ID:     "u1",
		Status: domain.UploadStatusCompleted,
	}, nil)

	result, err := m.SubmitFile(context.Background(), "clients.csv", int64(len(csvContent)), strings.NewReader(csvContent))
	require.NoError(t, err)
	assert.True(t, result.Result.Queued)

	m.mu.RLock()
	watcher, ok := m.watchers["u1"]
	m.mu.RUnlock()
	require.True(t, ok)

	assert.Equal(t, poller.OutcomeCompleted, watcher.Wait())
}

func TestWatchStatus_StopsOnTerminalStatus(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, repo := newTestManager(t, client)

	statuses := []domain.UploadStatus{
		domain.UploadStatusPending,
		domain.UploadStatusProcessing,
		domain.UploadStatusCompleted,
	}
	var cycle atomic.Int32
	client.EXPECT().GetUpload(mock.Anything, "u1").RunAndReturn(
		func(ctx context.Context, uploadID string) (*domain.Upload, error) {
			i := int(cycle.Add(1)) - 1
			if i >= len(statuses) {
				i = len(statuses) - 1
			}
			return &domain.Upload{ID: "u1", Status: statuses[i], TotalRecords: 3}, nil
		})

	var gotTerminal atomic.Int32
	p := m.WatchStatus(context.Background(), "u1", func(upload *domain.Upload, err error) {
		require.NoError(t, err)
		assert.Equal(t, domain.UploadStatusCompleted, upload.Status)
		gotTerminal.Add(1)
	})

	assert.Equal(t, poller.OutcomeCompleted, p.Wait())
	assert.Equal(t, int32(3), cycle.Load())
	assert.Equal(t, int32(1), gotTerminal.Load())

	cached, err := repo.GetUpload(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, domain.UploadStatusCompleted, cached.Status)
}

func TestWatchStatus_FetchErrorIsTerminal(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)

	client.EXPECT().GetUpload(mock.Anything, "u1").Return(nil, errors.New("backend down")).Once()

	var callbackErr error
	p := m.WatchStatus(context.Background(), "u1", func(upload *domain.Upload, err error) {
		callbackErr = err
	})

	assert.Equal(t, poller.OutcomeFailed, p.Wait())
	assert.EqualError(t, callbackErr, "backend down")
}

func TestWatchStatus_DeduplicatesLiveWatchers(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)

	client.EXPECT().GetUpload(mock.Anything, "u1").Return(&domain.Upload{
		ID:     "u1",
		Status: domain.UploadStatusProcessing,
	}, nil)

	first := m.WatchStatus(context.Background(), "u1", nil)
	second := m.WatchStatus(context.Background(), "u1", nil)

	assert.Same(t, first, second)
	first.Stop()
}

func TestGetUpload_ServesCachedSnapshotOnBackendFailure(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, repo := newTestManager(t, client)

	require.NoError(t, repo.SaveUpload(context.Background(), domain.Upload{
		ID:     "u1",
		Status: domain.UploadStatusProcessing,
	}))

	client.EXPECT().GetUpload(mock.Anything, "u1").Return(nil, errors.New("backend down")).Once()

	upload, err := m.GetUpload(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.UploadStatusProcessing, upload.Status)
}

func TestGetUpload_ErrorWithoutCache(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)

	client.EXPECT().GetUpload(mock.Anything, "missing").Return(nil, errors.New("backend down")).Once()

	_, err := m.GetUpload(context.Background(), "missing")

	assert.Error(t, err)
}

func TestCloseSession_NotFound(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)

	err := m.CloseSession("nope")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
