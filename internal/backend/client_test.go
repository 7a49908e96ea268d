package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/WebOleg/tether-admin/internal/config"
	"github.com/WebOleg/tether-admin/internal/domain"
	"github.com/WebOleg/tether-admin/internal/session"
	"github.com/WebOleg/tether-admin/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*HTTPClient, *session.Store) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokens := session.NewStore()
	client := NewHTTPClient(config.BackendConfig{
		BaseURL:        srv.URL,
		RequestTimeout: 5 * time.Second,
	}, tokens, logger.NewNop())

	return client, tokens
}

func TestGetUpload_AttachesBearerToken(t *testing.T) {
	var gotAuth string

	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(domain.Upload{ID: "u1", Status: domain.UploadStatusCompleted})
	})
	tokens.Set("secret-token")

	upload, err := client.GetUpload(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, domain.UploadStatusCompleted, upload.Status)
}

func TestGetUpload_UnauthorizedInvalidatesToken(t *testing.T) {
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "token expired"})
	})
	tokens.Set("stale-token")

	invalidated := false
	tokens.OnInvalidate(func() {
		invalidated = true
	})

	_, err := client.GetUpload(context.Background(), "u1")

	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.True(t, invalidated)
	assert.False(t, tokens.Authenticated())
}

func TestSyncToGateway_GateRejection(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":        "verification of payee pending",
			"vop_required": true,
			"vop_pending":  3,
		})
	})

	_, err := client.SyncToGateway(context.Background(), "u1")

	require.Error(t, err)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsGateRejection())
	assert.Equal(t, 3, apiErr.VopPending)
}

func TestSubmitUpload_SynchronousCompletion(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "clients.csv", header.Filename)

		json.NewEncoder(w).Encode(domain.UploadResult{
			Upload:  domain.Upload{ID: "u1", Status: domain.UploadStatusCompleted, TotalRecords: 8},
			Created: 8,
			Skipped: domain.SkippedCounts{Total: 2, Blacklisted: 2},
		})
	})

	result, err := client.SubmitUpload(context.Background(), "clients.csv", strings.NewReader("name,iban\n"))

	require.NoError(t, err)
	assert.False(t, result.Queued)
	assert.Equal(t, 8, result.Created)
	assert.Equal(t, 2, result.Skipped.Blacklisted)
}

func TestSubmitUpload_QueuedAcceptance(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(domain.UploadResult{
			Upload: domain.Upload{ID: "u1", Status: domain.UploadStatusPending},
		})
	})

	result, err := client.SubmitUpload(context.Background(), "clients.csv", strings.NewReader("name,iban\n"))

	require.NoError(t, err)
	assert.True(t, result.Queued)
	assert.Equal(t, domain.UploadStatusPending, result.Upload.Status)
}

func TestListDebtors_QueryParameters(t *testing.T) {
	var gotQuery map[string]string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"page":              r.URL.Query().Get("page"),
			"per_page":          r.URL.Query().Get("per_page"),
			"validation_status": r.URL.Query().Get("validation_status"),
			"search":            r.URL.Query().Get("search"),
		}
		json.NewEncoder(w).Encode(domain.DebtorPage{Page: 2, PerPage: 100})
	})

	status := domain.ValidationStatusInvalid
	_, err := client.ListDebtors(context.Background(), "u1", domain.DebtorQuery{
		Page:             2,
		PerPage:          100,
		ValidationStatus: &status,
		Search:           "doe",
	})

	require.NoError(t, err)
	assert.Equal(t, "2", gotQuery["page"])
	assert.Equal(t, "100", gotQuery["per_page"])
	assert.Equal(t, "invalid", gotQuery["validation_status"])
	assert.Equal(t, "doe", gotQuery["search"])
}

func TestFilterChargebacks_ReturnsRemovedCount(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		json.NewEncoder(w).Encode(map[string]int{"removed": 4})
	})

	removed, err := client.FilterChargebacks(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, 4, removed)
}
