// Package backend is the typed client for the remote debt-recovery admin
// API. All business logic lives behind these endpoints; the gateway only
// orchestrates calls and relays state.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/WebOleg/tether-admin/internal/config"
	"github.com/WebOleg/tether-admin/internal/domain"
	"github.com/WebOleg/tether-admin/internal/session"
	"github.com/WebOleg/tether-admin/pkg/logger"
)

// Client covers every admin endpoint the orchestration layer consumes.
type Client interface {
	SubmitUpload(ctx context.Context, filename string, file io.Reader) (*domain.UploadResult, error)
	GetUpload(ctx context.Context, uploadID string) (*domain.Upload, error)
	ValidateUpload(ctx context.Context, uploadID string) error
	GetValidationStats(ctx context.Context, uploadID string) (*domain.ValidationStats, error)
	ListDebtors(ctx context.Context, uploadID string, q domain.DebtorQuery) (*domain.DebtorPage, error)
	GetVopStats(ctx context.Context, uploadID string) (*domain.VopStats, error)
	TriggerVopVerification(ctx context.Context, uploadID string) error
	SyncToGateway(ctx context.Context, uploadID string) (*domain.SyncResult, error)
	GetBillingStats(ctx context.Context, uploadID string) (*domain.BillingStats, error)
	FilterChargebacks(ctx context.Context, uploadID string) (int, error)
	UpdateDebtor(ctx context.Context, debtorID string, rawData map[string]string) (*domain.Debtor, error)
	DeleteDebtor(ctx context.Context, debtorID string) error
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     *session.Store
	logger     *logger.Logger
}

func NewHTTPClient(cfg config.BackendConfig, tokens *session.Store, log *logger.Logger) *HTTPClient {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &HTTPClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
		logger: log,
	}
}

func (c *HTTPClient) SubmitUpload(ctx context.Context, filename string, file io.Reader) (*domain.UploadResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to buffer file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/admin/uploads", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated &&
		resp.StatusCode != http.StatusAccepted {
		return nil, c.errorFrom(resp)
	}

	var result domain.UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}

	// 202: the backend queued a background job and returned only the
	// upload identity. Counts arrive later through status polling.
	if resp.StatusCode == http.StatusAccepted {
		result.Queued = true
	}

	return &result, nil
}

func (c *HTTPClient) GetUpload(ctx context.Context, uploadID string) (*domain.Upload, error) {
	var upload domain.Upload
	if err := c.doJSON(ctx, http.MethodGet, "/admin/uploads/"+uploadID, nil, &upload); err != nil {
		return nil, err
	}
	return &upload, nil
}

func (c *HTTPClient) ValidateUpload(ctx context.Context, uploadID string) error {
	return c.doJSON(ctx, http.MethodPost, "/admin/uploads/"+uploadID+"/validate", nil, nil)
}

func (c *HTTPClient) GetValidationStats(ctx context.Context, uploadID string) (*domain.ValidationStats, error) {
	var stats domain.ValidationStats
	if err := c.doJSON(ctx, http.MethodGet, "/admin/uploads/"+uploadID+"/validation-stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *HTTPClient) ListDebtors(ctx context.Context, uploadID string, q domain.DebtorQuery) (*domain.DebtorPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("per_page", strconv.Itoa(q.PerPage))
	if q.ValidationStatus != nil {
		params.Set("validation_status", string(*q.ValidationStatus))
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}

	var page domain.DebtorPage
	path := "/admin/uploads/" + uploadID + "/debtors?" + params.Encode()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) GetVopStats(ctx context.Context, uploadID string) (*domain.VopStats, error) {
	var stats domain.VopStats
	if err := c.doJSON(ctx, http.MethodGet, "/admin/uploads/"+uploadID+"/vop-stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *HTTPClient) TriggerVopVerification(ctx context.Context, uploadID string) error {
	return c.doJSON(ctx, http.MethodPost, "/admin/uploads/"+uploadID+"/verify-vop", nil, nil)
}

func (c *HTTPClient) SyncToGateway(ctx context.Context, uploadID string) (*domain.SyncResult, error) {
	var result domain.SyncResult
	if err := c.doJSON(ctx, http.MethodPost, "/admin/uploads/"+uploadID+"/sync", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetBillingStats(ctx context.Context, uploadID string) (*domain.BillingStats, error) {
	var stats domain.BillingStats
	if err := c.doJSON(ctx, http.MethodGet, "/admin/uploads/"+uploadID+"/billing-stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *HTTPClient) FilterChargebacks(ctx context.Context, uploadID string) (int, error) {
	var result struct {
		Removed int `json:"removed"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/admin/uploads/"+uploadID+"/filter-chargebacks", nil, &result); err != nil {
		return 0, err
	}
	return result.Removed, nil
}

func (c *HTTPClient) UpdateDebtor(ctx context.Context, debtorID string, rawData map[string]string) (*domain.Debtor, error) {
	payload := map[string]interface{}{
		"raw_data": rawData,
	}

	var debtor domain.Debtor
	if err := c.doJSON(ctx, http.MethodPut, "/admin/debtors/"+debtorID, payload, &debtor); err != nil {
		return nil, err
	}
	return &debtor, nil
}

func (c *HTTPClient) DeleteDebtor(ctx context.Context, debtorID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/admin/debtors/"+debtorID, nil, nil)
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, payload interface{}, out interface{}) error {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFrom(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// errorFrom converts a non-2xx response into an APIError. A 401 invalidates
// the session token before returning: the backend token is gone, every
// later call would fail the same way.
func (c *HTTPClient) errorFrom(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
		c.logger.Debug(resp.Request.Context(), "Unparseable error body from backend",
			"status_code", resp.StatusCode,
		)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Warn(resp.Request.Context(), "Backend rejected token, invalidating session")
		c.tokens.Invalidate()
	}

	return apiErr
}
