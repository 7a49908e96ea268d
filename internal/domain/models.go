package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type UploadStatus string

const (
	UploadStatusPending    UploadStatus = "pending"
	UploadStatusProcessing UploadStatus = "processing"
	UploadStatusCompleted  UploadStatus = "completed"
	UploadStatusFailed     UploadStatus = "failed"
)

// IsTerminal reports whether no further status change can happen.
func (s UploadStatus) IsTerminal() bool {
	return s == UploadStatusCompleted || s == UploadStatusFailed
}

// Upload mirrors the backend's upload record. The backend owns and mutates
// it; the gateway holds read-through snapshots only.
type Upload struct {
	ID               string       `json:"id"`
	Filename         string       `json:"filename"`
	Status           UploadStatus `json:"status"`
	TotalRecords     int          `json:"total_records"`
	ProcessedRecords int          `json:"processed_records"`
	FailedRecords    int          `json:"failed_records"`
	Headers          []string     `json:"headers,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	CompletedAt      *time.Time   `json:"completed_at,omitempty"`
}

type ValidationStatus string

const (
	ValidationStatusPending ValidationStatus = "pending"
	ValidationStatusValid   ValidationStatus = "valid"
	ValidationStatusInvalid ValidationStatus = "invalid"
)

// Debtor is one row derived from an uploaded file.
type Debtor struct {
	ID               string            `json:"id"`
	UploadID         string            `json:"upload_id"`
	Name             string            `json:"name"`
	MaskedIBAN       string            `json:"masked_iban"`
	Amount           decimal.Decimal   `json:"amount"`
	ValidationStatus ValidationStatus  `json:"validation_status"`
	ValidationErrors []string          `json:"validation_errors,omitempty"`
	RawData          map[string]string `json:"raw_data,omitempty"`
	HasChargeback    bool              `json:"has_chargeback"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// DisplayStatus is the status shown in listings: a chargeback on the
// debtor's latest billing attempt overrides the validation status.
func (d Debtor) DisplayStatus() string {
	if d.HasChargeback {
		return "chargeback"
	}
	return string(d.ValidationStatus)
}

// SkippedCounts breaks down rows excluded at upload time by dedup reason.
type SkippedCounts struct {
	Total             int `json:"total"`
	Blacklisted       int `json:"blacklisted"`
	Chargebacked      int `json:"chargebacked"`
	AlreadyRecovered  int `json:"already_recovered"`
	RecentlyAttempted int `json:"recently_attempted"`
}

// UploadResult is the backend's answer to a file submission. Queued is set
// on the 202 shape: counts are not known yet and arrive via status polling.
type UploadResult struct {
	Upload  Upload        `json:"upload"`
	Created int           `json:"created"`
	Failed  int           `json:"failed"`
	Skipped SkippedCounts `json:"skipped"`
	Queued  bool          `json:"queued"`
}

// ValidationStats is a snapshot aggregate recomputed by the backend on
// demand. It is fetched fresh after every mutating action, never cached
// across mutations.
type ValidationStats struct {
	Total        int `json:"total"`
	Pending      int `json:"pending"`
	Valid        int `json:"valid"`
	Invalid      int `json:"invalid"`
	Blacklisted  int `json:"blacklisted"`
	Chargebacked int `json:"chargebacked"`
	ReadyForSync int `json:"ready_for_sync"`
}

// VopStats aggregates verification-of-payee outcomes for one upload.
type VopStats struct {
	TotalEligible int `json:"total_eligible"`
	Pending       int `json:"pending"`
	Verified      int `json:"verified"`
}

// GateOpen is the VOP gate predicate: billing sync is permitted only when
// nothing is eligible or nothing is still pending. The local refusal and
// the interpretation of the backend's 422 both use this same predicate.
func (v VopStats) GateOpen() bool {
	return v.TotalEligible == 0 || v.Pending == 0
}

// BillingStats aggregates payment-gateway attempt outcomes for one upload.
type BillingStats struct {
	TotalAttempts int  `json:"total_attempts"`
	Succeeded     int  `json:"succeeded"`
	Failed        int  `json:"failed"`
	Chargebacks   int  `json:"chargebacks"`
	IsProcessing  bool `json:"is_processing"`
}

type SyncOutcome string

const (
	// SyncOutcomeQueued: a new billing batch was started.
	SyncOutcomeQueued SyncOutcome = "queued"
	// SyncOutcomeDuplicate: a batch is already in flight. Informational,
	// not an error.
	SyncOutcomeDuplicate SyncOutcome = "duplicate"
	// SyncOutcomeDone: the backend answered with an immediate result.
	SyncOutcomeDone SyncOutcome = "done"
)

// SyncResult is the backend's answer to a billing sync request.
type SyncResult struct {
	Outcome  SyncOutcome `json:"outcome"`
	Enqueued int         `json:"enqueued"`
	Message  string      `json:"message,omitempty"`
}

// DebtorPage is one page of the debtor listing.
type DebtorPage struct {
	Items   []Debtor `json:"items"`
	Page    int      `json:"page"`
	PerPage int      `json:"per_page"`
	Total   int      `json:"total"`
}

// DebtorQuery filters the debtor listing.
type DebtorQuery struct {
	Page             int
	PerPage          int
	ValidationStatus *ValidationStatus
	Search           string
}

// Notification is a user-facing lifecycle message, the server-side
// equivalent of a dashboard toast.
type Notification struct {
	ID        string    `json:"id"`
	UploadID  string    `json:"upload_id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
