package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/WebOleg/tether-admin/internal/backend"
	"github.com/WebOleg/tether-admin/internal/domain"
	"github.com/WebOleg/tether-admin/internal/notify"
	"github.com/WebOleg/tether-admin/pkg/logger"
	"github.com/WebOleg/tether-admin/pkg/poller"
	"github.com/google/uuid"
)

// GateClosedError is the local VOP gate refusal. It carries the pending
// count so the surface can offer the remediation (trigger verification)
// instead of a dead end.
type GateClosedError struct {
	Pending int
}

func (e *GateClosedError) Error() string {
	return fmt.Sprintf("vop gate closed: %d verifications pending", e.Pending)
}

func (e *GateClosedError) Unwrap() error {
	return domain.ErrVopGateClosed
}

// DetailSession is the server-side equivalent of one open upload-detail
// view. All state is scoped to the session; Close tears down every loop it
// owns. Stale poll responses are discarded through per-concern generation
// counters.
type DetailSession struct {
	ID       string
	UploadID string

	manager *Manager
	logger  *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu           sync.RWMutex
	upload       *domain.Upload
	debtors      *domain.DebtorPage
	valStats     *domain.ValidationStats
	vopStats     *domain.VopStats
	billingStats *domain.BillingStats
	statsReady   bool
	query        domain.DebtorQuery
	closed       bool

	vopPoll     *poller.Poller
	billingPoll *poller.Poller

	debtorGen atomic.Uint64
	statsGen  atomic.Uint64

	searchDebounce *debouncer
}

// SessionView is the renderable snapshot of a session.
type SessionView struct {
	ID              string                  `json:"id"`
	UploadID        string                  `json:"upload_id"`
	Upload          *domain.Upload          `json:"upload,omitempty"`
	Debtors         *domain.DebtorPage      `json:"debtors,omitempty"`
	ValidationStats *domain.ValidationStats `json:"validation_stats,omitempty"`
	VopStats        *domain.VopStats        `json:"vop_stats,omitempty"`
	BillingStats    *domain.BillingStats    `json:"billing_stats,omitempty"`
	StatsReady      bool                    `json:"stats_ready"`
	GateOpen        bool                    `json:"gate_open"`
	VopPolling      bool                    `json:"vop_polling"`
	BillingPolling  bool                    `json:"billing_polling"`
}

// OpenSession runs the ordered init sequence for an upload-detail view:
// fetch the upload, run validation, fetch the first debtor page and the
// validation stats in parallel, then fetch VOP stats. A validation failure
// aborts the sequence; completed steps are not rolled back (the backend is
// authoritative for consistency).
func (m *Manager) OpenSession(ctx context.Context, uploadID string) (*DetailSession, error) {
	sessionID := uuid.New().String()
	ctx = logger.WithSessionID(logger.WithUploadID(ctx, uploadID), sessionID)

	sessionCtx, cancel := context.WithCancel(context.Background())
	sessionCtx = logger.WithSessionID(logger.WithUploadID(sessionCtx, uploadID), sessionID)

	s := &DetailSession{
		ID:             sessionID,
		UploadID:       uploadID,
		manager:        m,
		logger:         m.logger,
		ctx:            sessionCtx,
		cancel:         cancel,
		searchDebounce: newDebouncer(m.debounce),
		query: domain.DebtorQuery{
			Page:    1,
			PerPage: m.pageSize,
		},
	}

	m.logger.Info(ctx, "Opening upload detail session")

	// Step 1: fetch the upload.
	upload, err := m.client.GetUpload(ctx, uploadID)
	if err != nil {
		cancel()
		return nil, err
	}
	s.upload = upload
	if err := m.repo.SaveUpload(ctx, *upload); err != nil {
		m.logger.Warn(ctx, "Failed to cache upload snapshot", "error", err)
	}

	// Step 2: run validation, awaited before anything else proceeds.
	if err := m.client.ValidateUpload(ctx, uploadID); err != nil {
		m.logger.Error(ctx, "Validation run failed", "error", err)
		cancel()
		return nil, fmt.Errorf("%w: %v", domain.ErrValidationFailed, err)
	}

	// Step 3: debtor page and validation stats in parallel. No ordering
	// between the two, but both must land before stats are ready.
	var (
		wg       sync.WaitGroup
		page     *domain.DebtorPage
		stats    *domain.ValidationStats
		pageErr  error
		statsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		page, pageErr = m.client.ListDebtors(ctx, uploadID, s.query)
	}()
	go func() {
		defer wg.Done()
		stats, statsErr = m.client.GetValidationStats(ctx, uploadID)
	}()
	wg.Wait()

	if pageErr != nil {
		cancel()
		return nil, fmt.Errorf("failed to fetch debtors: %w", pageErr)
	}
	if statsErr != nil {
		cancel()
		return nil, fmt.Errorf("failed to fetch validation stats: %w", statsErr)
	}

	s.debtors = page
	s.valStats = stats
	s.statsReady = true

	// Step 4: VOP stats. A failure here is transient by assumption and
	// leaves the gate state unknown until the next fetch.
	vopStats, err := m.client.GetVopStats(ctx, uploadID)
	if err != nil {
		m.logger.Warn(ctx, "VOP stats fetch failed during init", "error", err)
	} else {
		s.vopStats = vopStats
	}

	m.mu.Lock()
	m.init()
	m.sessions[sessionID] = s
	m.mu.Unlock()

	m.logger.Info(ctx, "Session opened",
		"debtors", len(page.Items),
		"total", page.Total,
	)

	return s, nil
}

// Snapshot returns the current renderable state.
func (s *DetailSession) Snapshot() SessionView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := SessionView{
		ID:              s.ID,
		UploadID:        s.UploadID,
		Upload:          s.upload,
		Debtors:         s.debtors,
		ValidationStats: s.valStats,
		VopStats:        s.vopStats,
		BillingStats:    s.billingStats,
		StatsReady:      s.statsReady,
	}
	if s.vopStats != nil {
		view.GateOpen = s.vopStats.GateOpen()
	}
	if s.vopPoll != nil {
		select {
		case <-s.vopPoll.Done():
		default:
			view.VopPolling = true
		}
	}
	if s.billingPoll != nil {
		select {
		case <-s.billingPoll.Done():
		default:
			view.BillingPolling = true
		}
	}

	return view
}

// SetSearch schedules a debounced debtor re-fetch with the new search term.
// Typing bursts collapse into one request.
func (s *DetailSession) SetSearch(term string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.query.Search = term
	s.query.Page = 1
	s.mu.Unlock()

	s.searchDebounce.trigger(func() {
		s.refreshDebtors(s.ctx)
	})
}

// SetPage re-fetches immediately; page changes are not debounced.
func (s *DetailSession) SetPage(page int) {
	if page < 1 {
		page = 1
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.query.Page = page
	s.mu.Unlock()

	s.refreshDebtors(s.ctx)
}

// SetStatusFilter re-fetches immediately with a validation-status filter.
func (s *DetailSession) SetStatusFilter(status *domain.ValidationStatus) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.query.ValidationStatus = status
	s.query.Page = 1
	s.mu.Unlock()

	s.refreshDebtors(s.ctx)
}

// refreshDebtors fetches the debtor list for the current query. A response
// belonging to a superseded request is discarded.
func (s *DetailSession) refreshDebtors(ctx context.Context) {
	gen := s.debtorGen.Add(1)

	s.mu.RLock()
	query := s.query
	s.mu.RUnlock()

	page, err := s.manager.client.ListDebtors(ctx, s.UploadID, query)
	if err != nil {
		s.logger.Error(ctx, "Debtor list fetch failed", "error", err)
		return
	}

	if s.debtorGen.Load() != gen {
		s.logger.Debug(ctx, "Discarding stale debtor response", "generation", gen)
		return
	}

	s.mu.Lock()
	if !s.closed {
		s.debtors = page
	}
	s.mu.Unlock()
}

// refreshValidationStats re-fetches the aggregate. Stats are recomputed by
// the backend on demand, so every mutating action is followed by a fresh
// fetch rather than a local adjustment.
func (s *DetailSession) refreshValidationStats(ctx context.Context) {
	gen := s.statsGen.Add(1)

	stats, err := s.manager.client.GetValidationStats(ctx, s.UploadID)
	if err != nil {
		s.logger.Error(ctx, "Validation stats fetch failed", "error", err)
		return
	}

	if s.statsGen.Load() != gen {
		return
	}

	s.mu.Lock()
	if !s.closed {
		s.valStats = stats
	}
	s.mu.Unlock()
}

// Debtors returns the current page.
func (s *DetailSession) Debtors() *domain.DebtorPage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.debtors
}

// UpdateDebtor saves a row edit, then refreshes validation stats and the
// current page so counts reflect the edit.
func (s *DetailSession) UpdateDebtor(ctx context.Context, debtorID string, rawData map[string]string) (*domain.Debtor, error) {
	debtor, err := s.manager.client.UpdateDebtor(ctx, debtorID, rawData)
	if err != nil {
		return nil, err
	}

	s.refreshValidationStats(ctx)
	s.refreshDebtors(ctx)

	return debtor, nil
}

// DeleteDebtor removes a row, then refreshes stats and the current page.
func (s *DetailSession) DeleteDebtor(ctx context.Context, debtorID string) error {
	if err := s.manager.client.DeleteDebtor(ctx, debtorID); err != nil {
		return err
	}

	s.refreshValidationStats(ctx)
	s.refreshDebtors(ctx)

	return nil
}

// FilterChargebacks removes all chargebacked rows. One-shot and
// synchronous on the backend side; the debtor list and stats are refreshed
// afterwards. Requires explicit confirmation.
func (s *DetailSession) FilterChargebacks(ctx context.Context, confirmed bool) (int, error) {
	if !confirmed {
		return 0, domain.ErrConfirmationNeeded
	}

	removed, err := s.manager.client.FilterChargebacks(ctx, s.UploadID)
	if err != nil {
		return 0, err
	}

	s.logger.Info(ctx, "Chargebacked debtors removed", "removed", removed)

	s.refreshDebtors(ctx)
	s.refreshValidationStats(ctx)

	return removed, nil
}

// TriggerVop starts a verification batch and a bounded VOP polling loop:
// one poll per VopInterval, at most VopMaxPolls cycles, then the loop stops
// unconditionally regardless of outcome. Per-cycle fetch errors are
// tolerated; the next tick retries.
func (s *DetailSession) TriggerVop(ctx context.Context) error {
	if err := s.manager.client.TriggerVopVerification(ctx, s.UploadID); err != nil {
		s.logger.Error(ctx, "VOP verification trigger failed", "error", err)
		return err
	}

	s.logger.Info(ctx, "VOP verification triggered")

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrSessionClosed
	}
	if s.vopPoll != nil {
		s.vopPoll.Stop()
	}

	p := poller.Start(s.ctx, s.manager.cfg.VopInterval, func(tickCtx context.Context, cycle int) poller.Action {
		stats, err := s.manager.client.GetVopStats(tickCtx, s.UploadID)
		if err != nil {
			s.logger.Warn(s.ctx, "VOP poll cycle failed",
				"cycle", cycle,
				"error", err,
			)
			return poller.Continue
		}

		s.mu.Lock()
		if !s.closed {
			s.vopStats = stats
		}
		s.mu.Unlock()

		if stats.Pending == 0 {
			s.manager.publish(s.ctx, notify.EventTypeVopCompleted, s.UploadID, "success",
				fmt.Sprintf("verification of payee finished: %d verified", stats.Verified))
			return poller.Stop
		}
		return poller.Continue
	},
		poller.WithDelayedStart(),
		poller.WithMaxPolls(s.manager.cfg.VopMaxPolls),
	)
	s.vopPoll = p
	s.mu.Unlock()

	go func() {
		if p.Wait() == poller.OutcomeExhausted {
			s.manager.publish(s.ctx, notify.EventTypeVopTimeout, s.UploadID, "warning",
				"verification of payee still pending after polling window")
		}
	}()

	return nil
}

// GateOpen evaluates the VOP gate against the freshest stats available,
// fetching them when none are cached. The predicate here is the same one
// used to interpret the backend's 422: the local check is a convenience
// short-circuit, never the sole enforcement point.
func (s *DetailSession) GateOpen(ctx context.Context) (bool, *domain.VopStats, error) {
	s.mu.RLock()
	stats := s.vopStats
	s.mu.RUnlock()

	if stats == nil {
		fetched, err := s.manager.client.GetVopStats(ctx, s.UploadID)
		if err != nil {
			return false, nil, err
		}
		s.mu.Lock()
		if !s.closed {
			s.vopStats = fetched
		}
		s.mu.Unlock()
		stats = fetched
	}

	return stats.GateOpen(), stats, nil
}

// SyncToGateway submits valid debtors for billing. The action is refused
// locally while the VOP gate is closed, before any sync request is sent,
// and requires explicit confirmation (it costs money). A queued response
// starts the billing polling loop.
func (s *DetailSession) SyncToGateway(ctx context.Context, confirmed bool) (*domain.SyncResult, error) {
	if !confirmed {
		return nil, domain.ErrConfirmationNeeded
	}

	open, stats, err := s.GateOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate vop gate: %w", err)
	}
	if !open {
		s.logger.Warn(ctx, "Sync refused locally, vop gate closed",
			"pending", stats.Pending,
			"total_eligible", stats.TotalEligible,
		)
		return nil, &GateClosedError{Pending: stats.Pending}
	}

	result, err := s.manager.client.SyncToGateway(ctx, s.UploadID)
	if err != nil {
		// Defense in depth: the backend re-validates the gate with its
		// own authoritative state and may refuse what we allowed.
		if apiErr, ok := backend.AsAPIError(err); ok && apiErr.IsGateRejection() {
			s.logger.Warn(ctx, "Backend refused sync on vop gate",
				"vop_pending", apiErr.VopPending,
			)
			s.manager.publish(s.ctx, notify.EventTypeSyncRejected, s.UploadID, "warning",
				"billing sync refused: verification of payee pending")
			return nil, &GateClosedError{Pending: apiErr.VopPending}
		}
		return nil, err
	}

	s.logger.Info(ctx, "Billing sync accepted",
		"outcome", result.Outcome,
		"enqueued", result.Enqueued,
	)

	// Only a queued response starts polling: on a duplicate the batch
	// belongs to whoever started it, announcing its completion here would
	// double up.
	if result.Outcome == domain.SyncOutcomeQueued {
		s.watchBilling()
	}

	return result, nil
}

// watchBilling polls billing stats every BillingInterval while the backend
// reports an in-flight batch, then announces completion once. The loop has
// no wall budget, unlike VOP polling; it runs as long as is_processing
// holds or until the session closes.
func (s *DetailSession) watchBilling() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.billingPoll != nil {
		select {
		case <-s.billingPoll.Done():
			// previous loop finished; start a new one
		default:
			return
		}
	}

	s.billingPoll = poller.Start(s.ctx, s.manager.cfg.BillingInterval, func(tickCtx context.Context, cycle int) poller.Action {
		stats, err := s.manager.client.GetBillingStats(tickCtx, s.UploadID)
		if err != nil {
			s.logger.Warn(s.ctx, "Billing poll cycle failed",
				"cycle", cycle,
				"error", err,
			)
			return poller.Continue
		}

		s.mu.Lock()
		if !s.closed {
			s.billingStats = stats
		}
		s.mu.Unlock()

		if stats.IsProcessing {
			return poller.Continue
		}

		s.manager.publish(s.ctx, notify.EventTypeBillingCompleted, s.UploadID, "success",
			fmt.Sprintf("billing batch finished: %d succeeded, %d failed", stats.Succeeded, stats.Failed))
		return poller.Stop
	})
}

// Close cancels every loop and pending debounce owned by the session. No
// timer survives teardown.
func (s *DetailSession) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	vopPoll := s.vopPoll
	billingPoll := s.billingPoll
	s.mu.Unlock()

	s.searchDebounce.stop()
	s.cancel()

	if vopPoll != nil {
		<-vopPoll.Done()
	}
	if billingPoll != nil {
		<-billingPoll.Done()
	}

	s.logger.Info(s.ctx, "Session closed")
}
