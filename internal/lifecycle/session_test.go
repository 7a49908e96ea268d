package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/WebOleg/tether-admin/internal/backend"
	"github.com/WebOleg/tether-admin/internal/domain"
	"github.com/WebOleg/tether-admin/mocks"
	"github.com/WebOleg/tether-admin/pkg/poller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// expectInit registers the ordered init sequence for one OpenSession call.
func expectInit(client *mocks.MockClient, vop *domain.VopStats) {
	client.EXPECT().GetUpload(mock.Anything, "u1").Return(&domain.Upload{
		ID:     "u1",
		Status: domain.UploadStatusCompleted,
	}, nil).Once()
	client.EXPECT().ValidateUpload(mock.Anything, "u1").Return(nil).Once()
	client.EXPECT().ListDebtors(mock.Anything, "u1", mock.Anything).Return(&domain.DebtorPage{
		Items:   []domain.Debtor{{ID: "d1", Name: "John Doe"}},
		Page:    1,
		PerPage: 100,
		Total:   1,
	}, nil).Once()
	client.EXPECT().GetValidationStats(mock.Anything, "u1").Return(&domain.ValidationStats{
		Total: 1,
		Valid: 1,
	}, nil).Once()
	client.EXPECT().GetVopStats(mock.Anything, "u1").Return(vop, nil).Once()
}

func openTestSession(t *testing.T, client *mocks.MockClient, m *Manager, vop *domain.VopStats) *DetailSession {
	t.Helper()

	expectInit(client, vop)

	s, err := m.OpenSession(context.Background(), "u1")
	require.NoError(t, err)
	t.Cleanup(s.Close)

	return s
}

func TestOpenSession_InitSequence(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)

	s := openTestSession(t, client, m, &domain.VopStats{TotalEligible: 5, Pending: 0, Verified: 5})

	view := s.Snapshot()
	assert.Equal(t, "u1", view.UploadID)
	assert.True(t, view.StatsReady)
	assert.True(t, view.GateOpen)
	assert.Len(t, view.Debtors.Items, 1)
	assert.Equal(t, 1, view.ValidationStats.Valid)
	assert.False(t, view.VopPolling)
	assert.False(t, view.BillingPolling)
}

func TestOpenSession_ValidationFailureAborts(t *testing.T) {
	// only the first two steps may run: ListDebtors, GetValidationStats and
	// GetVopStats have no expectations and would fail the test
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)

	client.EXPECT().GetUpload(mock.Anything, "u1").Return(&domain.Upload{
		ID:     "u1",
		Status: domain.UploadStatusCompleted,
	}, nil).Once()
	client.EXPECT().ValidateUpload(mock.Anything, "u1").Return(errors.New("validation blew up")).Once()

	_, err := m.OpenSession(context.Background(), "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidationFailed)

	_, sessionErr := m.Session("u1")
	assert.ErrorIs(t, sessionErr, domain.ErrSessionNotFound)
}

func TestOpenSession_VopStatsFailureIsTolerated(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)

	client.EXPECT().GetUpload(mock.Anything, "u1").Return(&domain.Upload{
		ID:     "u1",
		Status: domain.UploadStatusCompleted,
	}, nil).Once()
	client.EXPECT().ValidateUpload(mock.Anything, "u1").Return(nil).Once()
	client.EXPECT().ListDebtors(mock.Anything, "u1", mock.Anything).Return(&domain.DebtorPage{Page: 1}, nil).Once()
	client.EXPECT().GetValidationStats(mock.Anything, "u1").Return(&domain.ValidationStats{}, nil).Once()
	client.EXPECT().GetVopStats(mock.Anything, "u1").Return(nil, errors.New("vop backend down")).Once()

	s, err := m.OpenSession(context.Background(), "u1")

	require.NoError(t, err)
	t.Cleanup(s.Close)

	view := s.Snapshot()
	assert.True(t, view.StatsReady)
	assert.Nil(t, view.VopStats)
	assert.False(t, view.GateOpen)
}

func TestSetSearch_DebouncesBursts(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)
	s := openTestSession(t, client, m, &domain.VopStats{})

	// one fetch for the whole burst, carrying the final term
	done := make(chan domain.DebtorQuery, 1)
	client.EXPECT().ListDebtors(mock.Anything, "u1", mock.Anything).RunAndReturn(
		func(ctx context.Context, uploadID string, q domain.DebtorQuery) (*domain.DebtorPage, error) {
			done <- q
			return &domain.DebtorPage{Page: 1, Total: 0}, nil
		}).Once()

	s.SetSearch("j")
	s.SetSearch("jo")
	s.SetSearch("john")

	select {
	case q := <-done:
		assert.Equal(t, "john", q.Search)
		assert.Equal(t, 1, q.Page)
	case <-time.After(time.Second):
		t.Fatal("debounced search never fired")
	}
}

func TestSetPage_RefreshesImmediately(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)
	s := openTestSession(t, client, m, &domain.VopStats{})

	client.EXPECT().ListDebtors(mock.Anything, "u1", mock.MatchedBy(func(q domain.DebtorQuery) bool {
		return q.Page == 3
	})).Return(&domain.DebtorPage{Page: 3}, nil).Once()

	s.SetPage(3)

	assert.Equal(t, 3, s.Debtors().Page)
}

func TestSetStatusFilter_ResetsPage(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)
	s := openTestSession(t, client, m, &domain.VopStats{})

	invalid := domain.ValidationStatusInvalid
	client.EXPECT().ListDebtors(mock.Anything, "u1", mock.MatchedBy(func(q domain.DebtorQuery) bool {
		return q.Page == 1 && q.ValidationStatus != nil && *q.ValidationStatus == invalid
	})).Return(&domain.DebtorPage{Page: 1}, nil).Once()

	s.SetStatusFilter(&invalid)
}

func TestUpdateDebtor_RefreshesStatsAndPage(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)
	s := openTestSession(t, client, m, &domain.VopStats{})

	rawData := map[string]string{"iban": "DE89370400440532013000"}
	client.EXPECT().UpdateDebtor(mock.Anything, "d1", rawData).Return(&domain.Debtor{
		ID:               "d1",
		ValidationStatus: domain.ValidationStatusValid,
	}, nil).Once()
	client.EXPECT().GetValidationStats(mock.Anything, "u1").Return(&domain.ValidationStats{Valid: 2}, nil).Once()
	client.EXPECT().ListDebtors(mock.Anything, "u1", mock.Anything).Return(&domain.DebtorPage{Page: 1}, nil).Once()

	debtor, err := s.UpdateDebtor(context.Background(), "d1", rawData)

	require.NoError(t, err)
	assert.Equal(t, domain.ValidationStatusValid, debtor.ValidationStatus)
	assert.Equal(t, 2, s.Snapshot().ValidationStats.Valid)
}

func TestDeleteDebtor_RefreshesStatsAndPage(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)
	s := openTestSession(t, client, m, &domain.VopStats{})

	client.EXPECT().DeleteDebtor(mock.Anything, "d1").Return(nil).Once()
	client.EXPECT().GetValidationStats(mock.Anything, "u1").Return(&domain.ValidationStats{}, nil).Once()
	client.EXPECT().ListDebtors(mock.Anything, "u1", mock.Anything).Return(&domain.DebtorPage{Total: 0}, nil).Once()

	require.NoError(t, s.DeleteDebtor(context.Background(), "d1"))
}

func TestFilterChargebacks_RequiresConfirmation(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)
	s := openTestSession(t, client, m, &domain.VopStats{})

	_, err := s.FilterChargebacks(context.Background(), false)

	assert.ErrorIs(t, err, domain.ErrConfirmationNeeded)
}

func TestFilterChargebacks_Confirmed(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)
	s := openTestSession(t, client, m, &domain.VopStats{})

	client.EXPECT().FilterChargebacks(mock.Anything, "u1").Return(4, nil).Once()
	client.EXPECT().ListDebtors(mock.Anything, "u1", mock.Anything).Return(&domain.DebtorPage{Total: 6}, nil).Once()
	client.EXPECT().GetValidationStats(mock.Anything, "u1").Return(&domain.ValidationStats{Total: 6}, nil).Once()

	removed, err := s.FilterChargebacks(context.Background(), true)

	require.NoError(t, err)
	assert.Equal(t, 4, removed)
}

func TestTriggerVop_PollsUntilNonePending(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)
	s := openTestSession(t, client, m, &domain.VopStats{TotalEligible: 3, Pending: 3})

	client.EXPECT().TriggerVopVerification(mock.Anything, "u1").Return(nil).Once()
	client.EXPECT().GetVopStats(mock.Anything, "u1").Return(&domain.VopStats{
		TotalEligible: 3, Pending: 2, Verified: 1,
	}, nil).Once()
	client.EXPECT().GetVopStats(mock.Anything, "u1").Return(&domain.VopStats{
		TotalEligible: 3, Pending: 0, Verified: 3,
	}, nil).Once()

	require.NoError(t, s.TriggerVop(context.Background()))

	s.mu.RLock()
	p := s.vopPoll
	s.mu.RUnlock()
	require.NotNil(t, p)
	assert.Equal(t, poller.OutcomeCompleted, p.Wait())

	view := s.Snapshot()
	assert.True(t, view.GateOpen)
	assert.Equal(t, 3, view.VopStats.Verified)
}

func TestTriggerVop_StopsAfterMaxPolls(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)
	m.cfg.VopMaxPolls = 3
	s := openTestSession(t, client, m, &domain.VopStats{TotalEligible: 3, Pending: 3})

	client.EXPECT().TriggerVopVerification(mock.Anything, "u1").Return(nil).Once()
	client.EXPECT().GetVopStats(mock.Anything, "u1").Return(&domain.VopStats{
		TotalEligible: 3, Pending: 3,
	}, nil).Times(3)

	require.NoError(t, s.TriggerVop(context.Background()))

	s.mu.RLock()
	p := s.vopPoll
	s.mu.RUnlock()
	assert.Equal(t, poller.OutcomeExhausted, p.Wait())
}

func TestTriggerVop_ToleratesCycleErrors(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)
	s := openTestSession(t, client, m, &domain.VopStats{TotalEligible: 1, Pending: 1})

	client.EXPECT().TriggerVopVerification(mock.Anything, "u1").Return(nil).Once()
	client.EXPECT().GetVopStats(mock.Anything, "u1").Return(nil, errors.New("flaky")).Once()
	client.EXPECT().GetVopStats(mock.Anything, "u1").Return(&domain.VopStats{
		TotalEligible: 1, Pending: 0, Verified: 1,
	}, nil).Once()

	require.NoError(t, s.TriggerVop(context.Background()))

	s.mu.RLock()
	p := s.vopPoll
	s.mu.RUnlock()
	assert.Equal(t, poller.OutcomeCompleted, p.Wait())
}

func TestSyncToGateway_RequiresConfirmation(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)
	s := openTestSession(t, client, m, &domain.VopStats{})

	_, err := s.SyncToGateway(context.Background(), false)

	assert.ErrorIs(t, err, domain.ErrConfirmationNeeded)
}

func TestSyncToGateway_RefusedLocallyWhileGateClosed(t *testing.T) {
	// SyncToGateway has no expectation: the refusal must happen before any
	// sync request is sent
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)
	s := openTestSession(t, client, m, &domain.VopStats{TotalEligible: 5, Pending: 2})

	_, err := s.SyncToGateway(context.Background(), true)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVopGateClosed)

	var gateErr *GateClosedError
	require.ErrorAs(t, err, &gateErr)
	assert.Equal(t, 2, gateErr.Pending)
}

func TestSyncToGateway_BackendGateRejection(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)
	s := openTestSession(t, client, m, &domain.VopStats{TotalEligible: 5, Pending: 0})

	client.EXPECT().SyncToGateway(mock.Anything, "u1").Return(nil, &backend.APIError{
		StatusCode:  422,
		Message:     "verification of payee pending",
		VopRequired: true,
		VopPending:  3,
	}).Once()

	_, err := s.SyncToGateway(context.Background(), true)

	var gateErr *GateClosedError
	require.ErrorAs(t, err, &gateErr)
	assert.Equal(t, 3, gateErr.Pending)
}

func TestSyncToGateway_QueuedStartsBillingPolling(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)
	s := openTestSession(t, client, m, &domain.VopStats{TotalEligible: 5, Pending: 0})

	client.EXPECT().SyncToGateway(mock.Anything, "u1").Return(&domain.SyncResult{
		Outcome:  domain.SyncOutcomeQueued,
		Enqueued: 5,
	}, nil).Once()
	client.EXPECT().GetBillingStats(mock.Anything, "u1").Return(&domain.BillingStats{
		IsProcessing: true,
	}, nil).Once()
	client.EXPECT().GetBillingStats(mock.Anything, "u1").Return(&domain.BillingStats{
		TotalAttempts: 5,
		Succeeded:     4,
		Failed:        1,
	}, nil).Once()

	result, err := s.SyncToGateway(context.Background(), true)

	require.NoError(t, err)
	assert.Equal(t, domain.SyncOutcomeQueued, result.Outcome)

	s.mu.RLock()
	p := s.billingPoll
	s.mu.RUnlock()
	require.NotNil(t, p)
	assert.Equal(t, poller.OutcomeCompleted, p.Wait())

	view := s.Snapshot()
	assert.Equal(t, 4, view.BillingStats.Succeeded)
	assert.False(t, view.BillingPolling)
}

func TestSyncToGateway_DuplicateDoesNotStartBillingPolling(t *testing.T) {
	// GetBillingStats has no expectation: a duplicate response means the
	// batch belongs to another sync, this session must not poll it
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)
	s := openTestSession(t, client, m, &domain.VopStats{TotalEligible: 5, Pending: 0})

	client.EXPECT().SyncToGateway(mock.Anything, "u1").Return(&domain.SyncResult{
		Outcome: domain.SyncOutcomeDuplicate,
		Message: "a billing batch is already in flight",
	}, nil).Once()

	result, err := s.SyncToGateway(context.Background(), true)

	require.NoError(t, err)
	assert.Equal(t, domain.SyncOutcomeDuplicate, result.Outcome)

	time.Sleep(50 * time.Millisecond)

	s.mu.RLock()
	p := s.billingPoll
	s.mu.RUnlock()
	assert.Nil(t, p)
	assert.False(t, s.Snapshot().BillingPolling)
}

func TestClose_StopsPollingLoops(t *testing.T) {
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)
	s := openTestSession(t, client, m, &domain.VopStats{TotalEligible: 3, Pending: 3})

	client.EXPECT().TriggerVopVerification(mock.Anything, "u1").Return(nil).Once()
	client.EXPECT().GetVopStats(mock.Anything, "u1").Return(&domain.VopStats{
		TotalEligible: 3, Pending: 3,
	}, nil).Maybe()

	require.NoError(t, s.TriggerVop(context.Background()))

	s.Close()

	s.mu.RLock()
	p := s.vopPoll
	s.mu.RUnlock()
	select {
	case <-p.Done():
	default:
		t.Fatal("vop poller still running after Close")
	}

	// a second Close is a no-op
	s.Close()
}

func TestClose_CancelsPendingDebounce(t *testing.T) {
	// no ListDebtors expectation beyond init: the debounced fetch must never
	// fire once the session is closed
	client := mocks.NewMockClient(t)
	m, _ := newTestManager(t, client)
	s := openTestSession(t, client, m, &domain.VopStats{})

	s.SetSearch("john")
	s.Close()

	time.Sleep(50 * time.Millisecond)
}
