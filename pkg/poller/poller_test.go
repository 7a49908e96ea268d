package poller

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoller_StopsOnStopAction(t *testing.T) {
	var ticks atomic.Int32

	p := Start(context.Background(), 5*time.Millisecond, func(ctx context.Context, cycle int) Action {
		ticks.Add(1)
		if cycle >= 3 {
			return Stop
		}
		return Continue
	})

	outcome := p.Wait()

	assert.Equal(t, OutcomeCompleted, outcome)
	assert.Equal(t, int32(3), ticks.Load())
}

func TestPoller_FirstTickImmediate(t *testing.T) {
	ticked := make(chan struct{})

	p := Start(context.Background(), 1*time.Hour, func(ctx context.Context, cycle int) Action {
		close(ticked)
		return Stop
	})
	defer p.Stop()

	select {
	case <-ticked:
	case <-time.After(time.Second):
		t.Fatal("first tick did not run immediately")
	}
}

func TestPoller_NoTickAfterStop(t *testing.T) {
	var ticks atomic.Int32

	p := Start(context.Background(), 10*time.Millisecond, func(ctx context.Context, cycle int) Action {
		ticks.Add(1)
		return Continue
	})

	time.Sleep(25 * time.Millisecond)
	p.Stop()
	<-p.Done()

	observed := ticks.Load()
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, observed, ticks.Load(), "tick ran after Done")
	assert.Equal(t, OutcomeCanceled, p.Outcome())
}

func TestPoller_StopIdempotent(t *testing.T) {
	p := Start(context.Background(), 10*time.Millisecond, func(ctx context.Context, cycle int) Action {
		return Continue
	})

	p.Stop()
	p.Stop()
	<-p.Done()
	p.Stop()
}

func TestPoller_FailAction(t *testing.T) {
	p := Start(context.Background(), 5*time.Millisecond, func(ctx context.Context, cycle int) Action {
		return Fail
	})

	assert.Equal(t, OutcomeFailed, p.Wait())
}

func TestPoller_MaxPolls(t *testing.T) {
	var ticks atomic.Int32

	p := Start(context.Background(), 2*time.Millisecond, func(ctx context.Context, cycle int) Action {
		ticks.Add(1)
		return Continue
	}, WithMaxPolls(4))

	outcome := p.Wait()

	assert.Equal(t, OutcomeExhausted, outcome)
	assert.Equal(t, int32(4), ticks.Load())
}

func TestPoller_Budget(t *testing.T) {
	var ticks atomic.Int32
	start := time.Now()

	p := Start(context.Background(), 10*time.Millisecond, func(ctx context.Context, cycle int) Action {
		ticks.Add(1)
		return Continue
	}, WithBudget(35*time.Millisecond))

	outcome := p.Wait()
	elapsed := time.Since(start)

	assert.Equal(t, OutcomeExhausted, outcome)
	assert.GreaterOrEqual(t, ticks.Load(), int32(1))
	assert.Less(t, elapsed, 500*time.Millisecond)
}

func TestPoller_DelayedStart(t *testing.T) {
	start := time.Now()
	var firstTick time.Duration

	p := Start(context.Background(), 30*time.Millisecond, func(ctx context.Context, cycle int) Action {
		firstTick = time.Since(start)
		return Stop
	}, WithDelayedStart())

	require.Equal(t, OutcomeCompleted, p.Wait())
	assert.GreaterOrEqual(t, firstTick, 30*time.Millisecond)
}

func TestPoller_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	p := Start(ctx, 10*time.Millisecond, func(ctx context.Context, cycle int) Action {
		return Continue
	})

	cancel()
	assert.Equal(t, OutcomeCanceled, p.Wait())
}
