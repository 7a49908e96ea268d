// Package poller provides a cancellable fixed-interval polling loop.
//
// A loop fires its tick immediately on start, then on every interval until
// the tick asks it to stop, the caller cancels it, or an optional bound
// (max poll count or wall-clock budget) is reached. Every loop exposes a
// handle whose Stop is idempotent and whose Done channel closes exactly once.
package poller

import (
	"context"
	"sync"
	"time"
)

// Action is returned by a tick to steer the loop.
type Action int

const (
	// Continue schedules the next tick.
	Continue Action = iota
	// Stop ends the loop with OutcomeCompleted.
	Stop
	// Fail ends the loop with OutcomeFailed.
	Fail
)

// Outcome reports how a loop ended.
type Outcome int

const (
	// OutcomeCanceled: the caller stopped the loop or its context ended.
	OutcomeCanceled Outcome = iota
	// OutcomeCompleted: a tick returned Stop.
	OutcomeCompleted
	// OutcomeFailed: a tick returned Fail.
	OutcomeFailed
	// OutcomeExhausted: the max-poll count or wall budget ran out.
	OutcomeExhausted
)

// TickFunc runs one poll cycle. cycle starts at 1.
type TickFunc func(ctx context.Context, cycle int) Action

type Config struct {
	Interval time.Duration
	MaxPolls int           // 0 = unbounded
	Budget   time.Duration // 0 = unbounded
	Delayed  bool
}

type Option func(*Config)

// WithDelayedStart waits one full interval before the first tick instead
// of ticking immediately.
func WithDelayedStart() Option {
	return func(c *Config) {
		c.Delayed = true
	}
}

func WithMaxPolls(n int) Option {
	return func(c *Config) {
		c.MaxPolls = n
	}
}

func WithBudget(d time.Duration) Option {
	return func(c *Config) {
		c.Budget = d
	}
}

// Poller is the handle for a running loop.
type Poller struct {
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once

	mu      sync.Mutex
	outcome Outcome
}

// Start launches the loop. Unless WithDelayedStart is set, the first tick
// runs before the first interval elapses. The loop stops when tick returns
// Stop or Fail, when Stop is called, when ctx is done, or when a configured
// bound is hit.
func Start(ctx context.Context, interval time.Duration, tick TickFunc, opts ...Option) *Poller {
	cfg := &Config{Interval: interval}
	for _, opt := range opts {
		opt(cfg)
	}

	loopCtx, cancel := context.WithCancel(ctx)

	p := &Poller{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go p.run(loopCtx, cfg, tick)

	return p
}

func (p *Poller) run(ctx context.Context, cfg *Config, tick TickFunc) {
	defer close(p.done)
	defer p.cancel()

	var budget <-chan time.Time
	if cfg.Budget > 0 {
		timer := time.NewTimer(cfg.Budget)
		defer timer.Stop()
		budget = timer.C
	}

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	if cfg.Delayed {
		select {
		case <-ctx.Done():
			p.setOutcome(OutcomeCanceled)
			return
		case <-budget:
			p.setOutcome(OutcomeExhausted)
			return
		case <-ticker.C:
		}
	}

	cycle := 0
	for {
		cycle++
		switch tick(ctx, cycle) {
		case Stop:
			p.setOutcome(OutcomeCompleted)
			return
		case Fail:
			p.setOutcome(OutcomeFailed)
			return
		}

		if cfg.MaxPolls > 0 && cycle >= cfg.MaxPolls {
			p.setOutcome(OutcomeExhausted)
			return
		}

		select {
		case <-ctx.Done():
			p.setOutcome(OutcomeCanceled)
			return
		case <-budget:
			p.setOutcome(OutcomeExhausted)
			return
		case <-ticker.C:
		}
	}
}

// Stop cancels the loop. Safe to call more than once and after the loop
// has already finished.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		p.cancel()
	})
}

// Done closes when the loop has fully stopped. No tick runs after Done.
func (p *Poller) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the loop has stopped and returns its outcome.
func (p *Poller) Wait() Outcome {
	<-p.done
	return p.Outcome()
}

// Outcome is valid once Done is closed.
func (p *Poller) Outcome() Outcome {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.outcome
}

func (p *Poller) setOutcome(o Outcome) {
	p.mu.Lock()
	p.outcome = o
	p.mu.Unlock()
}
