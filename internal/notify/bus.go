// Package notify carries lifecycle events from the orchestration loops to
// the notification store. One buffered channel per event type, a worker
// pool per consumer, retried dispatch.
package notify

import (
	"context"
	"sync"

	"github.com/WebOleg/tether-admin/pkg/logger"
	"github.com/WebOleg/tether-admin/pkg/retry"
)

type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, consumer Consumer) error
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type Consumer interface {
	Consume(ctx context.Context, event Event) error
	WorkerCount() int
}

type Config struct {
	ChannelBuffer int
	MaxRetries    int
}

type bus struct {
	channels      map[EventType]chan Event
	consumers     map[EventType][]Consumer
	mu            sync.RWMutex
	wg            sync.WaitGroup
	ctx           context.Context
	cancel        context.CancelFunc
	logger        *logger.Logger
	channelBuffer int
	maxRetries    int
	started       bool
}

func New(log *logger.Logger, cfg *Config) Bus {
	if cfg == nil {
		cfg = &Config{
			ChannelBuffer: 1000,
			MaxRetries:    5,
		}
	}

	return &bus{
		channels:      make(map[EventType]chan Event),
		consumers:     make(map[EventType][]Consumer),
		logger:        log,
		channelBuffer: cfg.ChannelBuffer,
		maxRetries:    cfg.MaxRetries,
	}
}

func (b *bus) Subscribe(eventType EventType, consumer Consumer) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.channels[eventType]; !exists {
		b.channels[eventType] = make(chan Event, b.channelBuffer)
	}

	b.consumers[eventType] = append(b.consumers[eventType], consumer)

	return nil
}

func (b *bus) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.started {
		return nil
	}

	b.ctx, b.cancel = context.WithCancel(ctx)

	for eventType, consumers := range b.consumers {
		ch := b.channels[eventType]

		for _, consumer := range consumers {
			workerCount := consumer.WorkerCount()
			b.logger.Info(b.ctx, "Starting notify workers",
				"event_type", eventType,
				"worker_count", workerCount,
			)

			for i := 0; i < workerCount; i++ {
				b.wg.Add(1)
				go b.worker(b.ctx, ch, consumer, i)
			}
		}
	}

	b.started = true

	return nil
}

func (b *bus) worker(ctx context.Context, ch <-chan Event, consumer Consumer, workerID int) {
	defer b.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			b.dispatch(ctx, event, consumer, workerID)
		}
	}
}

func (b *bus) dispatch(ctx context.Context, event Event, consumer Consumer, workerID int) {
	eventCtx := ctx
	if event.Payload.UploadID != "" {
		eventCtx = logger.WithUploadID(ctx, event.Payload.UploadID)
	}

	err := retry.Do(eventCtx, func() error {
		return consumer.Consume(eventCtx, event)
	}, retry.WithMaxAttempts(b.maxRetries))

	if err != nil {
		b.logger.Error(eventCtx, "Failed to deliver lifecycle event",
			"event_id", event.ID,
			"event_type", event.Type,
			"worker_id", workerID,
			"error", err,
		)
	}
}

func (b *bus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	ch, exists := b.channels[event.Type]
	b.mu.RUnlock()

	if !exists {
		b.logger.Warn(ctx, "No subscriber for event type",
			"event_type", event.Type,
			"event_id", event.ID,
		)
		return nil
	}

	// Non-blocking send: a full channel drops the notification rather
	// than stalling a polling loop.
	select {
	case ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		b.logger.Warn(ctx, "Notify channel full, event dropped",
			"event_type", event.Type,
			"event_id", event.ID,
		)
		return nil
	}
}

func (b *bus) Shutdown(ctx context.Context) error {
	b.logger.Info(ctx, "Shutting down notify bus")

	if b.cancel != nil {
		b.cancel()
	}

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		b.logger.Warn(ctx, "Notify bus shutdown timeout")
		return ctx.Err()
	}
}
