package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Store persists audit events. Sinks are append-only.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// Publisher captures structured audit events. In async mode Emit enqueues
// and a single goroutine drains into the store; Close flushes the queue.
type Publisher struct {
	store  Store
	logger *slog.Logger
	queue  chan Event
	wg     sync.WaitGroup
	once   sync.Once
}

type Option func(*Publisher)

// WithAsyncBuffer switches the publisher to async mode with a bounded queue.
// A full queue falls back to a synchronous append.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		if size > 0 {
			p.queue = make(chan Event, size)
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) { p.logger = logger }
}

func NewPublisher(store Store, opts ...Option) *Publisher {
	p := &Publisher{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	if p.queue != nil {
		p.wg.Add(1)
		go p.drain()
	}
	return p
}

func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if p.queue == nil {
		return p.store.Append(ctx, event)
	}
	select {
	case p.queue <- event:
		return nil
	default:
		return p.store.Append(ctx, event)
	}
}

func (p *Publisher) drain() {
	defer p.wg.Done()
	for event := range p.queue {
		if err := p.store.Append(context.Background(), event); err != nil {
			p.logger.Error("failed to append audit event", "action", event.Action, "error", err)
		}
	}
}

// Close stops accepting async events and waits for the queue to drain.
func (p *Publisher) Close() {
	p.once.Do(func() {
		if p.queue != nil {
			close(p.queue)
			p.wg.Wait()
		}
	})
}
