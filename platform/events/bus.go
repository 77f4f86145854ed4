package events

import (
	"context"
	"sync"
	"time"

	"salonhub_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

// publishTimeout bounds async handler execution so a stuck handler
// cannot leak goroutines forever.
const publishTimeout = 30 * time.Second

// InMemoryBus is an in-process event bus. Events are dispatched to all
// handlers subscribed to the event's name.
type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	log      *logger.Logger
}

// NewInMemoryBus creates an empty bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[string][]Handler),
		log:      log,
	}
}

func (b *InMemoryBus) Subscribe(eventName string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], handler)
}

// Publish dispatches the event to all handlers in a detached goroutine.
// The caller's context is not reused because it may be cancelled when
// the HTTP request finishes.
func (b *InMemoryBus) Publish(_ context.Context, event Event) {
	handlers := b.snapshot(event.EventName())
	if len(handlers) == 0 {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		for _, h := range handlers {
			if err := h(ctx, event); err != nil {
				b.log.Error("event handler failed",
					"event", event.EventName(),
					"aggregate_id", event.AggregateID().String(),
					"error", err)
			}
		}
	}()
}

// PublishSync dispatches the event to all handlers concurrently and waits.
func (b *InMemoryBus) PublishSync(ctx context.Context, event Event) error {
	handlers := b.snapshot(event.EventName())
	if len(handlers) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, h := range handlers {
		handler := h
		g.Go(func() error {
			return handler(gctx, event)
		})
	}
	return g.Wait()
}

func (b *InMemoryBus) snapshot(eventName string) []Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()

	handlers := make([]Handler, len(b.handlers[eventName]))
	copy(handlers, b.handlers[eventName])
	return handlers
}
