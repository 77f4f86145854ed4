// Package events provides the in-process domain event infrastructure.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event is the interface all domain events implement.
type Event interface {
	// EventName returns the unique name of the event type.
	EventName() string
	// OccurredAt returns when the event happened.
	OccurredAt() time.Time
	// AggregateID returns the ID of the aggregate that produced the event.
	AggregateID() uuid.UUID
}

// BaseEvent provides common event fields. Embed it in concrete events.
type BaseEvent struct {
	ID        uuid.UUID
	Aggregate uuid.UUID
	Occurred  time.Time
}

// NewBaseEvent creates a BaseEvent for the given aggregate.
func NewBaseEvent(aggregateID uuid.UUID) BaseEvent {
	return BaseEvent{
		ID:        uuid.New(),
		Aggregate: aggregateID,
		Occurred:  time.Now().UTC(),
	}
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.Occurred
}

func (e BaseEvent) AggregateID() uuid.UUID {
	return e.Aggregate
}

// Handler processes a single event. Handlers must be safe for concurrent use.
type Handler func(ctx context.Context, event Event) error

// Bus dispatches domain events to subscribed handlers.
type Bus interface {
	// Subscribe registers a handler for the named event type.
	Subscribe(eventName string, handler Handler)
	// Publish dispatches the event to all handlers asynchronously.
	// Handler errors are logged, not returned.
	Publish(ctx context.Context, event Event)
	// PublishSync dispatches the event and waits for all handlers,
	// returning the first handler error.
	PublishSync(ctx context.Context, event Event) error
}
