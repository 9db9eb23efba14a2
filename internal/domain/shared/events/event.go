package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fact emitted by an aggregate after a state change.
// EventID is unique per occurrence so consumers can drop redeliveries.
type DomainEvent interface {
	GetEventID() string
	GetAggregateID() string
	GetEventType() string
	GetOccurredAt() time.Time
}

type BaseEvent struct {
	EventID     string    `json:"event_id"`
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewBaseEvent(aggregateID, eventType string, occurredAt time.Time) BaseEvent {
	return BaseEvent{
		EventID:     uuid.NewString(),
		AggregateID: aggregateID,
		EventType:   eventType,
		OccurredAt:  occurredAt,
	}
}

func (e BaseEvent) GetEventID() string { return e.EventID }

func (e BaseEvent) GetAggregateID() string { return e.AggregateID }

func (e BaseEvent) GetEventType() string { return e.EventType }

func (e BaseEvent) GetOccurredAt() time.Time { return e.OccurredAt }

// Publisher delivers events to downstream consumers. Callers treat delivery
// as best effort: a failed publish is logged, never surfaced to the request.
type Publisher interface {
	Publish(ctx context.Context, event DomainEvent) error
}
