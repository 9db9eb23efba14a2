package messaging

import (
	"context"

	"github.com/phonefix-inc/phonefix/internal/domain/shared/events"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

// LogPublisher records events in the application log. Used when kafka is
// disabled.
type LogPublisher struct {
	logger logger.Interface
}

func NewLogPublisher(log logger.Interface) *LogPublisher {
	return &LogPublisher{logger: log.With("component", "messaging.log")}
}

func (p *LogPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	p.logger.Infow("domain event",
		"event_id", event.GetEventID(),
		"event_type", event.GetEventType(),
		"aggregate_id", event.GetAggregateID(),
		"occurred_at", event.GetOccurredAt(),
	)
	return nil
}
