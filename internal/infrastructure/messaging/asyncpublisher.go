package messaging

import (
	"context"
	"time"

	"github.com/phonefix-inc/phonefix/internal/domain/shared/events"
	"github.com/phonefix-inc/phonefix/internal/shared/goroutine"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

const publishTimeout = 10 * time.Second

// AsyncPublisher hands each event to a background goroutine and returns
// immediately. Delivery failures are logged and never reach the caller.
type AsyncPublisher struct {
	next   events.Publisher
	logger logger.Interface
}

func NewAsyncPublisher(next events.Publisher, log logger.Interface) *AsyncPublisher {
	return &AsyncPublisher{next: next, logger: log}
}

func (p *AsyncPublisher) Publish(_ context.Context, event events.DomainEvent) error {
	goroutine.SafeGoWithTimeout(p.logger, "publish-"+event.GetEventType(), publishTimeout, func(ctx context.Context) {
		if err := p.next.Publish(ctx, event); err != nil {
			p.logger.Warnw("failed to publish domain event",
				"event_type", event.GetEventType(),
				"aggregate_id", event.GetAggregateID(),
				"error", err,
			)
		}
	})
	return nil
}
