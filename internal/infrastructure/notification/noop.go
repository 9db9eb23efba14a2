package notification

import (
	"context"

	appnotification "github.com/phonefix-inc/phonefix/internal/application/notification"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

// NoopNotifier logs instead of sending. Used when email is disabled.
type NoopNotifier struct {
	logger logger.Interface
}

func NewNoopNotifier(log logger.Interface) *NoopNotifier {
	return &NoopNotifier{logger: log.With("component", "notification.noop")}
}

func (n *NoopNotifier) TicketSubmitted(ctx context.Context, msg appnotification.TicketMessage) error {
	n.logger.Debugw("email disabled, skipping ticket confirmation", "ticket_number", msg.TicketNumber)
	return nil
}

func (n *NoopNotifier) TicketStatusChanged(ctx context.Context, msg appnotification.TicketMessage) error {
	n.logger.Debugw("email disabled, skipping ticket status email", "ticket_number", msg.TicketNumber, "status", msg.Status)
	return nil
}

func (n *NoopNotifier) OrderConfirmed(ctx context.Context, msg appnotification.OrderMessage) error {
	n.logger.Debugw("email disabled, skipping order confirmation", "order_number", msg.OrderNumber)
	return nil
}

func (n *NoopNotifier) OrderShipped(ctx context.Context, msg appnotification.OrderMessage) error {
	n.logger.Debugw("email disabled, skipping shipping email", "order_number", msg.OrderNumber)
	return nil
}

func (n *NoopNotifier) WholesaleReviewed(ctx context.Context, msg appnotification.WholesaleMessage) error {
	n.logger.Debugw("email disabled, skipping wholesale decision email", "decision", msg.Decision)
	return nil
}
