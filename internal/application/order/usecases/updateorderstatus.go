package usecases

import (
	"context"

	"github.com/phonefix-inc/phonefix/internal/application/notification"
	"github.com/phonefix-inc/phonefix/internal/application/order/dto"
	"github.com/phonefix-inc/phonefix/internal/domain/order"
	vo "github.com/phonefix-inc/phonefix/internal/domain/order/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/domain/shared/events"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	apperrors "github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/goroutine"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

type UpdateOrderStatusCommand struct {
	OrderID        uint
	Actor          actor.Actor
	Status         string
	TrackingNumber *string
	Carrier        *string
	AdminNotes     *string
}

type UpdateOrderStatusUseCase struct {
	orderRepo order.Repository
	publisher events.Publisher
	notifier  notification.Notifier
	logger    logger.Interface
}

func NewUpdateOrderStatusUseCase(
	orderRepo order.Repository,
	publisher events.Publisher,
	notifier notification.Notifier,
	logger logger.Interface,
) *UpdateOrderStatusUseCase {
	return &UpdateOrderStatusUseCase{
		orderRepo: orderRepo,
		publisher: publisher,
		notifier:  notifier,
		logger:    logger,
	}
}

func (uc *UpdateOrderStatusUseCase) Execute(ctx context.Context, cmd UpdateOrderStatusCommand) (*dto.OrderDTO, error) {
	log := uc.logger.WithContext(ctx)

	if !cmd.Actor.IsAdmin() {
		return nil, apperrors.NewForbiddenError("admin access required")
	}
	next, err := vo.ParseOrderStatus(cmd.Status)
	if err != nil {
		return nil, apperrors.NewFieldValidationError("status", err.Error())
	}

	log.Infow("executing update order status use case", "order_id", cmd.OrderID, "status", next, "admin_id", cmd.Actor.UserID)

	o, err := uc.orderRepo.GetByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}
	oldStatus := o.Status()

	var tracking *order.Tracking
	if cmd.TrackingNumber != nil || cmd.Carrier != nil {
		tracking = &order.Tracking{}
		if cmd.TrackingNumber != nil {
			tracking.Number = *cmd.TrackingNumber
		}
		if cmd.Carrier != nil {
			tracking.Carrier = *cmd.Carrier
		}
	}

	changed, err := o.UpdateStatus(next, tracking, cmd.AdminNotes)
	if err != nil {
		log.Warnw("order status update rejected", "order_id", o.ID(), "from", oldStatus, "to", next, "error", err)
		return nil, err
	}

	// A concurrent writer surfaces here as ErrVersionConflict.
	if err := uc.orderRepo.Update(ctx, o); err != nil {
		log.Errorw("failed to update order", "order_id", o.ID(), "error", err)
		return nil, err
	}

	if changed {
		log.Infow("order status changed", "order_id", o.ID(), "old_status", oldStatus, "new_status", o.Status())
		if err := uc.publisher.Publish(ctx, order.NewStatusChangedEvent(o, oldStatus.String(), cmd.Actor.UserID)); err != nil {
			log.Warnw("failed to publish order status event", "order_id", o.ID(), "error", err)
		}
		if o.Status() == vo.OrderStatusShipped {
			uc.notifyShipped(o)
		}
	}

	return dto.ToOrderDTO(o, true), nil
}

func (uc *UpdateOrderStatusUseCase) notifyShipped(o *order.Order) {
	if o.CustomerEmail() == "" {
		return
	}
	msg := notification.OrderMessage{
		To:          o.CustomerEmail(),
		OrderNumber: o.OrderNumber(),
		Total:       o.TotalAmount(),
		Currency:    o.Currency(),
		ItemCount:   len(o.Items()),
		PlacedAt:    o.CreatedAt(),
	}
	if o.TrackingNumber() != nil {
		msg.TrackingNumber = *o.TrackingNumber()
	}
	if o.Carrier() != nil {
		msg.Carrier = *o.Carrier()
	}
	goroutine.SafeGoWithTimeout(uc.logger, "order-shipped-email", notifyTimeout, func(ctx context.Context) {
		if err := uc.notifier.OrderShipped(ctx, msg); err != nil {
			uc.logger.Warnw("failed to send shipping notification", "order_number", msg.OrderNumber, "error", err)
		}
	})
}
