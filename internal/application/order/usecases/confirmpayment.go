package usecases

import (
	"context"
	"errors"

	"github.com/phonefix-inc/phonefix/internal/application/payment/paymentgateway"
	"github.com/phonefix-inc/phonefix/internal/domain/order"
	"github.com/phonefix-inc/phonefix/internal/domain/shared/events"
	"github.com/phonefix-inc/phonefix/internal/shared/constants"
	apperrors "github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

type ConfirmPaymentCommand struct {
	IntentID string
	Outcome  paymentgateway.WebhookOutcome
}

type ConfirmPaymentResult struct {
	OrderID       uint
	PaymentStatus string
	Changed       bool
}

type ConfirmPaymentUseCase struct {
	orderRepo order.Repository
	gateway   paymentgateway.PaymentGateway
	publisher events.Publisher
	logger    logger.Interface
}

func NewConfirmPaymentUseCase(
	orderRepo order.Repository,
	gateway paymentgateway.PaymentGateway,
	publisher events.Publisher,
	logger logger.Interface,
) *ConfirmPaymentUseCase {
	return &ConfirmPaymentUseCase{
		orderRepo: orderRepo,
		gateway:   gateway,
		publisher: publisher,
		logger:    logger,
	}
}

// ExecuteWebhook verifies a raw gateway notification and applies it. Events
// that do not concern a known order are acknowledged with a nil result.
func (uc *ConfirmPaymentUseCase) ExecuteWebhook(ctx context.Context, payload []byte, signature string) (*ConfirmPaymentResult, error) {
	evt, err := uc.gateway.ParseWebhook(payload, signature)
	if err != nil {
		uc.logger.Warnw("rejected payment webhook", "error", err)
		return nil, apperrors.NewValidationError("invalid webhook signature")
	}
	if evt.Outcome == paymentgateway.OutcomeIgnored || evt.IntentID == "" {
		uc.logger.Debugw("ignoring payment webhook", "event_id", evt.ID, "type", evt.Type)
		return nil, nil
	}

	result, err := uc.Execute(ctx, ConfirmPaymentCommand{IntentID: evt.IntentID, Outcome: evt.Outcome})
	if errors.Is(err, order.ErrOrderNotFound) {
		uc.logger.Warnw("payment webhook for unknown intent", "event_id", evt.ID, "intent_id", evt.IntentID)
		return nil, nil
	}
	return result, err
}

// Execute is idempotent: a repeated success leaves the order paid, and a
// failure never downgrades a paid order.
func (uc *ConfirmPaymentUseCase) Execute(ctx context.Context, cmd ConfirmPaymentCommand) (*ConfirmPaymentResult, error) {
	log := uc.logger.WithContext(ctx)

	if cmd.IntentID == "" {
		return nil, apperrors.NewFieldValidationError("intent_id", "intent_id is required")
	}
	log.Infow("executing confirm payment use case", "intent_id", cmd.IntentID, "outcome", cmd.Outcome)

	var lastErr error
	for attempt := 1; attempt <= constants.MaxOptimisticRetry; attempt++ {
		o, err := uc.orderRepo.GetByPaymentIntentID(ctx, cmd.IntentID)
		if err != nil {
			return nil, err
		}

		var changed bool
		switch cmd.Outcome {
		case paymentgateway.OutcomeSucceeded:
			changed = o.MarkPaid()
		case paymentgateway.OutcomeFailed:
			changed = o.MarkPaymentFailed()
		default:
			return nil, apperrors.NewFieldValidationError("outcome", "outcome must be succeeded or failed")
		}

		if changed {
			if err := uc.orderRepo.Update(ctx, o); err != nil {
				if errors.Is(err, order.ErrVersionConflict) {
					lastErr = err
					continue
				}
				log.Errorw("failed to record payment outcome", "order_id", o.ID(), "error", err)
				return nil, err
			}
			log.Infow("payment outcome recorded", "order_id", o.ID(), "payment_status", o.PaymentStatus())
			if o.PaymentStatus().IsPaid() {
				if err := uc.publisher.Publish(ctx, order.NewPaidEvent(o)); err != nil {
					log.Warnw("failed to publish order paid event", "order_id", o.ID(), "error", err)
				}
			}
		}

		return &ConfirmPaymentResult{
			OrderID:       o.ID(),
			PaymentStatus: o.PaymentStatus().String(),
			Changed:       changed,
		}, nil
	}
	return nil, lastErr
}
