package usecases

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/phonefix-inc/phonefix/internal/application/order/dto"
	"github.com/phonefix-inc/phonefix/internal/application/payment/paymentgateway"
	"github.com/phonefix-inc/phonefix/internal/domain/order"
	vo "github.com/phonefix-inc/phonefix/internal/domain/order/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	"github.com/phonefix-inc/phonefix/internal/shared/constants"
	apperrors "github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/money"
)

const intentStatusSucceeded = "succeeded"

type InitiatePaymentCommand struct {
	OrderID uint
	Actor   actor.Actor
}

type InitiatePaymentUseCase struct {
	orderRepo order.Repository
	gateway   paymentgateway.PaymentGateway
	logger    logger.Interface
}

func NewInitiatePaymentUseCase(
	orderRepo order.Repository,
	gateway paymentgateway.PaymentGateway,
	logger logger.Interface,
) *InitiatePaymentUseCase {
	return &InitiatePaymentUseCase{
		orderRepo: orderRepo,
		gateway:   gateway,
		logger:    logger,
	}
}

// Execute never opens a second intent for an order: an existing reference is
// retrieved, and a new one is created under a per-order idempotency key.
func (uc *InitiatePaymentUseCase) Execute(ctx context.Context, cmd InitiatePaymentCommand) (*dto.PaymentResult, error) {
	log := uc.logger.WithContext(ctx)

	if !cmd.Actor.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}
	if cmd.OrderID == 0 {
		return nil, apperrors.NewFieldValidationError("order_id", "order_id is required")
	}

	log.Infow("executing initiate payment use case", "order_id", cmd.OrderID, "user_id", cmd.Actor.UserID)

	var lastErr error
	for attempt := 1; attempt <= constants.MaxOptimisticRetry; attempt++ {
		result, err := uc.attempt(ctx, cmd)
		if errors.Is(err, order.ErrVersionConflict) {
			lastErr = err
			log.Warnw("order changed while attaching payment intent, retrying", "order_id", cmd.OrderID, "attempt", attempt)
			continue
		}
		return result, err
	}
	return nil, lastErr
}

func (uc *InitiatePaymentUseCase) attempt(ctx context.Context, cmd InitiatePaymentCommand) (*dto.PaymentResult, error) {
	o, err := uc.orderRepo.GetByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}
	if !o.CanBeViewedBy(cmd.Actor) {
		uc.logger.Warnw("payment requested for another customer's order", "order_id", o.ID(), "user_id", cmd.Actor.UserID)
		return nil, apperrors.NewForbiddenError("you do not have access to this order")
	}

	if !o.RequiresPayment() {
		uc.logger.Infow("order already paid", "order_id", o.ID())
		return dto.AlreadyPaid(), nil
	}
	if o.Status() == vo.OrderStatusCancelled || o.Status() == vo.OrderStatusRefunded {
		return nil, apperrors.NewConflictError(fmt.Sprintf("order is %s", o.Status()))
	}

	if ref := o.PaymentIntentID(); ref != nil {
		return uc.resume(ctx, o, *ref)
	}

	intent, err := uc.gateway.CreateIntent(ctx, paymentgateway.CreateIntentRequest{
		Amount:         money.ToMinorUnits(o.TotalAmount(), o.Currency()),
		Currency:       o.Currency(),
		IdempotencyKey: fmt.Sprintf("order-%d-payment", o.ID()),
		OrderNumber:    o.OrderNumber(),
		ReceiptEmail:   o.CustomerEmail(),
		Metadata: map[string]string{
			"order_id":     strconv.FormatUint(uint64(o.ID()), 10),
			"order_number": o.OrderNumber(),
		},
	})
	if err != nil {
		return nil, uc.gatewayError(o, err)
	}

	if err := o.AttachPaymentIntent(intent.ID); err != nil {
		return nil, apperrors.NewInternalError("gateway returned an empty intent reference")
	}
	if err := uc.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	uc.logger.Infow("payment intent created", "order_id", o.ID(), "intent_id", intent.ID)
	return dto.ClientSecret(intent.ClientSecret, intent.ID), nil
}

// resume returns the secret of the intent already attached to the order. An
// intent that settled before its webhook arrived marks the order paid here.
func (uc *InitiatePaymentUseCase) resume(ctx context.Context, o *order.Order, ref string) (*dto.PaymentResult, error) {
	intent, err := uc.gateway.GetIntent(ctx, ref)
	if err != nil {
		return nil, uc.gatewayError(o, err)
	}

	if intent.Status == intentStatusSucceeded {
		if o.MarkPaid() {
			if err := uc.orderRepo.Update(ctx, o); err != nil {
				return nil, err
			}
			uc.logger.Infow("order reconciled as paid from existing intent", "order_id", o.ID(), "intent_id", ref)
		}
		return dto.AlreadyPaid(), nil
	}

	uc.logger.Infow("reusing existing payment intent", "order_id", o.ID(), "intent_id", ref)
	return dto.ClientSecret(intent.ClientSecret, intent.ID), nil
}

func (uc *InitiatePaymentUseCase) gatewayError(o *order.Order, err error) error {
	var decline *paymentgateway.DeclineError
	if errors.As(err, &decline) {
		uc.logger.Warnw("payment declined", "order_id", o.ID(), "reason", decline.Reason)
		return apperrors.NewPaymentError(decline.Reason)
	}
	uc.logger.Errorw("payment gateway error", "order_id", o.ID(), "error", err)
	return apperrors.NewPaymentError("")
}
