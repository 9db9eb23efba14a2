package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phonefix-inc/phonefix/internal/application/payment/paymentgateway"
	"github.com/phonefix-inc/phonefix/internal/domain/order"
	vo "github.com/phonefix-inc/phonefix/internal/domain/order/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/shared/errors"
)

func intentRepo(o *order.Order) *mockOrderRepository {
	return &mockOrderRepository{
		GetByPaymentIntentIDFunc: func(ctx context.Context, intentID string) (*order.Order, error) {
			if o.PaymentIntentID() == nil || *o.PaymentIntentID() != intentID {
				return nil, order.ErrOrderNotFound
			}
			return o, nil
		},
	}
}

func TestConfirmPaymentUseCase_SucceededIsIdempotent(t *testing.T) {
	o := existingOrder(t, orderFixture{intentID: strPtr("pi_1")})
	repo := intentRepo(o)
	updates := 0
	repo.UpdateFunc = func(ctx context.Context, o *order.Order) error {
		updates++
		return nil
	}
	pub := &mockPublisher{}
	uc := NewConfirmPaymentUseCase(repo, &mockGateway{}, pub, testLogger())

	first, err := uc.Execute(context.Background(), ConfirmPaymentCommand{IntentID: "pi_1", Outcome: paymentgateway.OutcomeSucceeded})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), ConfirmPaymentCommand{IntentID: "pi_1", Outcome: paymentgateway.OutcomeSucceeded})
	require.NoError(t, err)

	assert.True(t, first.Changed)
	assert.False(t, second.Changed)
	assert.Equal(t, "PAID", second.PaymentStatus)
	assert.Equal(t, 1, updates)
	assert.Equal(t, []string{order.EventOrderPaid}, pub.types())
}

func TestConfirmPaymentUseCase_FailureNeverDowngradesPaid(t *testing.T) {
	o := existingOrder(t, orderFixture{intentID: strPtr("pi_1"), paymentStatus: vo.PaymentStatusPaid})
	uc := NewConfirmPaymentUseCase(intentRepo(o), &mockGateway{}, &mockPublisher{}, testLogger())

	result, err := uc.Execute(context.Background(), ConfirmPaymentCommand{IntentID: "pi_1", Outcome: paymentgateway.OutcomeFailed})
	require.NoError(t, err)

	assert.False(t, result.Changed)
	assert.Equal(t, vo.PaymentStatusPaid, o.PaymentStatus())
}

func TestConfirmPaymentUseCase_RetriesVersionConflict(t *testing.T) {
	o := existingOrder(t, orderFixture{intentID: strPtr("pi_1")})
	repo := intentRepo(o)
	calls := 0
	repo.GetByPaymentIntentIDFunc = func(ctx context.Context, intentID string) (*order.Order, error) {
		return existingOrder(t, orderFixture{intentID: strPtr("pi_1")}), nil
	}
	repo.UpdateFunc = func(ctx context.Context, o *order.Order) error {
		calls++
		if calls == 1 {
			return order.ErrVersionConflict
		}
		return nil
	}

	result, err := NewConfirmPaymentUseCase(repo, &mockGateway{}, &mockPublisher{}, testLogger()).
		Execute(context.Background(), ConfirmPaymentCommand{IntentID: "pi_1", Outcome: paymentgateway.OutcomeFailed})
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, "FAILED", result.PaymentStatus)
}

func TestConfirmPaymentUseCase_ExecuteWebhook(t *testing.T) {
	o := existingOrder(t, orderFixture{intentID: strPtr("pi_1")})
	gw := &mockGateway{
		ParseWebhookFunc: func(payload []byte, signature string) (*paymentgateway.WebhookEvent, error) {
			if signature != "good" {
				return nil, paymentgateway.ErrInvalidSignature
			}
			return &paymentgateway.WebhookEvent{ID: "evt_1", Type: string(payload), IntentID: "pi_1", Outcome: paymentgateway.OutcomeForEventType(string(payload))}, nil
		},
	}
	uc := NewConfirmPaymentUseCase(intentRepo(o), gw, &mockPublisher{}, testLogger())

	_, err := uc.ExecuteWebhook(context.Background(), []byte("payment_intent.succeeded"), "bad")
	assert.True(t, errors.IsValidationError(err))

	result, err := uc.ExecuteWebhook(context.Background(), []byte("charge.refunded"), "good")
	require.NoError(t, err)
	assert.Nil(t, result)

	result, err = uc.ExecuteWebhook(context.Background(), []byte("payment_intent.succeeded"), "good")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(42), result.OrderID)
	assert.Equal(t, vo.PaymentStatusPaid, o.PaymentStatus())
}

func TestConfirmPaymentUseCase_UnknownIntentAcknowledged(t *testing.T) {
	o := existingOrder(t, orderFixture{})
	gw := &mockGateway{
		ParseWebhookFunc: func(payload []byte, signature string) (*paymentgateway.WebhookEvent, error) {
			return &paymentgateway.WebhookEvent{ID: "evt_2", IntentID: "pi_unknown", Outcome: paymentgateway.OutcomeSucceeded}, nil
		},
	}

	result, err := NewConfirmPaymentUseCase(intentRepo(o), gw, &mockPublisher{}, testLogger()).
		ExecuteWebhook(context.Background(), []byte("{}"), "sig")

	assert.NoError(t, err)
	assert.Nil(t, result)
}
