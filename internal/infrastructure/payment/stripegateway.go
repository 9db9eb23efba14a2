package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/phonefix-inc/phonefix/internal/application/payment/paymentgateway"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

// StripeGateway talks to Stripe PaymentIntents.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
	logger        logger.Interface
}

func NewStripeGateway(secretKey, webhookSecret string, log logger.Interface) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{
		api:           api,
		webhookSecret: webhookSecret,
		logger:        log.With("component", "payment.stripe"),
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, req paymentgateway.CreateIntentRequest) (*paymentgateway.Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	if req.ReceiptEmail != "" {
		params.ReceiptEmail = stripe.String(req.ReceiptEmail)
	}
	if req.OrderNumber != "" {
		params.AddMetadata("order_number", req.OrderNumber)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, g.translate(err, "create")
	}
	return toIntent(pi), nil
}

func (g *StripeGateway) GetIntent(ctx context.Context, intentID string) (*paymentgateway.Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.Get(intentID, params)
	if err != nil {
		return nil, g.translate(err, "retrieve")
	}
	return toIntent(pi), nil
}

// ParseWebhook verifies the Stripe-Signature header. Events for other
// objects decode with an empty IntentID and OutcomeIgnored.
func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (*paymentgateway.WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		g.logger.Warnw("rejected webhook payload", "error", err)
		return nil, paymentgateway.ErrInvalidSignature
	}

	out := &paymentgateway.WebhookEvent{
		ID:      event.ID,
		Type:    string(event.Type),
		Outcome: paymentgateway.OutcomeForEventType(string(event.Type)),
	}
	if out.Outcome == paymentgateway.OutcomeIgnored || event.Data == nil {
		return out, nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return nil, fmt.Errorf("failed to decode payment intent from event %s: %w", event.ID, err)
	}
	out.IntentID = pi.ID
	return out, nil
}

// translate turns card errors into a DeclineError the customer may see.
// Everything else is an opaque gateway failure.
func (g *StripeGateway) translate(err error, op string) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
		reason := stripeErr.Msg
		if reason == "" {
			reason = string(stripeErr.DeclineCode)
		}
		return &paymentgateway.DeclineError{Reason: reason}
	}
	g.logger.Errorw("stripe request failed", "operation", op, "error", err)
	return fmt.Errorf("stripe %s payment intent: %w", op, err)
}

func toIntent(pi *stripe.PaymentIntent) *paymentgateway.Intent {
	return &paymentgateway.Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}
}
