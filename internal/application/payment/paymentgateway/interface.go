package paymentgateway

import (
	"context"
	"errors"
	"fmt"
)

// PaymentGateway is the card processor used at checkout.
type PaymentGateway interface {
	// CreateIntent opens a charge. Repeating a call with the same
	// IdempotencyKey returns the same intent.
	CreateIntent(ctx context.Context, req CreateIntentRequest) (*Intent, error)
	GetIntent(ctx context.Context, intentID string) (*Intent, error)
	// ParseWebhook verifies the signature header and decodes the event.
	ParseWebhook(payload []byte, signature string) (*WebhookEvent, error)
}

type CreateIntentRequest struct {
	Amount         int64 // smallest currency unit, e.g. cents
	Currency       string
	IdempotencyKey string
	OrderNumber    string
	ReceiptEmail   string
	Metadata       map[string]string
}

type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64
	Currency     string
}

type WebhookOutcome string

const (
	OutcomeSucceeded WebhookOutcome = "succeeded"
	OutcomeFailed    WebhookOutcome = "failed"
	OutcomeIgnored   WebhookOutcome = "ignored"
)

type WebhookEvent struct {
	ID       string
	Type     string
	IntentID string
	Outcome  WebhookOutcome
}

// DeclineError is returned when the processor refuses the charge. Reason is
// safe to show to the customer.
type DeclineError struct {
	Reason string
}

func (e *DeclineError) Error() string {
	return fmt.Sprintf("payment declined: %s", e.Reason)
}

// ErrInvalidSignature is returned by ParseWebhook for an unverifiable payload.
var ErrInvalidSignature = errors.New("invalid webhook signature")
