package paymentgateway

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/phonefix-inc/phonefix/internal/shared/id"
)

// MockGateway is an in-memory gateway for development and tests. It honours
// idempotency keys and accepts unsigned webhook payloads of the form
// {"id": "...", "type": "payment_intent.succeeded", "intent_id": "..."}.
type MockGateway struct {
	mu      sync.Mutex
	byKey   map[string]*Intent
	byID    map[string]*Intent
	decline string
	calls   int
}

func NewMockGateway() *MockGateway {
	return &MockGateway{
		byKey: make(map[string]*Intent),
		byID:  make(map[string]*Intent),
	}
}

// DeclineWith makes subsequent CreateIntent calls fail with reason.
func (m *MockGateway) DeclineWith(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.decline = reason
}

// CreateCalls counts CreateIntent invocations, including idempotent replays.
func (m *MockGateway) CreateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockGateway) CreateIntent(ctx context.Context, req CreateIntentRequest) (*Intent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	if m.decline != "" {
		return nil, &DeclineError{Reason: m.decline}
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if existing, ok := m.byKey[req.IdempotencyKey]; ok && req.IdempotencyKey != "" {
		cp := *existing
		return &cp, nil
	}

	suffix, err := id.Generate(16)
	if err != nil {
		return nil, err
	}
	intent := &Intent{
		ID:           "pi_mock_" + suffix,
		ClientSecret: "pi_mock_" + suffix + "_secret",
		Status:       "requires_payment_method",
		Amount:       req.Amount,
		Currency:     req.Currency,
	}
	m.byID[intent.ID] = intent
	if req.IdempotencyKey != "" {
		m.byKey[req.IdempotencyKey] = intent
	}
	cp := *intent
	return &cp, nil
}

func (m *MockGateway) GetIntent(ctx context.Context, intentID string) (*Intent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	intent, ok := m.byID[intentID]
	if !ok {
		return nil, fmt.Errorf("payment intent %s not found", intentID)
	}
	cp := *intent
	return &cp, nil
}

type mockWebhookPayload struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	IntentID string `json:"intent_id"`
}

func (m *MockGateway) ParseWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	var p mockWebhookPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, ErrInvalidSignature
	}
	return &WebhookEvent{
		ID:       p.ID,
		Type:     p.Type,
		IntentID: p.IntentID,
		Outcome:  OutcomeForEventType(p.Type),
	}, nil
}

// OutcomeForEventType maps processor event names onto outcomes.
func OutcomeForEventType(eventType string) WebhookOutcome {
	switch eventType {
	case "payment_intent.succeeded":
		return OutcomeSucceeded
	case "payment_intent.payment_failed":
		return OutcomeFailed
	default:
		return OutcomeIgnored
	}
}
