package paymentgateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGateway_IdempotentCreate(t *testing.T) {
	gw := NewMockGateway()
	req := CreateIntentRequest{Amount: 1099, Currency: "usd", IdempotencyKey: "order-1-payment"}

	first, err := gw.CreateIntent(context.Background(), req)
	require.NoError(t, err)
	second, err := gw.CreateIntent(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, gw.CreateCalls())

	got, err := gw.GetIntent(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ClientSecret, got.ClientSecret)
}

func TestMockGateway_Decline(t *testing.T) {
	gw := NewMockGateway()
	gw.DeclineWith("card_declined")

	_, err := gw.CreateIntent(context.Background(), CreateIntentRequest{Amount: 100, Currency: "usd"})

	var decline *DeclineError
	require.ErrorAs(t, err, &decline)
	assert.Equal(t, "card_declined", decline.Reason)
}

func TestMockGateway_ParseWebhook(t *testing.T) {
	gw := NewMockGateway()

	evt, err := gw.ParseWebhook([]byte(`{"id":"evt_1","type":"payment_intent.succeeded","intent_id":"pi_1"}`), "")
	require.NoError(t, err)
	assert.Equal(t, OutcomeSucceeded, evt.Outcome)
	assert.Equal(t, "pi_1", evt.IntentID)

	_, err = gw.ParseWebhook([]byte(`not json`), "")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestOutcomeForEventType(t *testing.T) {
	assert.Equal(t, OutcomeFailed, OutcomeForEventType("payment_intent.payment_failed"))
	assert.Equal(t, OutcomeIgnored, OutcomeForEventType("charge.refunded"))
}
