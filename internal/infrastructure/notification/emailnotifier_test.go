package notification

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appnotification "github.com/phonefix-inc/phonefix/internal/application/notification"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/email"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/markdown"
)

type captureSender struct {
	sent []email.Message
	err  error
}

func (c *captureSender) Send(ctx context.Context, msg email.Message) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, msg)
	return nil
}

var _ appnotification.Notifier = (*EmailNotifier)(nil)
var _ appnotification.Notifier = (*NoopNotifier)(nil)

func newTestNotifier() (*EmailNotifier, *captureSender) {
	s := &captureSender{}
	return NewEmailNotifier(s, markdown.NewService(), "PhoneFix Austin", logger.NewNopLogger()), s
}

func TestEmailNotifier_TicketStatusChanged(t *testing.T) {
	n, s := newTestNotifier()
	est := decimal.RequireFromString("89.5")

	err := n.TicketStatusChanged(context.Background(), appnotification.TicketMessage{
		To:           "grace@example.com",
		CustomerName: "Grace",
		TicketNumber: "TKT-1700000000000123",
		DeviceBrand:  "Apple",
		DeviceModel:  "iPhone 13",
		Status:       "IN_PROGRESS",
		Estimated:    &est,
		Currency:     "usd",
	})
	require.NoError(t, err)
	require.Len(t, s.sent, 1)

	msg := s.sent[0]
	assert.Equal(t, "grace@example.com", msg.To)
	assert.Equal(t, "Repair TKT-1700000000000123 is now In Progress", msg.Subject)
	assert.Contains(t, msg.PlainBody, "89.50")
	assert.Contains(t, msg.HTMLBody, "<strong>In Progress</strong>")
}

func TestEmailNotifier_DatesInBusinessTimezone(t *testing.T) {
	n, s := newTestNotifier()
	appt := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

	require.NoError(t, n.TicketSubmitted(context.Background(), appnotification.TicketMessage{
		To: "grace@example.com", CustomerName: "Grace", TicketNumber: "TKT-1",
		DeviceBrand: "Apple", DeviceModel: "iPhone 13", Status: "SUBMITTED", Appointment: &appt,
	}))
	require.NoError(t, n.OrderConfirmed(context.Background(), appnotification.OrderMessage{
		To: "ada@example.com", OrderNumber: "ORD-1", Total: decimal.NewFromInt(10), Currency: "usd",
		ItemCount: 1, PlacedAt: time.Date(2025, 3, 1, 3, 0, 0, 0, time.UTC),
	}))

	require.Len(t, s.sent, 2)
	assert.Contains(t, s.sent[0].PlainBody, "Sat, Mar 1 2025 at 10:00 AM PST")
	assert.Contains(t, s.sent[1].PlainBody, "on February 28, 2025")
}

func TestEmailNotifier_WholesaleDecisionPicksTemplate(t *testing.T) {
	n, s := newTestNotifier()

	require.NoError(t, n.WholesaleReviewed(context.Background(), appnotification.WholesaleMessage{
		To: "buyer@shop.example", BusinessName: "Fix It Fast", Decision: "APPROVED", ApprovedTier: "TIER2",
	}))
	require.NoError(t, n.WholesaleReviewed(context.Background(), appnotification.WholesaleMessage{
		To: "buyer@shop.example", BusinessName: "Fix It Fast", Decision: "REJECTED", RejectionReason: "Missing tax certificate",
	}))

	require.Len(t, s.sent, 2)
	assert.Contains(t, s.sent[0].PlainBody, "TIER2")
	assert.Contains(t, s.sent[1].PlainBody, "Missing tax certificate")
}

func TestEmailNotifier_OrderShippedOmitsEmptyTracking(t *testing.T) {
	n, s := newTestNotifier()

	require.NoError(t, n.OrderShipped(context.Background(), appnotification.OrderMessage{
		To: "ada@example.com", OrderNumber: "ORD-20250101-abc123", Total: decimal.NewFromInt(10), Currency: "usd",
	}))
	require.Len(t, s.sent, 1)
	assert.NotContains(t, s.sent[0].PlainBody, "Tracking number")
}

func TestEmailNotifier_RequiresRecipient(t *testing.T) {
	n, s := newTestNotifier()
	err := n.OrderConfirmed(context.Background(), appnotification.OrderMessage{OrderNumber: "ORD-1"})
	assert.Error(t, err)
	assert.Empty(t, s.sent)
}

func TestFormatMoney(t *testing.T) {
	n, _ := newTestNotifier()
	assert.Contains(t, n.formatMoney(decimal.RequireFromString("1234.5"), "usd"), "1,234.50")
	assert.Equal(t, "5.00 XYZ1", n.formatMoney(decimal.NewFromInt(5), "xyz1"))
}
