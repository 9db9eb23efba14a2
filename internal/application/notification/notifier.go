// Package notification declares the customer-facing messages the workflows
// send. Delivery is best effort: callers log a failed send and carry on.
package notification

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Notifier interface {
	TicketSubmitted(ctx context.Context, msg TicketMessage) error
	TicketStatusChanged(ctx context.Context, msg TicketMessage) error
	OrderConfirmed(ctx context.Context, msg OrderMessage) error
	OrderShipped(ctx context.Context, msg OrderMessage) error
	WholesaleReviewed(ctx context.Context, msg WholesaleMessage) error
}

type TicketMessage struct {
	To           string
	CustomerName string
	TicketNumber string
	DeviceBrand  string
	DeviceModel  string
	Status       string
	Estimated    *decimal.Decimal
	Currency     string
	Appointment  *time.Time
}

type OrderMessage struct {
	To             string
	OrderNumber    string
	PlacedAt       time.Time
	Total          decimal.Decimal
	Currency       string
	ItemCount      int
	TrackingNumber string
	Carrier        string
}

type WholesaleMessage struct {
	To              string
	BusinessName    string
	Decision        string
	ApprovedTier    string
	RejectionReason string
}
