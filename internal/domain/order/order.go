package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	vo "github.com/phonefix-inc/phonefix/internal/domain/order/valueobjects"
	sharedvo "github.com/phonefix-inc/phonefix/internal/domain/shared/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	"github.com/phonefix-inc/phonefix/internal/shared/biztime"
	"github.com/phonefix-inc/phonefix/internal/shared/errors"
)

type Order struct {
	id              uint
	orderNumber     string
	userID          *string
	customerEmail   string
	items           []*OrderItem
	subtotal        decimal.Decimal
	discountAmount  decimal.Decimal
	taxAmount       decimal.Decimal
	shippingCost    decimal.Decimal
	totalAmount     decimal.Decimal
	currency        string
	isWholesale     bool
	wholesaleTier   *string
	shippingAddress sharedvo.PostalAddress
	billingAddress  *sharedvo.PostalAddress
	status          vo.OrderStatus
	paymentStatus   vo.PaymentStatus
	paymentMethod   string
	paymentIntentID *string
	trackingNumber  *string
	carrier         *string
	customerNotes   string
	adminNotes      string
	version         int
	createdAt       time.Time
	updatedAt       time.Time
	paidAt          *time.Time
	shippedAt       *time.Time
	deliveredAt     *time.Time
	cancelledAt     *time.Time
}

// NewOrderParams carries everything checkout resolved server-side.
type NewOrderParams struct {
	OrderNumber     string
	UserID          string
	CustomerEmail   string
	Quote           *Quote
	Currency        string
	WholesaleTier   *string
	ShippingAddress sharedvo.PostalAddress
	BillingAddress  *sharedvo.PostalAddress
	CustomerNotes   string
}

// NewOrder places an order in PENDING / payment PENDING. Money fields come
// only from the quote.
func NewOrder(p NewOrderParams) (*Order, error) {
	if p.OrderNumber == "" {
		return nil, fmt.Errorf("order number is required")
	}
	if p.UserID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if p.Quote == nil || len(p.Quote.Items) == 0 {
		return nil, errors.NewValidationError("cart is empty")
	}
	if err := p.ShippingAddress.Validate("shipping_address"); err != nil {
		return nil, err
	}
	if p.BillingAddress != nil {
		if err := p.BillingAddress.Validate("billing_address"); err != nil {
			return nil, err
		}
	}

	userID := p.UserID
	now := biztime.NowUTC()
	return &Order{
		orderNumber:     p.OrderNumber,
		userID:          &userID,
		customerEmail:   strings.TrimSpace(p.CustomerEmail),
		items:           p.Quote.Items,
		subtotal:        p.Quote.Subtotal,
		discountAmount:  p.Quote.Discount,
		taxAmount:       p.Quote.Tax,
		shippingCost:    p.Quote.Shipping,
		totalAmount:     p.Quote.Total,
		currency:        strings.ToLower(p.Currency),
		isWholesale:     p.WholesaleTier != nil,
		wholesaleTier:   p.WholesaleTier,
		shippingAddress: p.ShippingAddress,
		billingAddress:  p.BillingAddress,
		status:          vo.OrderStatusPending,
		paymentStatus:   vo.PaymentStatusPending,
		paymentMethod:   "card",
		customerNotes:   p.CustomerNotes,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructParams mirrors every persisted column.
type ReconstructParams struct {
	ID              uint
	OrderNumber     string
	UserID          *string
	CustomerEmail   string
	Items           []*OrderItem
	Subtotal        decimal.Decimal
	DiscountAmount  decimal.Decimal
	TaxAmount       decimal.Decimal
	ShippingCost    decimal.Decimal
	TotalAmount     decimal.Decimal
	Currency        string
	IsWholesale     bool
	WholesaleTier   *string
	ShippingAddress sharedvo.PostalAddress
	BillingAddress  *sharedvo.PostalAddress
	Status          vo.OrderStatus
	PaymentStatus   vo.PaymentStatus
	PaymentMethod   string
	PaymentIntentID *string
	TrackingNumber  *string
	Carrier         *string
	CustomerNotes   string
	AdminNotes      string
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	PaidAt          *time.Time
	ShippedAt       *time.Time
	DeliveredAt     *time.Time
	CancelledAt     *time.Time
}

func ReconstructOrder(p ReconstructParams) (*Order, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("order ID cannot be zero")
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid order status: %s", p.Status)
	}
	if !p.PaymentStatus.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", p.PaymentStatus)
	}

	return &Order{
		id:              p.ID,
		orderNumber:     p.OrderNumber,
		userID:          p.UserID,
		customerEmail:   p.CustomerEmail,
		items:           p.Items,
		subtotal:        p.Subtotal,
		discountAmount:  p.DiscountAmount,
		taxAmount:       p.TaxAmount,
		shippingCost:    p.ShippingCost,
		totalAmount:     p.TotalAmount,
		currency:        p.Currency,
		isWholesale:     p.IsWholesale,
		wholesaleTier:   p.WholesaleTier,
		shippingAddress: p.ShippingAddress,
		billingAddress:  p.BillingAddress,
		status:          p.Status,
		paymentStatus:   p.PaymentStatus,
		paymentMethod:   p.PaymentMethod,
		paymentIntentID: p.PaymentIntentID,
		trackingNumber:  p.TrackingNumber,
		carrier:         p.Carrier,
		customerNotes:   p.CustomerNotes,
		adminNotes:      p.AdminNotes,
		version:         p.Version,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
		paidAt:          p.PaidAt,
		shippedAt:       p.ShippedAt,
		deliveredAt:     p.DeliveredAt,
		cancelledAt:     p.CancelledAt,
	}, nil
}

func (o *Order) ID() uint {
	return o.id
}

func (o *Order) OrderNumber() string {
	return o.orderNumber
}

func (o *Order) UserID() *string {
	return o.userID
}

func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

func (o *Order) Subtotal() decimal.Decimal {
	return o.subtotal
}

func (o *Order) DiscountAmount() decimal.Decimal {
	return o.discountAmount
}

func (o *Order) TaxAmount() decimal.Decimal {
	return o.taxAmount
}

func (o *Order) ShippingCost() decimal.Decimal {
	return o.shippingCost
}

func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

func (o *Order) Currency() string {
	return o.currency
}

func (o *Order) IsWholesale() bool {
	return o.isWholesale
}

func (o *Order) WholesaleTier() *string {
	return o.wholesaleTier
}

func (o *Order) ShippingAddress() sharedvo.PostalAddress {
	return o.shippingAddress
}

func (o *Order) BillingAddress() *sharedvo.PostalAddress {
	return o.billingAddress
}

func (o *Order) Status() vo.OrderStatus {
	return o.status
}

func (o *Order) PaymentStatus() vo.PaymentStatus {
	return o.paymentStatus
}

func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

func (o *Order) PaymentIntentID() *string {
	return o.paymentIntentID
}

func (o *Order) TrackingNumber() *string {
	return o.trackingNumber
}

func (o *Order) Carrier() *string {
	return o.carrier
}

func (o *Order) CustomerNotes() string {
	return o.customerNotes
}

func (o *Order) AdminNotes() string {
	return o.adminNotes
}

func (o *Order) Version() int {
	return o.version
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

func (o *Order) Items() []*OrderItem {
	out := make([]*OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("order ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("order ID cannot be zero")
	}
	o.id = id
	return nil
}

// AdvanceVersion records a successful optimistic write.
func (o *Order) AdvanceVersion() {
	o.version++
}

// SetItemIDs is called by the repository after the items are inserted.
func (o *Order) SetItemIDs(ids []uint) {
	for i, item := range o.items {
		if i < len(ids) {
			item.id = ids[i]
			item.orderID = o.id
		}
	}
}

// IsOwnedBy reports whether the actor placed this order.
func (o *Order) IsOwnedBy(a actor.Actor) bool {
	return a.Owns(o.userID)
}

// CanBeViewedBy allows the owner and admins.
func (o *Order) CanBeViewedBy(a actor.Actor) bool {
	return a.IsAdmin() || a.Owns(o.userID)
}

// Tracking is the shipment reference supplied with a status change.
type Tracking struct {
	Number  string
	Carrier string
}

// UpdateStatus applies an admin status change. It returns whether the
// status itself moved. Same-status calls only update tracking and notes.
// An illegal move is a ConflictError; SHIPPED without any tracking number
// is a ValidationError. Nothing is mutated when an error is returned.
func (o *Order) UpdateStatus(next vo.OrderStatus, tracking *Tracking, adminNotes *string) (bool, error) {
	if !next.IsValid() {
		return false, errors.NewFieldValidationError("status", fmt.Sprintf("invalid order status: %s", next))
	}

	if next != o.status {
		if !o.status.CanTransitionTo(next) {
			return false, errors.NewConflictError(
				fmt.Sprintf("cannot transition order from %s to %s", o.status, next),
			)
		}
		if next == vo.OrderStatusShipped && !o.hasTracking(tracking) {
			return false, errors.NewFieldValidationError("tracking_number", "tracking_number is required to mark an order shipped")
		}
	}

	now := biztime.NowUTC()
	if tracking != nil {
		if n := strings.TrimSpace(tracking.Number); n != "" {
			o.trackingNumber = &n
		}
		if c := strings.TrimSpace(tracking.Carrier); c != "" {
			o.carrier = &c
		}
	}
	if adminNotes != nil {
		o.adminNotes = *adminNotes
	}
	o.updatedAt = now

	if next == o.status {
		return false, nil
	}

	o.status = next
	switch next {
	case vo.OrderStatusShipped:
		o.shippedAt = &now
	case vo.OrderStatusDelivered:
		o.deliveredAt = &now
	case vo.OrderStatusCancelled:
		o.cancelledAt = &now
	case vo.OrderStatusRefunded:
		if o.cancelledAt == nil {
			o.cancelledAt = &now
		}
		if o.paymentStatus.IsPaid() {
			o.paymentStatus = vo.PaymentStatusRefunded
		}
	}

	return true, nil
}

func (o *Order) hasTracking(t *Tracking) bool {
	if t != nil && strings.TrimSpace(t.Number) != "" {
		return true
	}
	return o.trackingNumber != nil && *o.trackingNumber != ""
}

// AttachPaymentIntent records the gateway reference for reconciliation.
func (o *Order) AttachPaymentIntent(ref string) error {
	if ref == "" {
		return fmt.Errorf("payment intent reference is required")
	}
	o.paymentIntentID = &ref
	o.updatedAt = biztime.NowUTC()
	return nil
}

// MarkPaid is idempotent; it returns false when the order was already paid.
func (o *Order) MarkPaid() bool {
	if o.paymentStatus.IsPaid() || o.paymentStatus == vo.PaymentStatusRefunded {
		return false
	}
	now := biztime.NowUTC()
	o.paymentStatus = vo.PaymentStatusPaid
	o.paidAt = &now
	o.updatedAt = now
	return true
}

// MarkPaymentFailed never downgrades a settled payment.
func (o *Order) MarkPaymentFailed() bool {
	if o.paymentStatus != vo.PaymentStatusPending {
		return false
	}
	o.paymentStatus = vo.PaymentStatusFailed
	o.updatedAt = biztime.NowUTC()
	return true
}

// RequiresPayment is false once the order is paid or refunded.
func (o *Order) RequiresPayment() bool {
	return o.paymentStatus == vo.PaymentStatusPending || o.paymentStatus == vo.PaymentStatusFailed
}
