package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/phonefix-inc/phonefix/internal/domain/order"
	sharedvo "github.com/phonefix-inc/phonefix/internal/domain/shared/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/shared/mapper"
)

type OrderItemDTO struct {
	ID                 uint            `json:"id"`
	ProductID          uint            `json:"product_id"`
	Name               string          `json:"name"`
	SKU                string          `json:"sku"`
	ImageURL           string          `json:"image_url,omitempty"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	Quantity           int             `json:"quantity"`
	Subtotal           decimal.Decimal `json:"subtotal"`
}

type OrderDTO struct {
	ID              uint                    `json:"id"`
	OrderNumber     string                  `json:"order_number"`
	UserID          *string                 `json:"user_id,omitempty"`
	CustomerEmail   string                  `json:"customer_email,omitempty"`
	Items           []*OrderItemDTO         `json:"items"`
	Subtotal        decimal.Decimal         `json:"subtotal"`
	DiscountAmount  decimal.Decimal         `json:"discount_amount"`
	TaxAmount       decimal.Decimal         `json:"tax_amount"`
	ShippingCost    decimal.Decimal         `json:"shipping_cost"`
	TotalAmount     decimal.Decimal         `json:"total_amount"`
	Currency        string                  `json:"currency"`
	IsWholesale     bool                    `json:"is_wholesale"`
	WholesaleTier   *string                 `json:"wholesale_tier,omitempty"`
	ShippingAddress sharedvo.PostalAddress  `json:"shipping_address"`
	BillingAddress  *sharedvo.PostalAddress `json:"billing_address,omitempty"`
	Status          string                  `json:"status"`
	PaymentStatus   string                  `json:"payment_status"`
	PaymentMethod   string                  `json:"payment_method"`
	TrackingNumber  *string                 `json:"tracking_number,omitempty"`
	Carrier         *string                 `json:"carrier,omitempty"`
	CustomerNotes   string                  `json:"customer_notes,omitempty"`
	AdminNotes      string                  `json:"admin_notes,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
	PaidAt          *time.Time              `json:"paid_at,omitempty"`
	ShippedAt       *time.Time              `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time              `json:"delivered_at,omitempty"`
	CancelledAt     *time.Time              `json:"cancelled_at,omitempty"`
}

func ToOrderItemDTO(i *order.OrderItem) *OrderItemDTO {
	return &OrderItemDTO{
		ID:                 i.ID(),
		ProductID:          i.ProductID(),
		Name:               i.Name(),
		SKU:                i.SKU(),
		ImageURL:           i.ImageURL(),
		UnitPrice:          i.UnitPrice(),
		DiscountPercentage: i.DiscountPercentage(),
		Quantity:           i.Quantity(),
		Subtotal:           i.Subtotal(),
	}
}

// ToOrderDTO includes admin notes only when withAdminNotes is set.
func ToOrderDTO(o *order.Order, withAdminNotes bool) *OrderDTO {
	d := &OrderDTO{
		ID:              o.ID(),
		OrderNumber:     o.OrderNumber(),
		UserID:          o.UserID(),
		CustomerEmail:   o.CustomerEmail(),
		Items:           mapper.MapSlice(o.Items(), ToOrderItemDTO),
		Subtotal:        o.Subtotal(),
		DiscountAmount:  o.DiscountAmount(),
		TaxAmount:       o.TaxAmount(),
		ShippingCost:    o.ShippingCost(),
		TotalAmount:     o.TotalAmount(),
		Currency:        o.Currency(),
		IsWholesale:     o.IsWholesale(),
		WholesaleTier:   o.WholesaleTier(),
		ShippingAddress: o.ShippingAddress(),
		BillingAddress:  o.BillingAddress(),
		Status:          o.Status().String(),
		PaymentStatus:   o.PaymentStatus().String(),
		PaymentMethod:   o.PaymentMethod(),
		TrackingNumber:  o.TrackingNumber(),
		Carrier:         o.Carrier(),
		CustomerNotes:   o.CustomerNotes(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		PaidAt:          o.PaidAt(),
		ShippedAt:       o.ShippedAt(),
		DeliveredAt:     o.DeliveredAt(),
		CancelledAt:     o.CancelledAt(),
	}
	if withAdminNotes {
		d.AdminNotes = o.AdminNotes()
	}
	return d
}

type CreateOrderResult struct {
	OrderID     uint            `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type PaymentResultKind string

const (
	PaymentAlreadyPaid     PaymentResultKind = "already_paid"
	PaymentRequiresPayment PaymentResultKind = "requires_payment"
)

// PaymentResult is either AlreadyPaid, with no secret, or RequiresPayment
// carrying the client secret of the gateway intent.
type PaymentResult struct {
	Status       PaymentResultKind `json:"status"`
	ClientSecret string            `json:"client_secret,omitempty"`
	IntentID     string            `json:"-"`
}

func AlreadyPaid() *PaymentResult {
	return &PaymentResult{Status: PaymentAlreadyPaid}
}

func ClientSecret(secret, intentID string) *PaymentResult {
	return &PaymentResult{Status: PaymentRequiresPayment, ClientSecret: secret, IntentID: intentID}
}

func (r *PaymentResult) IsAlreadyPaid() bool {
	return r.Status == PaymentAlreadyPaid
}
