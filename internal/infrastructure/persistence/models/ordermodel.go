package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// AddressSnapshot is the JSON shape of address columns.
type AddressSnapshot struct {
	FullName   string  `json:"full_name"`
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	Country    string  `json:"country"`
	Phone      *string `json:"phone,omitempty"`
}

type OrderModel struct {
	ID              uint                                  `gorm:"primaryKey"`
	OrderNumber     string                                `gorm:"uniqueIndex;size:32;not null"`
	UserID          *string                               `gorm:"size:64;index"`
	CustomerEmail   string                                `gorm:"size:255"`
	Subtotal        decimal.Decimal                       `gorm:"type:decimal(12,2);not null"`
	DiscountAmount  decimal.Decimal                       `gorm:"type:decimal(12,2);not null;default:0"`
	TaxAmount       decimal.Decimal                       `gorm:"type:decimal(12,2);not null;default:0"`
	ShippingCost    decimal.Decimal                       `gorm:"type:decimal(12,2);not null;default:0"`
	TotalAmount     decimal.Decimal                       `gorm:"type:decimal(12,2);not null"`
	Currency        string                                `gorm:"size:3;not null"`
	IsWholesale     bool                                  `gorm:"not null;default:false"`
	WholesaleTier   *string                               `gorm:"size:10"`
	ShippingAddress datatypes.JSONType[AddressSnapshot]   `gorm:"not null"`
	BillingAddress  *datatypes.JSONType[AddressSnapshot]
	Status          string                                `gorm:"size:20;not null;index"`
	PaymentStatus   string                                `gorm:"size:20;not null;index"`
	PaymentMethod   string                                `gorm:"size:32"`
	PaymentIntentID *string                               `gorm:"size:255;uniqueIndex"`
	TrackingNumber  *string                               `gorm:"size:100"`
	Carrier         *string                               `gorm:"size:50"`
	CustomerNotes   string                                `gorm:"type:text"`
	AdminNotes      string                                `gorm:"type:text"`
	Version         int                                   `gorm:"not null;default:1"`
	CreatedAt       time.Time                             `gorm:"index"`
	UpdatedAt       time.Time
	PaidAt          *time.Time
	ShippedAt       *time.Time
	DeliveredAt     *time.Time
	CancelledAt     *time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

func (OrderModel) TableName() string {
	return "orders"
}

type OrderItemModel struct {
	ID                 uint            `gorm:"primaryKey"`
	OrderID            uint            `gorm:"not null;index"`
	ProductID          uint            `gorm:"not null;index"`
	ProductName        string          `gorm:"size:255;not null"`
	ProductSKU         string          `gorm:"column:product_sku;size:64"`
	ProductImage       string          `gorm:"size:512"`
	UnitPrice          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Quantity           int             `gorm:"not null"`
	Subtotal           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt          time.Time
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
