package usecases

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/phonefix-inc/phonefix/internal/domain/catalog"
	"github.com/phonefix-inc/phonefix/internal/domain/order"
	vo "github.com/phonefix-inc/phonefix/internal/domain/order/valueobjects"
	sharedvo "github.com/phonefix-inc/phonefix/internal/domain/shared/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewNopLogger()
}

func testPolicy() order.PricingPolicy {
	return order.PricingPolicy{
		Currency:              "usd",
		TaxRate:               decimal.RequireFromString("0.0825"),
		FlatShipping:          decimal.RequireFromString("9.99"),
		FreeShippingThreshold: decimal.NewFromInt(100),
		WholesaleFreeShipping: true,
	}
}

func testShipping() sharedvo.PostalAddress {
	return sharedvo.PostalAddress{
		FullName:   "Ada Lovelace",
		Line1:      "1 Main St",
		City:       "Austin",
		State:      "TX",
		PostalCode: "78701",
	}
}

func product(id uint, price string, stock int) *catalog.Product {
	return catalog.ReconstructProduct(catalog.ProductParams{
		ID:            id,
		SKU:           "SKU-" + price,
		Name:          "Part " + price,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
		IsActive:      true,
	})
}

type orderFixture struct {
	status        vo.OrderStatus
	paymentStatus vo.PaymentStatus
	intentID      *string
	userID        string
	email         string
}

func existingOrder(t *testing.T, f orderFixture) *order.Order {
	t.Helper()
	if f.status == "" {
		f.status = vo.OrderStatusPending
	}
	if f.paymentStatus == "" {
		f.paymentStatus = vo.PaymentStatusPending
	}
	if f.userID == "" {
		f.userID = "user-1"
	}
	now := time.Now().UTC()
	item := order.ReconstructOrderItem(1, 42, 7, "Screen", "SCR", "", decimal.RequireFromString("49.99"), decimal.Zero, 2, decimal.RequireFromString("99.98"))
	o, err := order.ReconstructOrder(order.ReconstructParams{
		ID:              42,
		OrderNumber:     "ORD-20250101-AbC123",
		UserID:          &f.userID,
		CustomerEmail:   f.email,
		Items:           []*order.OrderItem{item},
		Subtotal:        decimal.RequireFromString("99.98"),
		TaxAmount:       decimal.RequireFromString("8.25"),
		ShippingCost:    decimal.RequireFromString("9.99"),
		TotalAmount:     decimal.RequireFromString("118.22"),
		Currency:        "usd",
		ShippingAddress: testShipping(),
		Status:          f.status,
		PaymentStatus:   f.paymentStatus,
		PaymentMethod:   "card",
		PaymentIntentID: f.intentID,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	require.NoError(t, err)
	return o
}

func strPtr(s string) *string {
	return &s
}
