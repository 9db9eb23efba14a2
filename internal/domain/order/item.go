package order

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OrderItem is the catalog snapshot taken at checkout. It is never mutated
// after the order is placed.
type OrderItem struct {
	id                 uint
	orderID            uint
	productID          uint
	name               string
	sku                string
	imageURL           string
	unitPrice          decimal.Decimal
	discountPercentage decimal.Decimal
	quantity           int
	subtotal           decimal.Decimal
}

// NewOrderItem computes the line subtotal as unit price times quantity.
func NewOrderItem(productID uint, name, sku, imageURL string, unitPrice, discountPercentage decimal.Decimal, quantity int) (*OrderItem, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, fmt.Errorf("unit price cannot be negative")
	}
	if discountPercentage.IsNegative() || discountPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("discount percentage must be between 0 and 100")
	}

	return &OrderItem{
		productID:          productID,
		name:               name,
		sku:                sku,
		imageURL:           imageURL,
		unitPrice:          unitPrice,
		discountPercentage: discountPercentage,
		quantity:           quantity,
		subtotal:           unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

func ReconstructOrderItem(
	id, orderID, productID uint,
	name, sku, imageURL string,
	unitPrice, discountPercentage decimal.Decimal,
	quantity int,
	subtotal decimal.Decimal,
) *OrderItem {
	return &OrderItem{
		id:                 id,
		orderID:            orderID,
		productID:          productID,
		name:               name,
		sku:                sku,
		imageURL:           imageURL,
		unitPrice:          unitPrice,
		discountPercentage: discountPercentage,
		quantity:           quantity,
		subtotal:           subtotal,
	}
}

func (i *OrderItem) ID() uint {
	return i.id
}

func (i *OrderItem) OrderID() uint {
	return i.orderID
}

func (i *OrderItem) ProductID() uint {
	return i.productID
}

func (i *OrderItem) Name() string {
	return i.name
}

func (i *OrderItem) SKU() string {
	return i.sku
}

func (i *OrderItem) ImageURL() string {
	return i.imageURL
}

func (i *OrderItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

func (i *OrderItem) DiscountPercentage() decimal.Decimal {
	return i.discountPercentage
}

func (i *OrderItem) Quantity() int {
	return i.quantity
}

func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.subtotal
}
