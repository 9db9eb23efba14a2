package order

import (
	"github.com/shopspring/decimal"

	"github.com/phonefix-inc/phonefix/internal/shared/money"
)

// PricingPolicy holds the checkout money rules loaded from configuration.
type PricingPolicy struct {
	Currency              string
	TaxRate               decimal.Decimal
	FlatShipping          decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	WholesaleFreeShipping bool
}

// Line is one priced cart entry going into a quote.
type Line struct {
	ProductID uint
	Name      string
	SKU       string
	ImageURL  string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Quote is the server-side computation of every monetary field of an order.
// Total always equals Subtotal - Discount + Tax + Shipping.
type Quote struct {
	Items    []*OrderItem
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// Price quotes lines for an optional wholesale discount. discountPct is the
// tier percentage and is ignored unless wholesale is true. Discounts are
// rounded per line; tax is round2((subtotal - discount) * rate).
func (p PricingPolicy) Price(lines []Line, wholesale bool, discountPct decimal.Decimal) (*Quote, error) {
	if !wholesale {
		discountPct = decimal.Zero
	}

	q := &Quote{
		Items:    make([]*OrderItem, 0, len(lines)),
		Subtotal: decimal.Zero,
		Discount: decimal.Zero,
	}

	for _, l := range lines {
		item, err := NewOrderItem(l.ProductID, l.Name, l.SKU, l.ImageURL, l.UnitPrice, discountPct, l.Quantity)
		if err != nil {
			return nil, err
		}
		q.Items = append(q.Items, item)
		q.Subtotal = q.Subtotal.Add(item.Subtotal())
		q.Discount = q.Discount.Add(money.Percent(item.Subtotal(), discountPct))
	}

	q.Subtotal = money.Round2(q.Subtotal)
	discounted := q.Subtotal.Sub(q.Discount)
	q.Tax = money.Round2(discounted.Mul(p.TaxRate))

	switch {
	case wholesale && p.WholesaleFreeShipping:
		q.Shipping = decimal.Zero
	case p.FreeShippingThreshold.IsPositive() && discounted.GreaterThanOrEqual(p.FreeShippingThreshold):
		q.Shipping = decimal.Zero
	default:
		q.Shipping = money.Round2(p.FlatShipping)
	}

	q.Total = discounted.Add(q.Tax).Add(q.Shipping)
	return q, nil
}
