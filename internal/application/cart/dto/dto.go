package dto

import "github.com/shopspring/decimal"

type CartItemDTO struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Slug      string          `json:"slug"`
	ImageURL  *string         `json:"image_url,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
	Available bool            `json:"available"`
}

// CartDTO prices lines at current catalog prices. The totals are a preview;
// checkout re-prices and adds tax and shipping.
type CartDTO struct {
	Items     []*CartItemDTO  `json:"items"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}
