package dto

import (
	"github.com/shopspring/decimal"

	"github.com/phonefix-inc/phonefix/internal/domain/catalog"
)

type ProductDTO struct {
	ID             uint             `json:"id"`
	SKU            string           `json:"sku"`
	Name           string           `json:"name"`
	Slug           string           `json:"slug"`
	Description    string           `json:"description,omitempty"`
	ImageURL       *string          `json:"image_url,omitempty"`
	Price          decimal.Decimal  `json:"price"`
	CompareAtPrice *decimal.Decimal `json:"compare_at_price,omitempty"`
	QualityGrade   *string          `json:"quality_grade,omitempty"`
	StockQuantity  int              `json:"stock_quantity"`
	InStock        bool             `json:"in_stock"`
	Category       *string          `json:"category,omitempty"`
	Brand          *string          `json:"brand,omitempty"`
}

func ToProductDTO(p *catalog.Product) *ProductDTO {
	d := &ProductDTO{
		ID:             p.ID(),
		SKU:            p.SKU(),
		Name:           p.Name(),
		Slug:           p.Slug(),
		Description:    p.Description(),
		ImageURL:       p.ImageURL(),
		Price:          p.Price(),
		CompareAtPrice: p.CompareAtPrice(),
		StockQuantity:  p.StockQuantity(),
		InStock:        p.StockQuantity() > 0,
		Category:       p.Category(),
		Brand:          p.Brand(),
	}
	if g := p.QualityGrade(); g != nil {
		s := string(*g)
		d.QualityGrade = &s
	}
	return d
}
