package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductModel struct {
	ID             uint             `gorm:"primaryKey"`
	SKU            string           `gorm:"column:sku;uniqueIndex;size:64;not null"`
	Name           string           `gorm:"size:255;not null"`
	Slug           string           `gorm:"uniqueIndex;size:255;not null"`
	Description    string           `gorm:"type:text"`
	ImageURL       *string          `gorm:"column:image_url;size:512"`
	Price          decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	CompareAtPrice *decimal.Decimal `gorm:"type:decimal(12,2)"`
	QualityGrade   *string          `gorm:"size:20"`
	StockQuantity  int              `gorm:"not null;default:0"`
	IsActive       bool             `gorm:"not null;default:true;index"`
	Category       *string          `gorm:"size:100;index"`
	Brand          *string          `gorm:"size:100;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ProductModel) TableName() string {
	return "products"
}
