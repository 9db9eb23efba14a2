package models

import "time"

type CartItemModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"size:64;not null;uniqueIndex:idx_cart_user_product"`
	ProductID uint   `gorm:"not null;uniqueIndex:idx_cart_user_product"`
	Quantity  int    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CartItemModel) TableName() string {
	return "cart_items"
}
