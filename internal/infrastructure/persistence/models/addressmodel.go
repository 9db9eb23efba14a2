package models

import "time"

type AddressModel struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     string    `gorm:"size:64;not null;index:idx_addresses_user_type"`
	Type       string    `gorm:"size:10;not null;index:idx_addresses_user_type"`
	FullName   string    `gorm:"size:255;not null"`
	Line1      string    `gorm:"column:line1;size:255;not null"`
	Line2      *string   `gorm:"column:line2;size:255"`
	City       string    `gorm:"size:100;not null"`
	State      string    `gorm:"size:100;not null"`
	PostalCode string    `gorm:"size:20;not null"`
	Country    string    `gorm:"size:2;not null"`
	Phone      *string   `gorm:"size:32"`
	IsDefault  bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (AddressModel) TableName() string {
	return "addresses"
}
