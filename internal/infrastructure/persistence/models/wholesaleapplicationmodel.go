package models

import (
	"time"

	"gorm.io/datatypes"
)

// WholesaleApplicationModel keeps ActiveUserID set to the user id while the
// application is PENDING or APPROVED and NULL otherwise, so the unique index
// allows one active application per user.
type WholesaleApplicationModel struct {
	ID              uint                                `gorm:"primaryKey"`
	UserID          string                              `gorm:"size:64;not null;index"`
	ActiveUserID    *string                             `gorm:"size:64;uniqueIndex:uk_wholesale_applications_active_user"`
	BusinessName    string                              `gorm:"size:255;not null"`
	BusinessType    string                              `gorm:"size:50;not null"`
	TaxID           string                              `gorm:"column:tax_id;size:50;not null"`
	Website         *string                             `gorm:"size:255"`
	BusinessPhone   string                              `gorm:"size:32;not null"`
	BusinessEmail   string                              `gorm:"size:255;not null"`
	BusinessAddress datatypes.JSONType[AddressSnapshot] `gorm:"not null"`
	Documents       datatypes.JSONSlice[string]
	Status          string                              `gorm:"size:20;not null;index"`
	RequestedTier   string                              `gorm:"size:10;not null"`
	ApprovedTier    *string                             `gorm:"size:10"`
	ReviewedBy      *string                             `gorm:"size:64"`
	ReviewedAt      *time.Time
	RejectionReason *string                             `gorm:"type:text"`
	AdminNotes      string                              `gorm:"type:text"`
	CreatedAt       time.Time                           `gorm:"index"`
	UpdatedAt       time.Time
}

func (WholesaleApplicationModel) TableName() string {
	return "wholesale_applications"
}
