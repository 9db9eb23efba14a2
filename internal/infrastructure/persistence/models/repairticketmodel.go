package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RepairTicketModel struct {
	ID                 uint             `gorm:"primaryKey"`
	TicketNumber       string           `gorm:"uniqueIndex;size:32;not null"`
	UserID             *string          `gorm:"size:64;index"`
	CustomerName       string           `gorm:"size:255;not null"`
	CustomerEmail      string           `gorm:"size:255;not null;index"`
	CustomerPhone      *string          `gorm:"size:32"`
	DeviceBrand        string           `gorm:"size:100;not null"`
	DeviceModel        string           `gorm:"size:100;not null"`
	IMEISerial         *string          `gorm:"column:imei_serial;size:64"`
	IssueDescription   string           `gorm:"type:text;not null"`
	IssueCategory      *string          `gorm:"size:50"`
	AssignedStoreID    *uint            `gorm:"index"`
	AssignedTechnician *string          `gorm:"size:100"`
	AppointmentDate    *time.Time
	Status             string           `gorm:"size:20;not null;index"`
	Priority           string           `gorm:"size:20;not null"`
	EstimatedCost      *decimal.Decimal `gorm:"type:decimal(12,2)"`
	PartsCost          *decimal.Decimal `gorm:"type:decimal(12,2)"`
	LaborCost          *decimal.Decimal `gorm:"type:decimal(12,2)"`
	TechnicianNotes    string           `gorm:"type:text"`
	CustomerNotes      string           `gorm:"type:text"`
	Version            int              `gorm:"not null;default:1"`
	CreatedAt          time.Time        `gorm:"index"`
	UpdatedAt          time.Time
	ConfirmedAt        *time.Time
	StartedAt          *time.Time
	CompletedAt        *time.Time
	CancelledAt        *time.Time
}

func (RepairTicketModel) TableName() string {
	return "repair_tickets"
}
