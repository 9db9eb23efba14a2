package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/phonefix-inc/phonefix/internal/domain/repair"
)

type TicketDTO struct {
	ID                 uint             `json:"id"`
	TicketNumber       string           `json:"ticket_number"`
	UserID             *string          `json:"user_id,omitempty"`
	CustomerName       string           `json:"customer_name"`
	CustomerEmail      string           `json:"customer_email"`
	CustomerPhone      *string          `json:"customer_phone,omitempty"`
	DeviceBrand        string           `json:"device_brand"`
	DeviceModel        string           `json:"device_model"`
	IMEISerial         *string          `json:"imei_serial,omitempty"`
	IssueDescription   string           `json:"issue_description"`
	IssueCategory      *string          `json:"issue_category,omitempty"`
	AssignedStoreID    *uint            `json:"assigned_store_id,omitempty"`
	AssignedTechnician *string          `json:"assigned_technician,omitempty"`
	AppointmentDate    *time.Time       `json:"appointment_date,omitempty"`
	Status             string           `json:"status"`
	Priority           string           `json:"priority"`
	EstimatedCost      *decimal.Decimal `json:"estimated_cost"`
	PartsCost          *decimal.Decimal `json:"parts_cost"`
	LaborCost          *decimal.Decimal `json:"labor_cost"`
	BilledCost         *decimal.Decimal `json:"billed_cost"`
	TechnicianNotes    string           `json:"technician_notes,omitempty"`
	CustomerNotes      string           `json:"customer_notes,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
	ConfirmedAt        *time.Time       `json:"confirmed_at,omitempty"`
	StartedAt          *time.Time       `json:"started_at,omitempty"`
	CompletedAt        *time.Time       `json:"completed_at,omitempty"`
	CancelledAt        *time.Time       `json:"cancelled_at,omitempty"`
}

// ToTicketDTO hides technician notes from customers.
func ToTicketDTO(t *repair.RepairTicket, staffView bool) *TicketDTO {
	d := &TicketDTO{
		ID:                 t.ID(),
		TicketNumber:       t.TicketNumber(),
		UserID:             t.UserID(),
		CustomerName:       t.CustomerName(),
		CustomerEmail:      t.CustomerEmail(),
		CustomerPhone:      t.CustomerPhone(),
		DeviceBrand:        t.DeviceBrand(),
		DeviceModel:        t.DeviceModel(),
		IMEISerial:         t.IMEISerial(),
		IssueDescription:   t.IssueDescription(),
		IssueCategory:      t.IssueCategory(),
		AssignedStoreID:    t.AssignedStoreID(),
		AssignedTechnician: t.AssignedTechnician(),
		AppointmentDate:    t.AppointmentDate(),
		Status:             t.Status().String(),
		Priority:           t.Priority().String(),
		EstimatedCost:      t.EstimatedCost(),
		PartsCost:          t.PartsCost(),
		LaborCost:          t.LaborCost(),
		BilledCost:         t.BilledCost(),
		CustomerNotes:      t.CustomerNotes(),
		CreatedAt:          t.CreatedAt(),
		UpdatedAt:          t.UpdatedAt(),
		ConfirmedAt:        t.ConfirmedAt(),
		StartedAt:          t.StartedAt(),
		CompletedAt:        t.CompletedAt(),
		CancelledAt:        t.CancelledAt(),
	}
	if staffView {
		d.TechnicianNotes = t.TechnicianNotes()
	}
	return d
}

type SubmitTicketResult struct {
	TicketID     uint   `json:"ticket_id"`
	TicketNumber string `json:"ticket_number"`
	Status       string `json:"status"`
}

// TrackingDTO is the public view returned by ticket lookup. It omits the
// cost breakdown and contact details.
type TrackingDTO struct {
	TicketNumber  string           `json:"ticket_number"`
	DeviceBrand   string           `json:"device_brand"`
	DeviceModel   string           `json:"device_model"`
	Status        string           `json:"status"`
	EstimatedCost *decimal.Decimal `json:"estimated_cost"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	CompletedAt   *time.Time       `json:"completed_at,omitempty"`
}

func ToTrackingDTO(t *repair.RepairTicket) *TrackingDTO {
	return &TrackingDTO{
		TicketNumber:  t.TicketNumber(),
		DeviceBrand:   t.DeviceBrand(),
		DeviceModel:   t.DeviceModel(),
		Status:        t.Status().String(),
		EstimatedCost: t.EstimatedCost(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
		CompletedAt:   t.CompletedAt(),
	}
}
