package repair

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/phonefix-inc/phonefix/internal/application/repair/usecases"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
)

// SubmitTicketRequest is the public intake form. A status sent by the client
// has no field to land in and is dropped by the decoder.
type SubmitTicketRequest struct {
	CustomerName     string     `json:"customer_name" validate:"required,max=100"`
	CustomerEmail    string     `json:"customer_email" validate:"required,email,max=255"`
	CustomerPhone    *string    `json:"customer_phone,omitempty" validate:"omitempty,max=30"`
	DeviceBrand      string     `json:"device_brand" validate:"required,max=50"`
	DeviceModel      string     `json:"device_model" validate:"required,max=100"`
	IMEISerial       *string    `json:"imei_serial,omitempty" validate:"omitempty,max=50"`
	IssueDescription string     `json:"issue_description" validate:"required,max=5000"`
	IssueCategory    *string    `json:"issue_category,omitempty" validate:"omitempty,max=50"`
	CustomerNotes    string     `json:"customer_notes,omitempty" validate:"max=2000"`
	AssignedStoreID  *uint      `json:"assigned_store_id,omitempty" validate:"omitempty,gt=0"`
	AppointmentDate  *time.Time `json:"appointment_date,omitempty"`
}

func (r *SubmitTicketRequest) ToCommand(a actor.Actor) usecases.SubmitTicketCommand {
	return usecases.SubmitTicketCommand{
		Actor:            a,
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		CustomerPhone:    r.CustomerPhone,
		DeviceBrand:      r.DeviceBrand,
		DeviceModel:      r.DeviceModel,
		IMEISerial:       r.IMEISerial,
		IssueDescription: r.IssueDescription,
		IssueCategory:    r.IssueCategory,
		CustomerNotes:    r.CustomerNotes,
		AssignedStoreID:  r.AssignedStoreID,
		AppointmentDate:  r.AppointmentDate,
	}
}

// UpdateTicketRequest is a partial update; absent fields stay unchanged.
type UpdateTicketRequest struct {
	Status             *string          `json:"status,omitempty"`
	Priority           *string          `json:"priority,omitempty"`
	TechnicianNotes    *string          `json:"technician_notes,omitempty" validate:"omitempty,max=5000"`
	EstimatedCost      *decimal.Decimal `json:"estimated_cost,omitempty"`
	PartsCost          *decimal.Decimal `json:"parts_cost,omitempty"`
	LaborCost          *decimal.Decimal `json:"labor_cost,omitempty"`
	AssignedTechnician *string          `json:"assigned_technician,omitempty" validate:"omitempty,max=100"`
	AssignedStoreID    *uint            `json:"assigned_store_id,omitempty" validate:"omitempty,gt=0"`
	AppointmentDate    *time.Time       `json:"appointment_date,omitempty"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint, a actor.Actor) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:           ticketID,
		Actor:              a,
		Status:             r.Status,
		Priority:           r.Priority,
		TechnicianNotes:    r.TechnicianNotes,
		EstimatedCost:      r.EstimatedCost,
		PartsCost:          r.PartsCost,
		LaborCost:          r.LaborCost,
		AssignedTechnician: r.AssignedTechnician,
		AssignedStoreID:    r.AssignedStoreID,
		AppointmentDate:    r.AppointmentDate,
	}
}

type TrackTicketRequest struct {
	TicketNumber string `form:"ticket_number" json:"ticket_number" validate:"required,max=32"`
	Email        string `form:"email" json:"email" validate:"required,email"`
}
