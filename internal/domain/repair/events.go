package repair

import (
	"strconv"

	"github.com/phonefix-inc/phonefix/internal/domain/shared/events"
	"github.com/phonefix-inc/phonefix/internal/shared/biztime"
)

const (
	EventTicketSubmitted     = "repair.submitted"
	EventTicketStatusChanged = "repair.status_changed"
)

type SubmittedEvent struct {
	events.BaseEvent
	TicketNumber string `json:"ticket_number"`
	DeviceBrand  string `json:"device_brand"`
	DeviceModel  string `json:"device_model"`
	Guest        bool   `json:"guest"`
}

func NewSubmittedEvent(t *RepairTicket) SubmittedEvent {
	return SubmittedEvent{
		BaseEvent:    events.NewBaseEvent(strconv.FormatUint(uint64(t.ID()), 10), EventTicketSubmitted, biztime.NowUTC()),
		TicketNumber: t.TicketNumber(),
		DeviceBrand:  t.DeviceBrand(),
		DeviceModel:  t.DeviceModel(),
		Guest:        t.UserID() == nil,
	}
}

type StatusChangedEvent struct {
	events.BaseEvent
	TicketNumber string `json:"ticket_number"`
	OldStatus    string `json:"old_status"`
	NewStatus    string `json:"new_status"`
	ChangedBy    string `json:"changed_by"`
}

func NewStatusChangedEvent(t *RepairTicket, oldStatus, changedBy string) StatusChangedEvent {
	return StatusChangedEvent{
		BaseEvent:    events.NewBaseEvent(strconv.FormatUint(uint64(t.ID()), 10), EventTicketStatusChanged, biztime.NowUTC()),
		TicketNumber: t.TicketNumber(),
		OldStatus:    oldStatus,
		NewStatus:    t.Status().String(),
		ChangedBy:    changedBy,
	}
}
