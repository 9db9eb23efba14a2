package order

import (
	"strconv"

	"github.com/phonefix-inc/phonefix/internal/domain/shared/events"
	"github.com/phonefix-inc/phonefix/internal/shared/biztime"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderPaid          = "order.paid"
)

type CreatedEvent struct {
	events.BaseEvent
	OrderNumber string `json:"order_number"`
	UserID      string `json:"user_id"`
	TotalAmount string `json:"total_amount"`
	Currency    string `json:"currency"`
	IsWholesale bool   `json:"is_wholesale"`
}

func NewCreatedEvent(o *Order) CreatedEvent {
	userID := ""
	if o.UserID() != nil {
		userID = *o.UserID()
	}
	return CreatedEvent{
		BaseEvent:   events.NewBaseEvent(strconv.FormatUint(uint64(o.ID()), 10), EventOrderCreated, biztime.NowUTC()),
		OrderNumber: o.OrderNumber(),
		UserID:      userID,
		TotalAmount: o.TotalAmount().StringFixed(2),
		Currency:    o.Currency(),
		IsWholesale: o.IsWholesale(),
	}
}

type StatusChangedEvent struct {
	events.BaseEvent
	OrderNumber string `json:"order_number"`
	OldStatus   string `json:"old_status"`
	NewStatus   string `json:"new_status"`
	ChangedBy   string `json:"changed_by"`
}

func NewStatusChangedEvent(o *Order, oldStatus, changedBy string) StatusChangedEvent {
	return StatusChangedEvent{
		BaseEvent:   events.NewBaseEvent(strconv.FormatUint(uint64(o.ID()), 10), EventOrderStatusChanged, biztime.NowUTC()),
		OrderNumber: o.OrderNumber(),
		OldStatus:   oldStatus,
		NewStatus:   o.Status().String(),
		ChangedBy:   changedBy,
	}
}

type PaidEvent struct {
	events.BaseEvent
	OrderNumber     string `json:"order_number"`
	PaymentIntentID string `json:"payment_intent_id"`
}

func NewPaidEvent(o *Order) PaidEvent {
	ref := ""
	if o.PaymentIntentID() != nil {
		ref = *o.PaymentIntentID()
	}
	return PaidEvent{
		BaseEvent:       events.NewBaseEvent(strconv.FormatUint(uint64(o.ID()), 10), EventOrderPaid, biztime.NowUTC()),
		OrderNumber:     o.OrderNumber(),
		PaymentIntentID: ref,
	}
}
