package wholesale

import (
	"strconv"

	"github.com/phonefix-inc/phonefix/internal/domain/shared/events"
	"github.com/phonefix-inc/phonefix/internal/shared/biztime"
)

const (
	EventApplicationSubmitted = "wholesale.submitted"
	EventApplicationReviewed  = "wholesale.reviewed"
)

type SubmittedEvent struct {
	events.BaseEvent
	UserID        string `json:"user_id"`
	BusinessName  string `json:"business_name"`
	RequestedTier string `json:"requested_tier"`
}

func NewSubmittedEvent(a *Application) SubmittedEvent {
	return SubmittedEvent{
		BaseEvent:     events.NewBaseEvent(strconv.FormatUint(uint64(a.ID()), 10), EventApplicationSubmitted, biztime.NowUTC()),
		UserID:        a.UserID(),
		BusinessName:  a.BusinessName(),
		RequestedTier: a.RequestedTier().String(),
	}
}

type ReviewedEvent struct {
	events.BaseEvent
	UserID       string  `json:"user_id"`
	Decision     string  `json:"decision"`
	ApprovedTier *string `json:"approved_tier,omitempty"`
	ReviewedBy   string  `json:"reviewed_by"`
}

func NewReviewedEvent(a *Application) ReviewedEvent {
	e := ReviewedEvent{
		BaseEvent: events.NewBaseEvent(strconv.FormatUint(uint64(a.ID()), 10), EventApplicationReviewed, biztime.NowUTC()),
		UserID:    a.UserID(),
		Decision:  a.Status().String(),
	}
	if t := a.ApprovedTier(); t != nil {
		s := t.String()
		e.ApprovedTier = &s
	}
	if r := a.ReviewedBy(); r != nil {
		e.ReviewedBy = *r
	}
	return e
}
