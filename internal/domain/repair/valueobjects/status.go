package valueobjects

import (
	"fmt"
	"strings"
)

type TicketStatus string

const (
	StatusSubmitted      TicketStatus = "SUBMITTED"
	StatusConfirmed      TicketStatus = "CONFIRMED"
	StatusInProgress     TicketStatus = "IN_PROGRESS"
	StatusWaitingParts   TicketStatus = "WAITING_PARTS"
	StatusCompleted      TicketStatus = "COMPLETED"
	StatusCancelled      TicketStatus = "CANCELLED"
	StatusCustomerPickup TicketStatus = "CUSTOMER_PICKUP"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusSubmitted:      true,
	StatusConfirmed:      true,
	StatusInProgress:     true,
	StatusWaitingParts:   true,
	StatusCompleted:      true,
	StatusCancelled:      true,
	StatusCustomerPickup: true,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

// IsClosed is true once the repair is finished either way.
func (ts TicketStatus) IsClosed() bool {
	return ts == StatusCompleted || ts == StatusCancelled
}

// ParseTicketStatus is case-insensitive and accepts "in progress" / "in-progress".
func ParseTicketStatus(s string) (TicketStatus, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	ts := TicketStatus(norm)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
