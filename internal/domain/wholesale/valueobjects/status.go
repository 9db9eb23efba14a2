package valueobjects

import (
	"fmt"
	"strings"
)

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "PENDING"
	StatusApproved ApplicationStatus = "APPROVED"
	StatusRejected ApplicationStatus = "REJECTED"
)

var validApplicationStatuses = map[ApplicationStatus]bool{
	StatusPending:  true,
	StatusApproved: true,
	StatusRejected: true,
}

func (s ApplicationStatus) String() string {
	return string(s)
}

func (s ApplicationStatus) IsValid() bool {
	return validApplicationStatuses[s]
}

// IsActive is true while the application blocks a new submission.
func (s ApplicationStatus) IsActive() bool {
	return s == StatusPending || s == StatusApproved
}

func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("invalid application status: %s", s)
	}
	return st, nil
}

// Decision is the subset of statuses a reviewer may choose.
func ParseDecision(s string) (ApplicationStatus, error) {
	st, err := ParseApplicationStatus(s)
	if err != nil {
		return "", err
	}
	if st == StatusPending {
		return "", fmt.Errorf("decision must be APPROVED or REJECTED")
	}
	return st, nil
}
