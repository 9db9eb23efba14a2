package dto

import (
	"time"

	"github.com/phonefix-inc/phonefix/internal/domain/shared/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/domain/wholesale"
)

type ApplicationDTO struct {
	ID              uint                       `json:"id"`
	UserID          string                     `json:"user_id"`
	BusinessName    string                     `json:"business_name"`
	BusinessType    string                     `json:"business_type"`
	TaxID           string                     `json:"tax_id"`
	Website         *string                    `json:"website,omitempty"`
	BusinessPhone   string                     `json:"business_phone"`
	BusinessEmail   string                     `json:"business_email"`
	BusinessAddress valueobjects.PostalAddress `json:"business_address"`
	Documents       []string                   `json:"documents"`
	Status          string                     `json:"status"`
	RequestedTier   string                     `json:"requested_tier"`
	ApprovedTier    *string                    `json:"approved_tier,omitempty"`
	ReviewedBy      *string                    `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time                 `json:"reviewed_at,omitempty"`
	RejectionReason *string                    `json:"rejection_reason,omitempty"`
	AdminNotes      string                     `json:"admin_notes,omitempty"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
}

// ToApplicationDTO drops reviewer details unless adminView is set.
func ToApplicationDTO(a *wholesale.Application, adminView bool) *ApplicationDTO {
	docs := a.Documents()
	if docs == nil {
		docs = []string{}
	}
	d := &ApplicationDTO{
		ID:              a.ID(),
		UserID:          a.UserID(),
		BusinessName:    a.BusinessName(),
		BusinessType:    a.BusinessType(),
		TaxID:           a.TaxID(),
		Website:         a.Website(),
		BusinessPhone:   a.BusinessPhone(),
		BusinessEmail:   a.BusinessEmail(),
		BusinessAddress: a.BusinessAddress(),
		Documents:       docs,
		Status:          a.Status().String(),
		RequestedTier:   a.RequestedTier().String(),
		ReviewedAt:      a.ReviewedAt(),
		RejectionReason: a.RejectionReason(),
		CreatedAt:       a.CreatedAt(),
		UpdatedAt:       a.UpdatedAt(),
	}
	if t := a.ApprovedTier(); t != nil {
		s := t.String()
		d.ApprovedTier = &s
	}
	if adminView {
		d.ReviewedBy = a.ReviewedBy()
		d.AdminNotes = a.AdminNotes()
	}
	return d
}
