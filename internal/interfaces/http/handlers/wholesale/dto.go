package wholesale

import (
	"github.com/phonefix-inc/phonefix/internal/application/wholesale/usecases"
	"github.com/phonefix-inc/phonefix/internal/interfaces/http/handlers/common"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
)

type ApplyRequest struct {
	BusinessName    string                `json:"business_name" validate:"required,max=200"`
	BusinessType    string                `json:"business_type" validate:"required,max=50"`
	TaxID           string                `json:"tax_id" validate:"required,max=50"`
	Website         *string               `json:"website,omitempty" validate:"omitempty,url,max=255"`
	BusinessPhone   string                `json:"business_phone" validate:"required,max=30"`
	BusinessEmail   string                `json:"business_email" validate:"required,email,max=255"`
	BusinessAddress common.AddressRequest `json:"business_address" validate:"required"`
	Documents       []string              `json:"documents,omitempty" validate:"max=20,dive,required,max=500"`
	RequestedTier   string                `json:"requested_tier,omitempty" validate:"max=10"`
}

func (r *ApplyRequest) ToCommand(a actor.Actor) usecases.SubmitApplicationCommand {
	return usecases.SubmitApplicationCommand{
		Actor:           a,
		BusinessName:    r.BusinessName,
		BusinessType:    r.BusinessType,
		TaxID:           r.TaxID,
		Website:         r.Website,
		BusinessPhone:   r.BusinessPhone,
		BusinessEmail:   r.BusinessEmail,
		BusinessAddress: r.BusinessAddress.ToPostal(),
		Documents:       r.Documents,
		RequestedTier:   r.RequestedTier,
	}
}

// ReviewRequest carries the admin decision in "status" (APPROVED or REJECTED).
type ReviewRequest struct {
	Status          string  `json:"status" validate:"required"`
	ApprovedTier    *string `json:"approved_tier,omitempty" validate:"omitempty,max=10"`
	RejectionReason *string `json:"rejection_reason,omitempty" validate:"omitempty,max=2000"`
	AdminNotes      *string `json:"admin_notes,omitempty" validate:"omitempty,max=2000"`
}

func (r *ReviewRequest) ToCommand(id uint, a actor.Actor) usecases.ReviewApplicationCommand {
	return usecases.ReviewApplicationCommand{
		ApplicationID:   id,
		Actor:           a,
		Decision:        r.Status,
		ApprovedTier:    r.ApprovedTier,
		RejectionReason: r.RejectionReason,
		AdminNotes:      r.AdminNotes,
	}
}
