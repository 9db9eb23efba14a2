package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/phonefix-inc/phonefix/internal/domain/wholesale"
	vo "github.com/phonefix-inc/phonefix/internal/domain/wholesale/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/persistence/models"
)

type WholesaleApplicationMapper interface {
	ToModel(a *wholesale.Application) *models.WholesaleApplicationModel
	ToDomain(model *models.WholesaleApplicationModel) (*wholesale.Application, error)
}

type WholesaleApplicationMapperImpl struct{}

func NewWholesaleApplicationMapper() WholesaleApplicationMapper {
	return &WholesaleApplicationMapperImpl{}
}

func (m *WholesaleApplicationMapperImpl) ToModel(a *wholesale.Application) *models.WholesaleApplicationModel {
	model := &models.WholesaleApplicationModel{
		ID:              a.ID(),
		UserID:          a.UserID(),
		BusinessName:    a.BusinessName(),
		BusinessType:    a.BusinessType(),
		TaxID:           a.TaxID(),
		Website:         a.Website(),
		BusinessPhone:   a.BusinessPhone(),
		BusinessEmail:   a.BusinessEmail(),
		BusinessAddress: datatypes.NewJSONType(toSnapshot(a.BusinessAddress())),
		Documents:       datatypes.NewJSONSlice(a.Documents()),
		Status:          a.Status().String(),
		RequestedTier:   a.RequestedTier().String(),
		ReviewedBy:      a.ReviewedBy(),
		ReviewedAt:      a.ReviewedAt(),
		RejectionReason: a.RejectionReason(),
		AdminNotes:      a.AdminNotes(),
		CreatedAt:       a.CreatedAt(),
		UpdatedAt:       a.UpdatedAt(),
	}
	if tier := a.ApprovedTier(); tier != nil {
		s := tier.String()
		model.ApprovedTier = &s
	}
	if a.Status().IsActive() {
		userID := a.UserID()
		model.ActiveUserID = &userID
	}
	return model
}

func (m *WholesaleApplicationMapperImpl) ToDomain(model *models.WholesaleApplicationModel) (*wholesale.Application, error) {
	if model == nil {
		return nil, nil
	}

	var approved *vo.Tier
	if model.ApprovedTier != nil {
		t := vo.Tier(*model.ApprovedTier)
		approved = &t
	}

	a, err := wholesale.ReconstructApplication(wholesale.ReconstructParams{
		ID:              model.ID,
		UserID:          model.UserID,
		BusinessName:    model.BusinessName,
		BusinessType:    model.BusinessType,
		TaxID:           model.TaxID,
		Website:         model.Website,
		BusinessPhone:   model.BusinessPhone,
		BusinessEmail:   model.BusinessEmail,
		BusinessAddress: fromSnapshot(model.BusinessAddress.Data()),
		Documents:       []string(model.Documents),
		Status:          vo.ApplicationStatus(model.Status),
		RequestedTier:   vo.Tier(model.RequestedTier),
		ApprovedTier:    approved,
		ReviewedBy:      model.ReviewedBy,
		ReviewedAt:      model.ReviewedAt,
		RejectionReason: model.RejectionReason,
		AdminNotes:      model.AdminNotes,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct wholesale application %d: %w", model.ID, err)
	}
	return a, nil
}
