package mappers

import (
	"fmt"

	"github.com/phonefix-inc/phonefix/internal/domain/address"
	sharedvo "github.com/phonefix-inc/phonefix/internal/domain/shared/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/persistence/models"
)

type AddressMapper interface {
	ToModel(a *address.Address) *models.AddressModel
	ToDomain(model *models.AddressModel) (*address.Address, error)
}

type AddressMapperImpl struct{}

func NewAddressMapper() AddressMapper {
	return &AddressMapperImpl{}
}

func (m *AddressMapperImpl) ToModel(a *address.Address) *models.AddressModel {
	postal := a.Postal()
	return &models.AddressModel{
		ID:         a.ID(),
		UserID:     a.UserID(),
		Type:       a.Type().String(),
		FullName:   postal.FullName,
		Line1:      postal.Line1,
		Line2:      postal.Line2,
		City:       postal.City,
		State:      postal.State,
		PostalCode: postal.PostalCode,
		Country:    postal.Country,
		Phone:      postal.Phone,
		IsDefault:  a.IsDefault(),
		CreatedAt:  a.CreatedAt(),
		UpdatedAt:  a.UpdatedAt(),
	}
}

func (m *AddressMapperImpl) ToDomain(model *models.AddressModel) (*address.Address, error) {
	if model == nil {
		return nil, nil
	}

	postal := sharedvo.PostalAddress{
		FullName:   model.FullName,
		Line1:      model.Line1,
		Line2:      model.Line2,
		City:       model.City,
		State:      model.State,
		PostalCode: model.PostalCode,
		Country:    model.Country,
		Phone:      model.Phone,
	}
	a, err := address.ReconstructAddress(model.ID, model.UserID, address.Type(model.Type), postal, model.IsDefault, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct address %d: %w", model.ID, err)
	}
	return a, nil
}
