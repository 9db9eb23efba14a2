package dto

import (
	"time"

	"github.com/phonefix-inc/phonefix/internal/domain/address"
	"github.com/phonefix-inc/phonefix/internal/domain/shared/valueobjects"
)

// AddressDTO flattens the postal fields next to the bookkeeping ones.
type AddressDTO struct {
	ID        uint   `json:"id"`
	Type      string `json:"type"`
	IsDefault bool   `json:"is_default"`
	valueobjects.PostalAddress
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToAddressDTO(a *address.Address) *AddressDTO {
	return &AddressDTO{
		ID:            a.ID(),
		Type:          a.Type().String(),
		IsDefault:     a.IsDefault(),
		PostalAddress: a.Postal(),
		CreatedAt:     a.CreatedAt(),
		UpdatedAt:     a.UpdatedAt(),
	}
}
