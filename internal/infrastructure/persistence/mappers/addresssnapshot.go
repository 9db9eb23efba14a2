package mappers

import (
	sharedvo "github.com/phonefix-inc/phonefix/internal/domain/shared/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/infrastructure/persistence/models"
)

func toSnapshot(a sharedvo.PostalAddress) models.AddressSnapshot {
	return models.AddressSnapshot{
		FullName:   a.FullName,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
	}
}

func fromSnapshot(s models.AddressSnapshot) sharedvo.PostalAddress {
	return sharedvo.PostalAddress{
		FullName:   s.FullName,
		Line1:      s.Line1,
		Line2:      s.Line2,
		City:       s.City,
		State:      s.State,
		PostalCode: s.PostalCode,
		Country:    s.Country,
		Phone:      s.Phone,
	}
}
