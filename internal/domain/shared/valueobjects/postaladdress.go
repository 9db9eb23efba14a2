package valueobjects

import (
	"strings"

	"github.com/phonefix-inc/phonefix/internal/shared/errors"
)

// PostalAddress is the structured address shape shared by order snapshots,
// saved addresses and wholesale business addresses.
type PostalAddress struct {
	FullName   string  `json:"full_name"`
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	Country    string  `json:"country"`
	Phone      *string `json:"phone,omitempty"`
}

// Normalize trims every field, blanks optional fields that are empty and
// applies defaultCountry when no country was given.
func (a PostalAddress) Normalize(defaultCountry string) PostalAddress {
	a.FullName = strings.TrimSpace(a.FullName)
	a.Line1 = strings.TrimSpace(a.Line1)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	a.PostalCode = strings.TrimSpace(a.PostalCode)
	a.Country = strings.ToUpper(strings.TrimSpace(a.Country))
	if a.Country == "" {
		a.Country = strings.ToUpper(defaultCountry)
	}
	a.Line2 = trimOptional(a.Line2)
	a.Phone = trimOptional(a.Phone)
	return a
}

// Validate reports every missing required field at once.
func (a PostalAddress) Validate(prefix string) error {
	required := []struct {
		name  string
		value string
	}{
		{"full_name", a.FullName},
		{"line1", a.Line1},
		{"city", a.City},
		{"state", a.State},
		{"postal_code", a.PostalCode},
		{"country", a.Country},
	}

	var fields []errors.FieldError
	for _, r := range required {
		if r.value == "" {
			name := r.name
			if prefix != "" {
				name = prefix + "." + name
			}
			fields = append(fields, errors.FieldError{Field: name, Message: name + " is required"})
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return errors.NewValidationError("invalid address").WithFields(fields...)
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
