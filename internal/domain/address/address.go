package address

import (
	"fmt"
	"strings"
	"time"

	sharedvo "github.com/phonefix-inc/phonefix/internal/domain/shared/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/shared/biztime"
	"github.com/phonefix-inc/phonefix/internal/shared/errors"
)

type Type string

const (
	TypeShipping Type = "SHIPPING"
	TypeBilling  Type = "BILLING"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	return t == TypeShipping || t == TypeBilling
}

// ParseType is case-insensitive; empty means SHIPPING.
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TypeShipping, nil
	}
	t := Type(strings.ToUpper(s))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid address type: %s", s)
	}
	return t, nil
}

// Address is a saved, user-owned address. At most one address per
// (user, type) is the default.
type Address struct {
	id        uint
	userID    string
	addrType  Type
	postal    sharedvo.PostalAddress
	isDefault bool
	createdAt time.Time
	updatedAt time.Time
}

func NewAddress(userID string, addrType Type, postal sharedvo.PostalAddress) (*Address, error) {
	if userID == "" {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if !addrType.IsValid() {
		return nil, errors.NewFieldValidationError("type", "type must be SHIPPING or BILLING")
	}
	if err := postal.Validate(""); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Address{
		userID:    userID,
		addrType:  addrType,
		postal:    postal,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAddress(id uint, userID string, addrType Type, postal sharedvo.PostalAddress, isDefault bool, createdAt, updatedAt time.Time) (*Address, error) {
	if id == 0 {
		return nil, fmt.Errorf("address ID cannot be zero")
	}
	if !addrType.IsValid() {
		return nil, fmt.Errorf("invalid address type: %s", addrType)
	}
	return &Address{
		id:        id,
		userID:    userID,
		addrType:  addrType,
		postal:    postal,
		isDefault: isDefault,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (a *Address) ID() uint {
	return a.id
}

func (a *Address) UserID() string {
	return a.userID
}

func (a *Address) Type() Type {
	return a.addrType
}

func (a *Address) Postal() sharedvo.PostalAddress {
	return a.postal
}

func (a *Address) IsDefault() bool {
	return a.isDefault
}

func (a *Address) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Address) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Address) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("address ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("address ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Address) IsOwnedBy(userID string) bool {
	return userID != "" && a.userID == userID
}

// Edit replaces the postal fields and, optionally, the type.
func (a *Address) Edit(addrType Type, postal sharedvo.PostalAddress) error {
	if !addrType.IsValid() {
		return errors.NewFieldValidationError("type", "type must be SHIPPING or BILLING")
	}
	if err := postal.Validate(""); err != nil {
		return err
	}
	a.addrType = addrType
	a.postal = postal
	a.updatedAt = biztime.NowUTC()
	return nil
}

func (a *Address) MarkDefault() {
	a.isDefault = true
	a.updatedAt = biztime.NowUTC()
}

func (a *Address) ClearDefault() {
	a.isDefault = false
	a.updatedAt = biztime.NowUTC()
}
