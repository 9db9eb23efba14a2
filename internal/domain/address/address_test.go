package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedvo "github.com/phonefix-inc/phonefix/internal/domain/shared/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/shared/errors"
)

func postal() sharedvo.PostalAddress {
	return sharedvo.PostalAddress{
		FullName:   "Ada Lovelace",
		Line1:      "1 Main St",
		City:       "Austin",
		State:      "TX",
		PostalCode: "78701",
		Country:    "US",
	}
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("billing")
	require.NoError(t, err)
	assert.Equal(t, TypeBilling, typ)

	typ, err = ParseType("")
	require.NoError(t, err)
	assert.Equal(t, TypeShipping, typ)

	_, err = ParseType("home")
	assert.Error(t, err)
}

func TestNewAddress(t *testing.T) {
	a, err := NewAddress("user-1", TypeShipping, postal())
	require.NoError(t, err)

	assert.False(t, a.IsDefault())
	assert.True(t, a.IsOwnedBy("user-1"))
	assert.False(t, a.IsOwnedBy("user-2"))
	assert.False(t, a.IsOwnedBy(""))
}

func TestNewAddress_Invalid(t *testing.T) {
	_, err := NewAddress("", TypeShipping, postal())
	assert.True(t, errors.IsUnauthorizedError(err))

	_, err = NewAddress("user-1", Type("HOME"), postal())
	assert.True(t, errors.IsValidationError(err))

	_, err = NewAddress("user-1", TypeShipping, sharedvo.PostalAddress{FullName: "x"})
	assert.True(t, errors.IsValidationError(err))
}

func TestAddress_EditRejectsInvalidWithoutMutating(t *testing.T) {
	a, err := NewAddress("user-1", TypeShipping, postal())
	require.NoError(t, err)

	err = a.Edit(TypeBilling, sharedvo.PostalAddress{})
	require.True(t, errors.IsValidationError(err))
	assert.Equal(t, TypeShipping, a.Type())
	assert.Equal(t, "Austin", a.Postal().City)
}
