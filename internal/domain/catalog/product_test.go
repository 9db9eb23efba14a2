package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phonefix-inc/phonefix/internal/shared/errors"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "iphone-15-pro-oled-screen", Slugify("iPhone 15 Pro / OLED Screen!"))
	assert.Equal(t, "a-b", Slugify("  A  &  B  "))
}

func TestNewProduct(t *testing.T) {
	p, err := NewProduct(ProductParams{
		SKU:           " SCR-IP15 ",
		Name:          "iPhone 15 Screen",
		Price:         decimal.RequireFromString("129.99"),
		StockQuantity: 4,
		IsActive:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, "SCR-IP15", p.SKU())
	assert.Equal(t, "iphone-15-screen", p.Slug())
	assert.True(t, p.CanFulfil(4))
	assert.False(t, p.CanFulfil(5))
	assert.False(t, p.CanFulfil(0))
}

func TestNewProduct_Invalid(t *testing.T) {
	grade := QualityGrade("REFURB")
	_, err := NewProduct(ProductParams{Price: decimal.NewFromInt(-1), StockQuantity: -1, QualityGrade: &grade})

	require.True(t, errors.IsValidationError(err))
	assert.Len(t, errors.GetAppError(err).Fields, 5)
}

func TestProduct_InactiveCannotFulfil(t *testing.T) {
	p := ReconstructProduct(ProductParams{ID: 1, SKU: "X", Name: "X", StockQuantity: 10})
	assert.False(t, p.CanFulfil(1))
}
