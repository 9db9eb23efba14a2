package seeds

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phonefix-inc/phonefix/internal/domain/catalog"
)

const sampleCatalog = `
products:
  - sku: SCR-IP13-OEM
    name: iPhone 13 Screen (OEM)
    price: 129.99
    compare_at_price: "149.00"
    quality_grade: oem
    stock_quantity: 12
    category: screens
    brand: Apple
  - sku: BAT-S21
    name: Galaxy S21 Battery
    price: "39.5"
    stock_quantity: 0
    is_active: false
`

func TestLoadCatalog(t *testing.T) {
	params, err := LoadCatalog(strings.NewReader(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, params, 2)

	screen := params[0]
	assert.Equal(t, "SCR-IP13-OEM", screen.SKU)
	assert.Equal(t, "129.99", screen.Price.String())
	assert.Equal(t, "149", screen.CompareAtPrice.String())
	require.NotNil(t, screen.QualityGrade)
	assert.Equal(t, catalog.GradeOEM, *screen.QualityGrade)
	assert.True(t, screen.IsActive)
	assert.Equal(t, "Apple", *screen.Brand)
	assert.Nil(t, screen.ImageURL)

	battery := params[1]
	assert.False(t, battery.IsActive)
	assert.Nil(t, battery.Category)
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := map[string]string{
		"bad price":     "products:\n  - sku: A\n    name: A\n    price: cheap\n",
		"bad grade":     "products:\n  - sku: A\n    name: A\n    price: 1\n    quality_grade: refurb\n",
		"unknown field": "products:\n  - sku: A\n    name: A\n    price: 1\n    colour: red\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalog_Empty(t *testing.T) {
	params, err := LoadCatalog(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, params)
}
