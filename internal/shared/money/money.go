// Package money holds decimal helpers for prices, tax and gateway amounts.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// zero-decimal currencies charge in whole units at the gateway.
var zeroDecimal = map[string]bool{
	"jpy": true,
	"krw": true,
	"vnd": true,
	"clp": true,
}

// Round2 rounds half away from zero to cents.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent returns pct percent of amount, rounded to cents.
func Percent(amount, pct decimal.Decimal) decimal.Decimal {
	return Round2(amount.Mul(pct).Div(hundred))
}

// ToMinorUnits converts an amount to the gateway's integer unit for currency.
func ToMinorUnits(amount decimal.Decimal, currency string) int64 {
	if zeroDecimal[strings.ToLower(currency)] {
		return amount.Round(0).IntPart()
	}
	return amount.Mul(hundred).Round(0).IntPart()
}

// FromMinorUnits is the inverse of ToMinorUnits.
func FromMinorUnits(units int64, currency string) decimal.Decimal {
	d := decimal.NewFromInt(units)
	if zeroDecimal[strings.ToLower(currency)] {
		return d
	}
	return d.Div(hundred)
}

// IsNegative reports whether d is below zero. Nil pointers are not negative.
func IsNegative(d *decimal.Decimal) bool {
	return d != nil && d.IsNegative()
}

// HasFractionalCents reports whether d carries precision below one cent.
// Trailing zeros such as 40.500 do not count.
func HasFractionalCents(d *decimal.Decimal) bool {
	return d != nil && !d.Equal(d.Round(2))
}
