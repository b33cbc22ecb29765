// Package moneypkg provides exact-decimal validation for monetary amounts.
package moneypkg

import (
	"math"

	"github.com/shopspring/decimal"
)

// Scale is the maximum number of fractional digits in a monetary value.
const Scale = 2

// Valid reports whether amount is a well-formed monetary value:
// non-negative and expressible with at most Scale fractional digits.
func Valid(amount decimal.Decimal) bool {
	if amount.IsNegative() {
		return false
	}

	return amount.Equal(amount.Truncate(Scale))
}

// ValidFloat reports whether f represents a well-formed monetary value.
// NaN and the infinities are invalid. Finite values are converted to the
// shortest decimal that round-trips to f before the scale check, so binary
// rounding artifacts never pass as two-digit amounts.
func ValidFloat(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}

	return Valid(decimal.NewFromFloat(f))
}
