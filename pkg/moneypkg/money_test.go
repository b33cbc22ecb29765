package moneypkg

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValid(t *testing.T) {
	testCases := []struct {
		name   string
		amount string
		want   bool
	}{
		{name: "Zero", amount: "0", want: true},
		{name: "ZeroScaled", amount: "0.00", want: true},
		{name: "Integer", amount: "1000", want: true},
		{name: "OneDecimal", amount: "10.5", want: true},
		{name: "TwoDecimals", amount: "100.01", want: true},
		{name: "TrailingZeros", amount: "100.10", want: true},
		{name: "ThreeDecimals", amount: "50.999", want: false},
		{name: "ThirdDigitZeroSignificant", amount: "100.001", want: false},
		{name: "Negative", amount: "-1", want: false},
		{name: "NegativeCent", amount: "-0.01", want: false},
		{name: "LargeExact", amount: "12345678901234567890.25", want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tc.amount)

			if got := Valid(amount); got != tc.want {
				t.Errorf("Valid(%v) = %v, want %v", tc.amount, got, tc.want)
			}
		})
	}
}

func TestValidFloat(t *testing.T) {
	testCases := []struct {
		name   string
		amount float64
		want   bool
	}{
		{name: "Zero", amount: 0, want: true},
		{name: "TwoDecimals", amount: 250.50, want: true},
		{name: "ThreeDecimals", amount: 50.999, want: false},
		{name: "Negative", amount: -10, want: false},
		{name: "NaN", amount: math.NaN(), want: false},
		{name: "PositiveInfinity", amount: math.Inf(1), want: false},
		{name: "NegativeInfinity", amount: math.Inf(-1), want: false},
		// 0.1+0.2 is not 0.3 in binary floating point; the shortest
		// round-tripping decimal needs 17 fractional digits.
		{name: "BinaryArtifact", amount: 0.1 + 0.2, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidFloat(tc.amount); got != tc.want {
				t.Errorf("ValidFloat(%v) = %v, want %v", tc.amount, got, tc.want)
			}
		})
	}
}
