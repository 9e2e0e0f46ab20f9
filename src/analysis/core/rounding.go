package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Response-boundary rounding. Internal computation always keeps full float
// precision; these run exactly once when a payload is shaped.
// -----------------------------------------------------------------------------

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Round4 rounds to 4 decimal places.
func Round4(v float64) float64 {
	return decimal.NewFromFloat(v).Round(4).InexactFloat64()
}

// -----------------------------------------------------------------------------

// AbbreviateNumber renders a value with a K/M/B/T suffix.
func AbbreviateNumber(v float64) string {
	switch {
	case v >= 1e12:
		return fmt.Sprintf("%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2fK", v/1e3)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// -----------------------------------------------------------------------------

// ExponentLabel renders a value in exponential notation.
func ExponentLabel(v float64) string {
	return fmt.Sprintf("%.2e", v)
}
