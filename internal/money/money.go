// Package money holds the decimal conventions shared across the
// invoice graph: monetary amounts carry two decimal places, unit
// prices four, and computed totals reconcile against declared ones
// within a fixed tolerance.
package money

import "github.com/shopspring/decimal"

// Tolerance is the maximum absolute difference accepted when
// reconciling monetary totals: one rounding step per operand. The
// official Schematron rules allow the same slack on the corresponding
// BR-CO assertions.
var Tolerance = decimal.NewFromFloat(0.02)

// Within reports whether a computed total agrees with the declared one
// inside Tolerance.
func Within(computed, declared decimal.Decimal) bool {
	return computed.Sub(declared).Abs().LessThanOrEqual(Tolerance)
}

// OrZero dereferences an optional amount, treating absence as zero.
func OrZero(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}
