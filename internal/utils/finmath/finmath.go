// Package finmath is a stateless financial calculation library: interest and
// time-value-of-money, loan amortization, depreciation, accounting ratios,
// tax arithmetic and debt repayment planning.
//
// Every function takes fully specified numeric inputs and returns a value
// rounded at the output boundary: 2 decimal places for amounts and ratios,
// 4 for exchange rates. Division by zero yields 0 rather than an error so
// dashboard callers can render results unconditionally.
package finmath

import "math"

// round2 rounds half away from zero to 2 decimal places, the currency
// display convention used everywhere amounts leave this package.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round4 rounds to 4 decimal places, used for exchange rates.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// safeDivide returns numerator/denominator, or 0 when the denominator is 0.
func safeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
