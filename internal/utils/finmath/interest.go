package finmath

import "math"

// SimpleInterest returns the interest earned on principal at an annual rate
// (percent) over a term in years.
func SimpleInterest(principal, ratePercent, years float64) float64 {
	return round2(principal * ratePercent * years / 100)
}

// CompoundInterest returns the interest earned on principal compounded
// periodsPerYear times per year at an annual rate (percent) over a term in
// years. The returned value excludes the principal itself.
func CompoundInterest(principal, ratePercent, periodsPerYear, years float64) float64 {
	return round2(futureValueRaw(principal, ratePercent, periodsPerYear, years) - principal)
}

// FutureValue returns the compounded value of principal after the term.
func FutureValue(principal, ratePercent, periodsPerYear, years float64) float64 {
	return round2(futureValueRaw(principal, ratePercent, periodsPerYear, years))
}

// PresentValue discounts futureAmount back over the term at the given
// annual rate and compounding frequency.
func PresentValue(futureAmount, ratePercent, periodsPerYear, years float64) float64 {
	factor := futureValueRaw(1, ratePercent, periodsPerYear, years)
	return round2(safeDivide(futureAmount, factor))
}

func futureValueRaw(principal, ratePercent, periodsPerYear, years float64) float64 {
	if periodsPerYear == 0 {
		return principal
	}
	return principal * math.Pow(1+ratePercent/100/periodsPerYear, periodsPerYear*years)
}
