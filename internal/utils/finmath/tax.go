package finmath

// TaxAmount returns the tax due on a tax-exclusive amount.
func TaxAmount(amount, ratePercent float64) float64 {
	return round2(amount * ratePercent / 100)
}

// TaxInclusiveAmount returns the amount with tax added.
func TaxInclusiveAmount(amount, ratePercent float64) float64 {
	return round2(amount * (1 + ratePercent/100))
}

// TaxExclusiveAmount backs the tax out of a tax-inclusive amount.
func TaxExclusiveAmount(amount, ratePercent float64) float64 {
	return round2(safeDivide(amount, 1+ratePercent/100))
}

// CompoundTax returns the total tax when several rates cascade: each rate is
// applied to a running base that grows by the tax just added, in list order.
func CompoundTax(amount float64, ratesPercent []float64) float64 {
	base := amount
	totalTax := 0.0
	for _, rate := range ratesPercent {
		tax := base * rate / 100
		totalTax += tax
		base += tax
	}
	return round2(totalTax)
}

// ConvertCurrency converts an amount using a pre-sourced exchange rate.
// Live rate sourcing is the caller's concern; only the arithmetic lives here.
func ConvertCurrency(amount, rate float64) float64 {
	return round2(amount * rate)
}

// InverseRate returns the reciprocal exchange rate, or 0 for a zero rate.
func InverseRate(rate float64) float64 {
	return round4(safeDivide(1, rate))
}

// CrossRate derives a from→to rate from two quotes against a common base.
func CrossRate(baseToFrom, baseToTo float64) float64 {
	return round4(safeDivide(baseToTo, baseToFrom))
}
