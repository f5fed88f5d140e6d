package finmath

// StraightLineDepreciation returns the equal annual charge that allocates
// cost minus salvage over the asset's useful life in years.
func StraightLineDepreciation(cost, salvage, usefulLife float64) float64 {
	return round2(safeDivide(cost-salvage, usefulLife))
}

// DecliningBalanceDepreciation returns the first-period declining-balance
// charge. A non-positive rate defaults to 2, the double-declining factor.
func DecliningBalanceDepreciation(cost, usefulLife, rate float64) float64 {
	if rate <= 0 {
		rate = 2
	}
	if usefulLife == 0 {
		return 0
	}
	return round2(cost * (rate / usefulLife) / 100)
}

// UnitsOfProductionDepreciation allocates cost minus salvage in proportion
// to the units produced this period out of the asset's total capacity.
func UnitsOfProductionDepreciation(cost, salvage, totalUnits, unitsThisPeriod float64) float64 {
	return round2(safeDivide(cost-salvage, totalUnits) * unitsThisPeriod)
}

// SumOfYearsDigitsDepreciation returns the charge for the given year
// (1-based) under the sum-of-years-digits method.
func SumOfYearsDigitsDepreciation(cost, salvage, usefulLife float64, year int) float64 {
	sumOfYears := usefulLife * (usefulLife + 1) / 2
	remainingLife := usefulLife - float64(year) + 1
	return round2(safeDivide((cost-salvage)*remainingLife, sumOfYears))
}
