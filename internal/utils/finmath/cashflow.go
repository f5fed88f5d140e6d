package finmath

import "math"

const (
	irrInitialGuess  = 0.10
	irrMaxIterations = 100
	irrTolerance     = 0.0001
)

// NetPresentValue discounts the cash flow series at the given annual rate
// (percent) and nets it against the initial investment. Cash flow i is
// received at the end of period i, starting at 1.
func NetPresentValue(initialInvestment float64, cashFlows []float64, ratePercent float64) float64 {
	return round2(npvAt(initialInvestment, cashFlows, ratePercent/100))
}

// InternalRateOfReturn solves for the discount rate (percent) at which the
// net present value of the series is zero, using Newton-Raphson from a 10%
// initial guess. Iteration stops at convergence, when the derivative becomes
// too flat to step safely, or after 100 iterations, whichever comes first.
func InternalRateOfReturn(initialInvestment float64, cashFlows []float64) float64 {
	rate := irrInitialGuess
	for i := 0; i < irrMaxIterations; i++ {
		npv := npvAt(initialInvestment, cashFlows, rate)
		if math.Abs(npv) < irrTolerance {
			break
		}
		derivative := npvDerivativeAt(cashFlows, rate)
		if math.Abs(derivative) < irrTolerance {
			break
		}
		rate -= npv / derivative
	}
	return round2(rate * 100)
}

func npvAt(initialInvestment float64, cashFlows []float64, rate float64) float64 {
	npv := -initialInvestment
	for i, cf := range cashFlows {
		npv += cf / math.Pow(1+rate, float64(i+1))
	}
	return npv
}

func npvDerivativeAt(cashFlows []float64, rate float64) float64 {
	derivative := 0.0
	for i, cf := range cashFlows {
		period := float64(i + 1)
		derivative -= period * cf / math.Pow(1+rate, period+1)
	}
	return derivative
}
