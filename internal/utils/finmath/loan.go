package finmath

import "math"

// AmortizationPeriod is one row of a loan repayment schedule.
type AmortizationPeriod struct {
	Period    int     `json:"period"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// LoanPayment returns the fixed periodic payment that amortizes principal
// over totalPayments monthly installments at an annual rate (percent).
// A zero rate degrades to a straight linear split.
func LoanPayment(principal, annualRatePercent float64, totalPayments int) float64 {
	if totalPayments <= 0 {
		return 0
	}
	return round2(loanPaymentRaw(principal, annualRatePercent, totalPayments))
}

// LoanBalance returns the remaining principal after paymentsMade installments.
func LoanBalance(principal, annualRatePercent float64, totalPayments, paymentsMade int) float64 {
	if totalPayments <= 0 {
		return 0
	}
	if paymentsMade >= totalPayments {
		return 0
	}
	if paymentsMade < 0 {
		paymentsMade = 0
	}

	r := annualRatePercent / 100 / 12
	if r == 0 {
		remaining := principal - principal/float64(totalPayments)*float64(paymentsMade)
		return round2(remaining)
	}

	pmt := loanPaymentRaw(principal, annualRatePercent, totalPayments)
	k := float64(paymentsMade)
	growth := math.Pow(1+r, k)
	balance := principal*growth - pmt*(growth-1)/r
	return round2(balance)
}

// LoanSchedule returns the full amortization schedule. The final period
// absorbs any residual cent so the balance lands on exactly zero.
func LoanSchedule(principal, annualRatePercent float64, totalPayments int) []AmortizationPeriod {
	if totalPayments <= 0 {
		return nil
	}

	r := annualRatePercent / 100 / 12
	pmt := loanPaymentRaw(principal, annualRatePercent, totalPayments)

	schedule := make([]AmortizationPeriod, 0, totalPayments)
	balance := principal
	for period := 1; period <= totalPayments; period++ {
		interest := balance * r
		principalPortion := pmt - interest
		if period == totalPayments {
			principalPortion = balance
		}
		balance -= principalPortion
		schedule = append(schedule, AmortizationPeriod{
			Period:    period,
			Payment:   round2(principalPortion + interest),
			Principal: round2(principalPortion),
			Interest:  round2(interest),
			Balance:   round2(balance),
		})
	}
	return schedule
}

func loanPaymentRaw(principal, annualRatePercent float64, totalPayments int) float64 {
	n := float64(totalPayments)
	r := annualRatePercent / 100 / 12
	if r == 0 {
		return principal / n
	}
	growth := math.Pow(1+r, n)
	return principal * r * growth / (growth - 1)
}
