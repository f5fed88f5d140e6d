package finmath

import "sort"

// Debt is one outstanding balance in a repayment plan.
type Debt struct {
	Name                string  `json:"name"`
	Balance             float64 `json:"balance"`
	InterestRatePercent float64 `json:"interestRatePercent"`
}

// DebtAllocation records how much of the payment budget went to one debt.
type DebtAllocation struct {
	Name             string  `json:"name"`
	Payment          float64 `json:"payment"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// SnowballAllocation spreads the payment budget across debts smallest
// balance first, paying each off in full before moving on. Allocation stops
// when the budget is exhausted; debts never reached get no record.
func SnowballAllocation(debts []Debt, payment float64) []DebtAllocation {
	ordered := make([]Debt, len(debts))
	copy(ordered, debts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Balance < ordered[j].Balance
	})
	return allocate(ordered, payment)
}

// AvalancheAllocation spreads the payment budget across debts highest
// interest rate first. Allocation stops when the budget is exhausted.
func AvalancheAllocation(debts []Debt, payment float64) []DebtAllocation {
	ordered := make([]Debt, len(debts))
	copy(ordered, debts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].InterestRatePercent > ordered[j].InterestRatePercent
	})
	return allocate(ordered, payment)
}

func allocate(ordered []Debt, payment float64) []DebtAllocation {
	var allocations []DebtAllocation
	remaining := payment
	for _, debt := range ordered {
		if remaining <= 0 {
			break
		}
		applied := debt.Balance
		if applied > remaining {
			applied = remaining
		}
		remaining -= applied
		allocations = append(allocations, DebtAllocation{
			Name:             debt.Name,
			Payment:          round2(applied),
			RemainingBalance: round2(debt.Balance - applied),
		})
	}
	return allocations
}
