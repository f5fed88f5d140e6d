package services

import (
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/utils/finmath"
)

// FinanceSvcFacade exposes the stateless financial calculation library to
// the transport layer. All methods are pure; none touch a repository.
type FinanceSvcFacade interface {
	SimpleInterest(principal, ratePercent, years float64) float64
	CompoundInterest(principal, ratePercent, periodsPerYear, years float64) float64
	FutureValue(principal, ratePercent, periodsPerYear, years float64) float64
	PresentValue(futureAmount, ratePercent, periodsPerYear, years float64) float64

	LoanPayment(principal, annualRatePercent float64, totalPayments int) float64
	LoanBalance(principal, annualRatePercent float64, totalPayments, paymentsMade int) float64
	LoanSchedule(principal, annualRatePercent float64, totalPayments int) []finmath.AmortizationPeriod

	Depreciation(req dto.DepreciationRequest) (float64, error)

	RatioReport(snapshot domain.FinancialMetricsSnapshot) dto.RatioReportResponse

	TaxAmount(amount, ratePercent float64) float64
	TaxInclusiveAmount(amount, ratePercent float64) float64
	TaxExclusiveAmount(amount, ratePercent float64) float64
	CompoundTax(amount float64, ratesPercent []float64) float64

	NetPresentValue(initialInvestment float64, cashFlows []float64, ratePercent float64) float64
	InternalRateOfReturn(initialInvestment float64, cashFlows []float64) float64

	DebtPlan(strategy string, debts []finmath.Debt, payment float64) ([]finmath.DebtAllocation, error)

	ConvertCurrency(amount, rate float64) float64
}
