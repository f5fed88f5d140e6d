package services

import (
	"fmt"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/utils/finmath"
)

// financeService adapts the finmath library to the transport layer. It holds
// no state; every method is a pure pass-through plus input dispatch.
type financeService struct{}

// NewFinanceService creates a new finance service.
func NewFinanceService() portssvc.FinanceSvcFacade {
	return &financeService{}
}

var _ portssvc.FinanceSvcFacade = (*financeService)(nil)

func (s *financeService) SimpleInterest(principal, ratePercent, years float64) float64 {
	return finmath.SimpleInterest(principal, ratePercent, years)
}

func (s *financeService) CompoundInterest(principal, ratePercent, periodsPerYear, years float64) float64 {
	return finmath.CompoundInterest(principal, ratePercent, periodsPerYear, years)
}

func (s *financeService) FutureValue(principal, ratePercent, periodsPerYear, years float64) float64 {
	return finmath.FutureValue(principal, ratePercent, periodsPerYear, years)
}

func (s *financeService) PresentValue(futureAmount, ratePercent, periodsPerYear, years float64) float64 {
	return finmath.PresentValue(futureAmount, ratePercent, periodsPerYear, years)
}

func (s *financeService) LoanPayment(principal, annualRatePercent float64, totalPayments int) float64 {
	return finmath.LoanPayment(principal, annualRatePercent, totalPayments)
}

func (s *financeService) LoanBalance(principal, annualRatePercent float64, totalPayments, paymentsMade int) float64 {
	return finmath.LoanBalance(principal, annualRatePercent, totalPayments, paymentsMade)
}

func (s *financeService) LoanSchedule(principal, annualRatePercent float64, totalPayments int) []finmath.AmortizationPeriod {
	return finmath.LoanSchedule(principal, annualRatePercent, totalPayments)
}

func (s *financeService) Depreciation(req dto.DepreciationRequest) (float64, error) {
	switch req.Method {
	case dto.DepreciationStraightLine:
		return finmath.StraightLineDepreciation(req.Cost, req.Salvage, req.UsefulLife), nil
	case dto.DepreciationDecliningBalance:
		return finmath.DecliningBalanceDepreciation(req.Cost, req.UsefulLife, req.Rate), nil
	case dto.DepreciationUnitsOfProduction:
		return finmath.UnitsOfProductionDepreciation(req.Cost, req.Salvage, req.TotalUnits, req.UnitsThisPeriod), nil
	case dto.DepreciationSumOfYearsDigits:
		year := req.Year
		if year < 1 {
			year = 1
		}
		return finmath.SumOfYearsDigitsDepreciation(req.Cost, req.Salvage, req.UsefulLife, year), nil
	default:
		return 0, fmt.Errorf("%w: unknown depreciation method %q", apperrors.ErrValidation, req.Method)
	}
}

func (s *financeService) RatioReport(snapshot domain.FinancialMetricsSnapshot) dto.RatioReportResponse {
	return dto.RatioReportResponse{
		CurrentRatio:      finmath.CurrentRatio(snapshot.CurrentAssets, snapshot.CurrentLiabilities),
		QuickRatio:        finmath.QuickRatio(snapshot.CurrentAssets, snapshot.Inventory, snapshot.CurrentLiabilities),
		DebtToEquityRatio: finmath.DebtToEquityRatio(snapshot.TotalLiabilities, snapshot.TotalEquity),
		DebtRatio:         finmath.DebtRatio(snapshot.TotalLiabilities, snapshot.TotalAssets),
		EquityRatio:       finmath.EquityRatio(snapshot.TotalEquity, snapshot.TotalAssets),
		GrossProfitMargin: finmath.GrossProfitMargin(snapshot.GrossProfit, snapshot.TotalRevenue),
		NetProfitMargin:   finmath.NetProfitMargin(snapshot.NetIncome, snapshot.TotalRevenue),
		ReturnOnAssets:    finmath.ReturnOnAssets(snapshot.NetIncome, snapshot.TotalAssets),
		ReturnOnEquity:    finmath.ReturnOnEquity(snapshot.NetIncome, snapshot.TotalEquity),
		AssetTurnover:     finmath.AssetTurnover(snapshot.TotalRevenue, snapshot.TotalAssets),
		InventoryTurnover: finmath.InventoryTurnover(snapshot.CostOfGoodsSold, snapshot.AverageInventory),
	}
}

func (s *financeService) TaxAmount(amount, ratePercent float64) float64 {
	return finmath.TaxAmount(amount, ratePercent)
}

func (s *financeService) TaxInclusiveAmount(amount, ratePercent float64) float64 {
	return finmath.TaxInclusiveAmount(amount, ratePercent)
}

func (s *financeService) TaxExclusiveAmount(amount, ratePercent float64) float64 {
	return finmath.TaxExclusiveAmount(amount, ratePercent)
}

func (s *financeService) CompoundTax(amount float64, ratesPercent []float64) float64 {
	return finmath.CompoundTax(amount, ratesPercent)
}

func (s *financeService) NetPresentValue(initialInvestment float64, cashFlows []float64, ratePercent float64) float64 {
	return finmath.NetPresentValue(initialInvestment, cashFlows, ratePercent)
}

func (s *financeService) InternalRateOfReturn(initialInvestment float64, cashFlows []float64) float64 {
	return finmath.InternalRateOfReturn(initialInvestment, cashFlows)
}

func (s *financeService) DebtPlan(strategy string, debts []finmath.Debt, payment float64) ([]finmath.DebtAllocation, error) {
	switch strategy {
	case dto.DebtStrategySnowball:
		return finmath.SnowballAllocation(debts, payment), nil
	case dto.DebtStrategyAvalanche:
		return finmath.AvalancheAllocation(debts, payment), nil
	default:
		return nil, fmt.Errorf("%w: unknown debt strategy %q", apperrors.ErrValidation, strategy)
	}
}

func (s *financeService) ConvertCurrency(amount, rate float64) float64 {
	return finmath.ConvertCurrency(amount, rate)
}
