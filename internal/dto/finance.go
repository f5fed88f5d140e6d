package dto

import (
	"github.com/finbooks/finbooks_backend/internal/utils/finmath"
)

// ResultResponse wraps a single computed value.
type ResultResponse struct {
	Result float64 `json:"result"`
}

// SimpleInterestRequest carries principal, annual rate and term in years.
type SimpleInterestRequest struct {
	Principal   float64 `json:"principal" binding:"min=0"`
	RatePercent float64 `json:"ratePercent" binding:"min=0"`
	Years       float64 `json:"years" binding:"min=0"`
}

// CompoundingRequest carries the shared inputs of the compounding
// calculators (compound interest, future value, present value).
type CompoundingRequest struct {
	Principal      float64 `json:"principal" binding:"min=0"`
	RatePercent    float64 `json:"ratePercent" binding:"min=0"`
	PeriodsPerYear float64 `json:"periodsPerYear" binding:"min=0"`
	Years          float64 `json:"years" binding:"min=0"`
}

// LoanRequest carries loan amortization inputs. PaymentsMade is only
// consulted by the balance endpoint.
type LoanRequest struct {
	Principal         float64 `json:"principal" binding:"min=0"`
	AnnualRatePercent float64 `json:"annualRatePercent" binding:"min=0"`
	TotalPayments     int     `json:"totalPayments" binding:"required,min=1"`
	PaymentsMade      int     `json:"paymentsMade" binding:"min=0"`
}

// Depreciation methods accepted by the depreciation endpoint.
const (
	DepreciationStraightLine      = "STRAIGHT_LINE"
	DepreciationDecliningBalance  = "DECLINING_BALANCE"
	DepreciationUnitsOfProduction = "UNITS_OF_PRODUCTION"
	DepreciationSumOfYearsDigits  = "SUM_OF_YEARS_DIGITS"
)

// DepreciationRequest selects a depreciation method and its inputs. Fields
// irrelevant to the chosen method are ignored.
type DepreciationRequest struct {
	Method          string  `json:"method" binding:"required,oneof=STRAIGHT_LINE DECLINING_BALANCE UNITS_OF_PRODUCTION SUM_OF_YEARS_DIGITS"`
	Cost            float64 `json:"cost" binding:"min=0"`
	Salvage         float64 `json:"salvage" binding:"min=0"`
	UsefulLife      float64 `json:"usefulLife" binding:"min=0"`
	Rate            float64 `json:"rate" binding:"min=0"`
	TotalUnits      float64 `json:"totalUnits" binding:"min=0"`
	UnitsThisPeriod float64 `json:"unitsThisPeriod" binding:"min=0"`
	Year            int     `json:"year" binding:"min=0"`
}

// RatioReportResponse is the full ratio dashboard computed from a
// financial metrics snapshot.
type RatioReportResponse struct {
	CurrentRatio      float64 `json:"currentRatio"`
	QuickRatio        float64 `json:"quickRatio"`
	DebtToEquityRatio float64 `json:"debtToEquityRatio"`
	DebtRatio         float64 `json:"debtRatio"`
	EquityRatio       float64 `json:"equityRatio"`
	GrossProfitMargin float64 `json:"grossProfitMargin"`
	NetProfitMargin   float64 `json:"netProfitMargin"`
	ReturnOnAssets    float64 `json:"returnOnAssets"`
	ReturnOnEquity    float64 `json:"returnOnEquity"`
	AssetTurnover     float64 `json:"assetTurnover"`
	InventoryTurnover float64 `json:"inventoryTurnover"`
}

// TaxRequest carries a single amount/rate pair.
type TaxRequest struct {
	Amount      float64 `json:"amount" binding:"min=0"`
	RatePercent float64 `json:"ratePercent" binding:"min=0"`
}

// CompoundTaxRequest carries an amount and the cascading rate list, applied
// in order.
type CompoundTaxRequest struct {
	Amount       float64   `json:"amount" binding:"min=0"`
	RatesPercent []float64 `json:"ratesPercent" binding:"required,min=1"`
}

// CashFlowRequest carries the inputs of the NPV and IRR endpoints.
// RatePercent is ignored by IRR, which solves for it.
type CashFlowRequest struct {
	InitialInvestment float64   `json:"initialInvestment" binding:"min=0"`
	CashFlows         []float64 `json:"cashFlows" binding:"required,min=1"`
	RatePercent       float64   `json:"ratePercent"`
}

// Debt plan strategies accepted by the debt-plan endpoint.
const (
	DebtStrategySnowball  = "SNOWBALL"
	DebtStrategyAvalanche = "AVALANCHE"
)

// DebtPlanRequest carries the debts and the available payment budget.
type DebtPlanRequest struct {
	Strategy string         `json:"strategy" binding:"required,oneof=SNOWBALL AVALANCHE"`
	Debts    []finmath.Debt `json:"debts" binding:"required,min=1"`
	Payment  float64        `json:"payment" binding:"min=0"`
}

// DebtPlanResponse lists the per-debt allocation of the payment budget.
type DebtPlanResponse struct {
	Strategy    string                   `json:"strategy"`
	Allocations []finmath.DebtAllocation `json:"allocations"`
}

// ConvertCurrencyRequest converts an amount given a pre-sourced rate.
type ConvertCurrencyRequest struct {
	Amount           float64 `json:"amount" binding:"min=0"`
	Rate             float64 `json:"rate" binding:"required,gt=0"`
	FromCurrencyCode string  `json:"fromCurrencyCode" binding:"omitempty,len=3,uppercase"`
	ToCurrencyCode   string  `json:"toCurrencyCode" binding:"omitempty,len=3,uppercase"`
}
