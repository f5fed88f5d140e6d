package handlers

import (
	"log/slog"
	"net/http"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// financeHandler exposes the financial calculation library over REST for
// the reporting and tools screens.
type financeHandler struct {
	financeService portssvc.FinanceSvcFacade
}

// newFinanceHandler creates a new financeHandler.
func newFinanceHandler(financeService portssvc.FinanceSvcFacade) *financeHandler {
	return &financeHandler{financeService: financeService}
}

// registerFinanceRoutes registers financial calculator routes.
func registerFinanceRoutes(group *gin.RouterGroup, financeService portssvc.FinanceSvcFacade) {
	h := newFinanceHandler(financeService)

	finance := group.Group("/finance")
	{
		finance.POST("/interest/simple", h.simpleInterest)
		finance.POST("/interest/compound", h.compoundInterest)
		finance.POST("/interest/future-value", h.futureValue)
		finance.POST("/interest/present-value", h.presentValue)
		finance.POST("/loan/payment", h.loanPayment)
		finance.POST("/loan/balance", h.loanBalance)
		finance.POST("/loan/schedule", h.loanSchedule)
		finance.POST("/depreciation", h.depreciation)
		finance.POST("/ratios/report", h.ratioReport)
		finance.POST("/tax/amount", h.taxAmount)
		finance.POST("/tax/inclusive", h.taxInclusive)
		finance.POST("/tax/exclusive", h.taxExclusive)
		finance.POST("/tax/compound", h.compoundTax)
		finance.POST("/npv", h.netPresentValue)
		finance.POST("/irr", h.internalRateOfReturn)
		finance.POST("/debt-plan", h.debtPlan)
		finance.POST("/convert", h.convertCurrency)
	}
}

// bindJSON binds the request body and writes the standard 400 response on
// failure. It reports whether binding succeeded.
func bindJSON(c *gin.Context, operation string, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Warn("Failed to bind JSON", slog.String("operation", operation), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return false
	}
	return true
}

// simpleInterest godoc
// @Summary Simple interest
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.SimpleInterestRequest true "Inputs"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /finance/interest/simple [post]
func (h *financeHandler) simpleInterest(c *gin.Context) {
	var req dto.SimpleInterestRequest
	if !bindJSON(c, "simpleInterest", &req) {
		return
	}
	c.JSON(http.StatusOK, dto.ResultResponse{Result: h.financeService.SimpleInterest(req.Principal, req.RatePercent, req.Years)})
}

// compoundInterest godoc
// @Summary Compound interest (amount earned, excluding principal)
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.CompoundingRequest true "Inputs"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /finance/interest/compound [post]
func (h *financeHandler) compoundInterest(c *gin.Context) {
	var req dto.CompoundingRequest
	if !bindJSON(c, "compoundInterest", &req) {
		return
	}
	c.JSON(http.StatusOK, dto.ResultResponse{Result: h.financeService.CompoundInterest(req.Principal, req.RatePercent, req.PeriodsPerYear, req.Years)})
}

// futureValue godoc
// @Summary Future value of a principal under compounding
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.CompoundingRequest true "Inputs"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /finance/interest/future-value [post]
func (h *financeHandler) futureValue(c *gin.Context) {
	var req dto.CompoundingRequest
	if !bindJSON(c, "futureValue", &req) {
		return
	}
	c.JSON(http.StatusOK, dto.ResultResponse{Result: h.financeService.FutureValue(req.Principal, req.RatePercent, req.PeriodsPerYear, req.Years)})
}

// presentValue godoc
// @Summary Present value of a future amount
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.CompoundingRequest true "Inputs (principal holds the future amount)"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /finance/interest/present-value [post]
func (h *financeHandler) presentValue(c *gin.Context) {
	var req dto.CompoundingRequest
	if !bindJSON(c, "presentValue", &req) {
		return
	}
	c.JSON(http.StatusOK, dto.ResultResponse{Result: h.financeService.PresentValue(req.Principal, req.RatePercent, req.PeriodsPerYear, req.Years)})
}

// loanPayment godoc
// @Summary Fixed periodic loan payment
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.LoanRequest true "Inputs"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /finance/loan/payment [post]
func (h *financeHandler) loanPayment(c *gin.Context) {
	var req dto.LoanRequest
	if !bindJSON(c, "loanPayment", &req) {
		return
	}
	c.JSON(http.StatusOK, dto.ResultResponse{Result: h.financeService.LoanPayment(req.Principal, req.AnnualRatePercent, req.TotalPayments)})
}

// loanBalance godoc
// @Summary Remaining loan balance after a number of payments
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.LoanRequest true "Inputs"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /finance/loan/balance [post]
func (h *financeHandler) loanBalance(c *gin.Context) {
	var req dto.LoanRequest
	if !bindJSON(c, "loanBalance", &req) {
		return
	}
	c.JSON(http.StatusOK, dto.ResultResponse{Result: h.financeService.LoanBalance(req.Principal, req.AnnualRatePercent, req.TotalPayments, req.PaymentsMade)})
}

// loanSchedule godoc
// @Summary Full loan amortization schedule
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.LoanRequest true "Inputs"
// @Success 200 {array} finmath.AmortizationPeriod
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /finance/loan/schedule [post]
func (h *financeHandler) loanSchedule(c *gin.Context) {
	var req dto.LoanRequest
	if !bindJSON(c, "loanSchedule", &req) {
		return
	}
	c.JSON(http.StatusOK, h.financeService.LoanSchedule(req.Principal, req.AnnualRatePercent, req.TotalPayments))
}

// depreciation godoc
// @Summary Depreciation charge under a selected method
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.DepreciationRequest true "Method and inputs"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /finance/depreciation [post]
func (h *financeHandler) depreciation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DepreciationRequest
	if !bindJSON(c, "depreciation", &req) {
		return
	}

	result, err := h.financeService.Depreciation(req)
	if err != nil {
		respondServiceError(c, logger, err, "depreciation")
		return
	}
	c.JSON(http.StatusOK, dto.ResultResponse{Result: result})
}

// ratioReport godoc
// @Summary Full accounting ratio report from a metrics snapshot
// @Description Zero denominators yield 0 for the affected ratio rather than an error.
// @Tags finance
// @Accept json
// @Produce json
// @Param snapshot body domain.FinancialMetricsSnapshot true "Metrics snapshot"
// @Success 200 {object} dto.RatioReportResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /finance/ratios/report [post]
func (h *financeHandler) ratioReport(c *gin.Context) {
	var snapshot domain.FinancialMetricsSnapshot
	if !bindJSON(c, "ratioReport", &snapshot) {
		return
	}
	c.JSON(http.StatusOK, h.financeService.RatioReport(snapshot))
}

// taxAmount godoc
// @Summary Tax due on a tax-exclusive amount
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.TaxRequest true "Inputs"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /finance/tax/amount [post]
func (h *financeHandler) taxAmount(c *gin.Context) {
	var req dto.TaxRequest
	if !bindJSON(c, "taxAmount", &req) {
		return
	}
	c.JSON(http.StatusOK, dto.ResultResponse{Result: h.financeService.TaxAmount(req.Amount, req.RatePercent)})
}

// taxInclusive godoc
// @Summary Amount with tax added
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.TaxRequest true "Inputs"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /finance/tax/inclusive [post]
func (h *financeHandler) taxInclusive(c *gin.Context) {
	var req dto.TaxRequest
	if !bindJSON(c, "taxInclusive", &req) {
		return
	}
	c.JSON(http.StatusOK, dto.ResultResponse{Result: h.financeService.TaxInclusiveAmount(req.Amount, req.RatePercent)})
}

// taxExclusive godoc
// @Summary Tax backed out of a tax-inclusive amount
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.TaxRequest true "Inputs"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /finance/tax/exclusive [post]
func (h *financeHandler) taxExclusive(c *gin.Context) {
	var req dto.TaxRequest
	if !bindJSON(c, "taxExclusive", &req) {
		return
	}
	c.JSON(http.StatusOK, dto.ResultResponse{Result: h.financeService.TaxExclusiveAmount(req.Amount, req.RatePercent)})
}

// compoundTax godoc
// @Summary Total tax under cascading rates
// @Description Each rate applies to a running base that grows by the tax just added, in list order.
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.CompoundTaxRequest true "Inputs"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /finance/tax/compound [post]
func (h *financeHandler) compoundTax(c *gin.Context) {
	var req dto.CompoundTaxRequest
	if !bindJSON(c, "compoundTax", &req) {
		return
	}
	c.JSON(http.StatusOK, dto.ResultResponse{Result: h.financeService.CompoundTax(req.Amount, req.RatesPercent)})
}

// netPresentValue godoc
// @Summary Net present value of a cash flow series
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.CashFlowRequest true "Inputs"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /finance/npv [post]
func (h *financeHandler) netPresentValue(c *gin.Context) {
	var req dto.CashFlowRequest
	if !bindJSON(c, "netPresentValue", &req) {
		return
	}
	c.JSON(http.StatusOK, dto.ResultResponse{Result: h.financeService.NetPresentValue(req.InitialInvestment, req.CashFlows, req.RatePercent)})
}

// internalRateOfReturn godoc
// @Summary Internal rate of return of a cash flow series
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.CashFlowRequest true "Inputs (ratePercent is ignored)"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /finance/irr [post]
func (h *financeHandler) internalRateOfReturn(c *gin.Context) {
	var req dto.CashFlowRequest
	if !bindJSON(c, "internalRateOfReturn", &req) {
		return
	}
	c.JSON(http.StatusOK, dto.ResultResponse{Result: h.financeService.InternalRateOfReturn(req.InitialInvestment, req.CashFlows)})
}

// debtPlan godoc
// @Summary Debt repayment allocation under a chosen strategy
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.DebtPlanRequest true "Debts and payment budget"
// @Success 200 {object} dto.DebtPlanResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /finance/debt-plan [post]
func (h *financeHandler) debtPlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DebtPlanRequest
	if !bindJSON(c, "debtPlan", &req) {
		return
	}

	allocations, err := h.financeService.DebtPlan(req.Strategy, req.Debts, req.Payment)
	if err != nil {
		respondServiceError(c, logger, err, "debtPlan")
		return
	}
	c.JSON(http.StatusOK, dto.DebtPlanResponse{Strategy: req.Strategy, Allocations: allocations})
}

// convertCurrency godoc
// @Summary Convert an amount given a pre-sourced exchange rate
// @Tags finance
// @Accept json
// @Produce json
// @Param request body dto.ConvertCurrencyRequest true "Amount and rate"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /finance/convert [post]
func (h *financeHandler) convertCurrency(c *gin.Context) {
	var req dto.ConvertCurrencyRequest
	if !bindJSON(c, "convertCurrency", &req) {
		return
	}
	c.JSON(http.StatusOK, dto.ResultResponse{Result: h.financeService.ConvertCurrency(req.Amount, req.Rate)})
}
