package handlers

import (
	"log/slog"
	"net/http"

	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
	"github.com/finbooks/finbooks_backend/internal/utils/accounting"
	"github.com/gin-gonic/gin"
)

// calcHandler exposes the stateless line and document calculators. These
// endpoints hold no state; the UI calls them on every relevant keystroke.
type calcHandler struct{}

// registerCalcRoutes registers the stateless calculator routes.
func registerCalcRoutes(group *gin.RouterGroup) {
	h := &calcHandler{}
	calc := group.Group("/calc")
	calc.POST("/line", h.computeLine)
	calc.POST("/document-totals", h.computeDocumentTotals)
}

// computeLine godoc
// @Summary Compute the derived amounts of one document line
// @Description Derives subtotal, discount, tax and total for a single line. Blank or unparseable numeric fields are treated as zero.
// @Tags calc
// @Accept json
// @Produce json
// @Param line body dto.ComputeLineRequest true "Line inputs"
// @Success 200 {object} accounting.LineAmounts
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /calc/line [post]
func (h *calcHandler) computeLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ComputeLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for computeLine", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	amounts := accounting.ComputeLine(
		accounting.DecimalOrZero(req.Quantity),
		accounting.DecimalOrZero(req.UnitPrice),
		accounting.DecimalOrZero(req.TaxRatePercent),
		accounting.DecimalOrZero(req.DiscountRatePercent),
	)
	c.JSON(http.StatusOK, amounts)
}

// computeDocumentTotals godoc
// @Summary Compute document totals from a line list
// @Description Recomputes every line and aggregates subtotal, tax, discount and total for the document.
// @Tags calc
// @Accept json
// @Produce json
// @Param lines body dto.ComputeDocumentTotalsRequest true "Line list"
// @Success 200 {object} dto.ComputeDocumentTotalsResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /calc/document-totals [post]
func (h *calcHandler) computeDocumentTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ComputeDocumentTotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for computeDocumentTotals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	lines := accounting.ApplyLineAmounts(dto.ToDomainLines(req.Lines))
	totals := accounting.ComputeDocumentTotals(lines)

	resp := dto.ComputeDocumentTotalsResponse{
		Lines:  make([]dto.LineItemResponse, len(lines)),
		Totals: totals,
	}
	for i, line := range lines {
		resp.Lines[i] = dto.LineItemResponse{
			Description:         line.Description,
			Quantity:            line.Quantity,
			UnitPrice:           line.UnitPrice,
			TaxRatePercent:      line.TaxRatePercent,
			DiscountRatePercent: line.DiscountRatePercent,
			LinkedCatalogItemID: line.LinkedCatalogItemID,
			Subtotal:            line.Subtotal,
			Discount:            line.Discount,
			Tax:                 line.Tax,
			Total:               line.Total,
		}
	}
	c.JSON(http.StatusOK, resp)
}
