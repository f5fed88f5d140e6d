package dto

import (
	"github.com/finbooks/finbooks_backend/internal/utils/accounting"
)

// ComputeLineRequest carries the four inputs of the line-item calculator.
// Values arrive as strings; blank or unparseable input coerces to zero.
type ComputeLineRequest struct {
	Quantity            string `json:"quantity"`
	UnitPrice           string `json:"unitPrice"`
	TaxRatePercent      string `json:"taxRatePercent"`
	DiscountRatePercent string `json:"discountRatePercent"`
}

// ComputeDocumentTotalsRequest carries the line list to aggregate.
type ComputeDocumentTotalsRequest struct {
	Lines []LineItemInput `json:"lines" binding:"required"`
}

// ComputeDocumentTotalsResponse returns the recomputed lines alongside the
// document-level totals.
type ComputeDocumentTotalsResponse struct {
	Lines  []LineItemResponse        `json:"lines"`
	Totals accounting.DocumentTotals `json:"totals"`
}
