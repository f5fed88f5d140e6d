package accounting

import (
	"fmt"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineAmounts holds the four derived amounts for a single document line.
type LineAmounts struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// DocumentTotals holds the document-level aggregation of all line amounts.
type DocumentTotals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	Total          decimal.Decimal `json:"total"`
}

var oneHundred = decimal.NewFromInt(100)

// computeLineRaw derives the unrounded amounts for one line. The discount is
// applied before tax: tax is charged on the discounted base, not the gross
// subtotal. Changing that order changes the total and is a defect.
func computeLineRaw(quantity, unitPrice, taxRatePercent, discountRatePercent decimal.Decimal) LineAmounts {
	subtotal := quantity.Mul(unitPrice)
	discount := subtotal.Mul(discountRatePercent).Div(oneHundred)
	taxBase := subtotal.Sub(discount)
	tax := taxBase.Mul(taxRatePercent).Div(oneHundred)
	return LineAmounts{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    subtotal.Sub(discount).Add(tax),
	}
}

// ComputeLine converts a single line's inputs into its four derived amounts,
// rounded half-up to 2 places at the output boundary. Range validation is a
// caller concern; a negative quantity simply yields a negative subtotal.
func ComputeLine(quantity, unitPrice, taxRatePercent, discountRatePercent decimal.Decimal) LineAmounts {
	raw := computeLineRaw(quantity, unitPrice, taxRatePercent, discountRatePercent)
	return LineAmounts{
		Subtotal: raw.Subtotal.Round(2),
		Discount: raw.Discount.Round(2),
		Tax:      raw.Tax.Round(2),
		Total:    raw.Total.Round(2),
	}
}

// ComputeDocumentTotals re-derives every line and sums the unrounded
// components, rounding once at the end. Summing already-rounded line totals
// would compound rounding differently; this convention is applied uniformly
// to invoices and bills so totals are reproducible.
func ComputeDocumentTotals(lines []domain.LineItem) DocumentTotals {
	subtotal := decimal.Zero
	tax := decimal.Zero
	discount := decimal.Zero

	for _, line := range lines {
		raw := computeLineRaw(line.Quantity, line.UnitPrice, line.TaxRatePercent, line.DiscountRatePercent)
		subtotal = subtotal.Add(raw.Subtotal)
		tax = tax.Add(raw.Tax)
		discount = discount.Add(raw.Discount)
	}

	return DocumentTotals{
		Subtotal:       subtotal.Round(2),
		TaxAmount:      tax.Round(2),
		DiscountAmount: discount.Round(2),
		Total:          subtotal.Add(tax).Sub(discount).Round(2),
	}
}

// ApplyLineAmounts returns a copy of the lines with each line's derived
// amounts replaced by freshly computed values. The input slice is not mutated.
func ApplyLineAmounts(lines []domain.LineItem) []domain.LineItem {
	out := make([]domain.LineItem, len(lines))
	for i, line := range lines {
		amounts := ComputeLine(line.Quantity, line.UnitPrice, line.TaxRatePercent, line.DiscountRatePercent)
		line.Subtotal = amounts.Subtotal
		line.Discount = amounts.Discount
		line.Tax = amounts.Tax
		line.Total = amounts.Total
		out[i] = line
	}
	return out
}

// ValidateDocumentForSubmit gates submission of a document draft. It returns
// every violation at once so the form layer can surface all of them; line
// references are 1-based to match what the user sees.
func ValidateDocumentForSubmit(doc domain.Document) []string {
	var violations []string

	if len(doc.Lines) == 0 {
		violations = append(violations, "document must have at least one line item")
		return violations
	}

	for i, line := range doc.Lines {
		if line.Description == "" {
			violations = append(violations, fmt.Sprintf("line %d: description is required", i+1))
		}
		if line.Quantity.LessThanOrEqual(decimal.Zero) {
			violations = append(violations, fmt.Sprintf("line %d: quantity must be greater than zero", i+1))
		}
		if line.UnitPrice.IsNegative() {
			violations = append(violations, fmt.Sprintf("line %d: unitPrice must not be negative", i+1))
		}
	}

	return violations
}

// DecimalOrZero coerces a numeric form field to a decimal, treating blank or
// unparseable input as zero. Incomplete form state is expected, not an error.
func DecimalOrZero(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
