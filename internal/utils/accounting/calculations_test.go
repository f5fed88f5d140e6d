package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/utils/accounting"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeLine(t *testing.T) {
	tests := []struct {
		name         string
		quantity     string
		unitPrice    string
		taxRate      string
		discountRate string
		wantSubtotal string
		wantDiscount string
		wantTax      string
		wantTotal    string
	}{
		{
			name:     "discount applied before tax",
			quantity: "10", unitPrice: "100", taxRate: "10", discountRate: "10",
			wantSubtotal: "1000", wantDiscount: "100", wantTax: "90", wantTotal: "990",
		},
		{
			name:     "no tax no discount",
			quantity: "2", unitPrice: "50", taxRate: "0", discountRate: "0",
			wantSubtotal: "100", wantDiscount: "0", wantTax: "0", wantTotal: "100",
		},
		{
			name:     "tax only",
			quantity: "1", unitPrice: "30", taxRate: "10", discountRate: "0",
			wantSubtotal: "30", wantDiscount: "0", wantTax: "3", wantTotal: "33",
		},
		{
			name:     "fractional quantity rounds at output",
			quantity: "0.333", unitPrice: "9.99", taxRate: "0", discountRate: "0",
			wantSubtotal: "3.33", wantDiscount: "0", wantTax: "0", wantTotal: "3.33",
		},
		{
			name:     "half rounds up",
			quantity: "1", unitPrice: "0.125", taxRate: "0", discountRate: "0",
			wantSubtotal: "0.13", wantDiscount: "0", wantTax: "0", wantTotal: "0.13",
		},
		{
			name:     "negative quantity passes through",
			quantity: "-1", unitPrice: "100", taxRate: "10", discountRate: "0",
			wantSubtotal: "-100", wantDiscount: "0", wantTax: "-10", wantTotal: "-110",
		},
		{
			name:     "full discount leaves nothing to tax",
			quantity: "3", unitPrice: "40", taxRate: "20", discountRate: "100",
			wantSubtotal: "120", wantDiscount: "120", wantTax: "0", wantTotal: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.ComputeLine(d(tt.quantity), d(tt.unitPrice), d(tt.taxRate), d(tt.discountRate))
			assert.True(t, got.Subtotal.Equal(d(tt.wantSubtotal)), "subtotal: got %s", got.Subtotal)
			assert.True(t, got.Discount.Equal(d(tt.wantDiscount)), "discount: got %s", got.Discount)
			assert.True(t, got.Tax.Equal(d(tt.wantTax)), "tax: got %s", got.Tax)
			assert.True(t, got.Total.Equal(d(tt.wantTotal)), "total: got %s", got.Total)
		})
	}
}

func TestComputeDocumentTotals(t *testing.T) {
	lines := []domain.LineItem{
		{Quantity: d("2"), UnitPrice: d("50"), TaxRatePercent: d("0"), DiscountRatePercent: d("0")},
		{Quantity: d("1"), UnitPrice: d("30"), TaxRatePercent: d("10"), DiscountRatePercent: d("0")},
	}

	totals := accounting.ComputeDocumentTotals(lines)

	assert.True(t, totals.Subtotal.Equal(d("130")), "subtotal: got %s", totals.Subtotal)
	assert.True(t, totals.TaxAmount.Equal(d("3")), "tax: got %s", totals.TaxAmount)
	assert.True(t, totals.DiscountAmount.Equal(d("0")), "discount: got %s", totals.DiscountAmount)
	assert.True(t, totals.Total.Equal(d("133")), "total: got %s", totals.Total)
}

func TestComputeDocumentTotalsEmpty(t *testing.T) {
	totals := accounting.ComputeDocumentTotals(nil)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.DiscountAmount.IsZero())
	assert.True(t, totals.Total.IsZero())
}

// Totals are summed from unrounded line components and rounded once at the
// end, so they can legitimately differ from the sum of the rounded lines.
func TestComputeDocumentTotalsRoundsOnce(t *testing.T) {
	lines := []domain.LineItem{
		{Quantity: d("1"), UnitPrice: d("0.004"), TaxRatePercent: d("0"), DiscountRatePercent: d("0")},
		{Quantity: d("1"), UnitPrice: d("0.004"), TaxRatePercent: d("0"), DiscountRatePercent: d("0")},
	}

	totals := accounting.ComputeDocumentTotals(lines)

	// Each line rounds to 0.00 on its own, but the aggregate 0.008 rounds to 0.01.
	perLine := accounting.ComputeLine(d("1"), d("0.004"), d("0"), d("0"))
	assert.True(t, perLine.Subtotal.IsZero())
	assert.True(t, totals.Subtotal.Equal(d("0.01")), "subtotal: got %s", totals.Subtotal)
}

func TestApplyLineAmountsIsIdempotent(t *testing.T) {
	lines := []domain.LineItem{
		{Description: "widgets", Quantity: d("10"), UnitPrice: d("99.99"), TaxRatePercent: d("8.25"), DiscountRatePercent: d("5")},
		{Description: "freight", Quantity: d("1"), UnitPrice: d("45"), TaxRatePercent: d("0"), DiscountRatePercent: d("0")},
	}

	once := accounting.ApplyLineAmounts(lines)
	twice := accounting.ApplyLineAmounts(once)

	require.Len(t, twice, len(once))
	for i := range once {
		assert.True(t, once[i].Subtotal.Equal(twice[i].Subtotal))
		assert.True(t, once[i].Discount.Equal(twice[i].Discount))
		assert.True(t, once[i].Tax.Equal(twice[i].Tax))
		assert.True(t, once[i].Total.Equal(twice[i].Total))
	}

	// Input lines are untouched.
	assert.True(t, lines[0].Subtotal.IsZero())
}

func TestValidateDocumentForSubmit(t *testing.T) {
	valid := domain.Document{Lines: []domain.LineItem{
		{Description: "consulting", Quantity: d("1"), UnitPrice: d("500")},
	}}
	assert.Empty(t, accounting.ValidateDocumentForSubmit(valid))

	empty := domain.Document{}
	assert.Equal(t, []string{"document must have at least one line item"}, accounting.ValidateDocumentForSubmit(empty))

	bad := domain.Document{Lines: []domain.LineItem{
		{Description: "ok", Quantity: d("1"), UnitPrice: d("10")},
		{Description: "", Quantity: d("0"), UnitPrice: d("-5")},
	}}
	violations := accounting.ValidateDocumentForSubmit(bad)
	require.Len(t, violations, 3)
	assert.Contains(t, violations, "line 2: description is required")
	assert.Contains(t, violations, "line 2: quantity must be greater than zero")
	assert.Contains(t, violations, "line 2: unitPrice must not be negative")
}

func TestDecimalOrZero(t *testing.T) {
	assert.True(t, accounting.DecimalOrZero("").IsZero())
	assert.True(t, accounting.DecimalOrZero("abc").IsZero())
	assert.True(t, accounting.DecimalOrZero("12.5").Equal(d("12.5")))
	assert.True(t, accounting.DecimalOrZero("-3").Equal(d("-3")))
}
