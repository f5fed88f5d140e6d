package finmath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finbooks/finbooks_backend/internal/utils/finmath"
)

func TestTaxArithmetic(t *testing.T) {
	assert.Equal(t, 180.0, finmath.TaxAmount(1000, 18))
	assert.Equal(t, 1180.0, finmath.TaxInclusiveAmount(1000, 18))
	assert.Equal(t, 1000.0, finmath.TaxExclusiveAmount(1180, 18))
}

func TestCompoundTax(t *testing.T) {
	// 10% on 100 is 10; 5% then applies to 110, adding 5.50.
	assert.Equal(t, 15.5, finmath.CompoundTax(100, []float64{10, 5}))

	// A single rate matches the plain tax amount.
	assert.Equal(t, finmath.TaxAmount(100, 10), finmath.CompoundTax(100, []float64{10}))

	assert.Equal(t, 0.0, finmath.CompoundTax(100, nil))
}

func TestCurrencyConversion(t *testing.T) {
	assert.Equal(t, 92.34, finmath.ConvertCurrency(100, 0.9234))
	assert.Equal(t, 1.25, finmath.InverseRate(0.8))
	assert.Equal(t, 0.0, finmath.InverseRate(0))
	assert.Equal(t, 1.5, finmath.CrossRate(0.8, 1.2))
	assert.Equal(t, 0.0, finmath.CrossRate(0, 1.2))
}
