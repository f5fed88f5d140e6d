package finmath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finbooks/finbooks_backend/internal/utils/finmath"
)

func TestStraightLineDepreciation(t *testing.T) {
	assert.Equal(t, 1000.0, finmath.StraightLineDepreciation(10000, 1000, 9))
	assert.Equal(t, 0.0, finmath.StraightLineDepreciation(10000, 1000, 0))
}

func TestDecliningBalanceDepreciation(t *testing.T) {
	assert.Equal(t, 40.0, finmath.DecliningBalanceDepreciation(10000, 5, 2))

	// A non-positive rate defaults to the double-declining factor.
	assert.Equal(t, 40.0, finmath.DecliningBalanceDepreciation(10000, 5, 0))

	assert.Equal(t, 0.0, finmath.DecliningBalanceDepreciation(10000, 0, 2))
}

func TestUnitsOfProductionDepreciation(t *testing.T) {
	assert.Equal(t, 1500.0, finmath.UnitsOfProductionDepreciation(10000, 1000, 9000, 1500))
	assert.Equal(t, 0.0, finmath.UnitsOfProductionDepreciation(10000, 1000, 0, 1500))
}

func TestSumOfYearsDigitsDepreciation(t *testing.T) {
	// 5-year asset, 9000 depreciable base, digits sum 15.
	assert.Equal(t, 3000.0, finmath.SumOfYearsDigitsDepreciation(10000, 1000, 5, 1))
	assert.Equal(t, 600.0, finmath.SumOfYearsDigitsDepreciation(10000, 1000, 5, 5))
	assert.Equal(t, 0.0, finmath.SumOfYearsDigitsDepreciation(10000, 1000, 0, 1))
}
