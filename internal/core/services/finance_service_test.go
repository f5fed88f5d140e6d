package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/core/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/utils/finmath"
)

func TestDepreciationDispatch(t *testing.T) {
	svc := services.NewFinanceService()

	tests := []struct {
		name string
		req  dto.DepreciationRequest
		want float64
	}{
		{
			name: "straight line",
			req:  dto.DepreciationRequest{Method: dto.DepreciationStraightLine, Cost: 10000, Salvage: 1000, UsefulLife: 9},
			want: 1000,
		},
		{
			name: "declining balance",
			req:  dto.DepreciationRequest{Method: dto.DepreciationDecliningBalance, Cost: 10000, UsefulLife: 5, Rate: 2},
			want: 40,
		},
		{
			name: "units of production",
			req:  dto.DepreciationRequest{Method: dto.DepreciationUnitsOfProduction, Cost: 10000, Salvage: 1000, TotalUnits: 9000, UnitsThisPeriod: 1500},
			want: 1500,
		},
		{
			name: "sum of years digits clamps year to 1",
			req:  dto.DepreciationRequest{Method: dto.DepreciationSumOfYearsDigits, Cost: 10000, Salvage: 1000, UsefulLife: 5, Year: 0},
			want: 3000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Depreciation(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDepreciationUnknownMethod(t *testing.T) {
	svc := services.NewFinanceService()

	_, err := svc.Depreciation(dto.DepreciationRequest{Method: "MACRS"})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRatioReport(t *testing.T) {
	svc := services.NewFinanceService()

	report := svc.RatioReport(domain.FinancialMetricsSnapshot{
		TotalAssets:        250,
		TotalLiabilities:   150,
		TotalEquity:        100,
		CurrentAssets:      200,
		CurrentLiabilities: 100,
		Inventory:          50,
		AverageInventory:   30,
		TotalRevenue:       200,
		GrossProfit:        80,
		NetIncome:          25,
		CostOfGoodsSold:    120,
	})

	assert.Equal(t, 2.0, report.CurrentRatio)
	assert.Equal(t, 1.5, report.QuickRatio)
	assert.Equal(t, 1.5, report.DebtToEquityRatio)
	assert.Equal(t, 0.6, report.DebtRatio)
	assert.Equal(t, 0.4, report.EquityRatio)
	assert.Equal(t, 40.0, report.GrossProfitMargin)
	assert.Equal(t, 12.5, report.NetProfitMargin)
	assert.Equal(t, 10.0, report.ReturnOnAssets)
	assert.Equal(t, 25.0, report.ReturnOnEquity)
	assert.Equal(t, 0.8, report.AssetTurnover)
	assert.Equal(t, 4.0, report.InventoryTurnover)
}

func TestRatioReportEmptySnapshot(t *testing.T) {
	svc := services.NewFinanceService()

	report := svc.RatioReport(domain.FinancialMetricsSnapshot{})

	// An empty ledger renders all zeros, never NaN.
	assert.Equal(t, dto.RatioReportResponse{}, report)
}

func TestDebtPlanDispatch(t *testing.T) {
	svc := services.NewFinanceService()
	debts := []finmath.Debt{
		{Name: "a", Balance: 100, InterestRatePercent: 5},
		{Name: "b", Balance: 50, InterestRatePercent: 20},
	}

	snowball, err := svc.DebtPlan(dto.DebtStrategySnowball, debts, 60)
	require.NoError(t, err)
	require.NotEmpty(t, snowball)
	assert.Equal(t, "b", snowball[0].Name)

	avalanche, err := svc.DebtPlan(dto.DebtStrategyAvalanche, debts, 60)
	require.NoError(t, err)
	require.NotEmpty(t, avalanche)
	assert.Equal(t, "b", avalanche[0].Name)

	_, err = svc.DebtPlan("HYBRID", debts, 60)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
