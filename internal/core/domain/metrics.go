package domain

// FinancialMetricsSnapshot is the read-only aggregate shape produced by the
// external reporting backend. The ratio library consumes it as-is; this
// service never owns or mutates the underlying figures.
type FinancialMetricsSnapshot struct {
	TotalAssets        float64 `json:"totalAssets"`
	TotalLiabilities   float64 `json:"totalLiabilities"`
	TotalEquity        float64 `json:"totalEquity"`
	CurrentAssets      float64 `json:"currentAssets"`
	CurrentLiabilities float64 `json:"currentLiabilities"`
	Inventory          float64 `json:"inventory"`
	AverageInventory   float64 `json:"averageInventory"`
	TotalRevenue       float64 `json:"totalRevenue"`
	TotalExpenses      float64 `json:"totalExpenses"`
	GrossProfit        float64 `json:"grossProfit"`
	NetIncome          float64 `json:"netIncome"`
	CostOfGoodsSold    float64 `json:"costOfGoodsSold"`
}
