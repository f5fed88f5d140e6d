package finmath

// Accounting ratios. Every denominator-is-zero case returns 0 rather than
// failing; the reporting UI renders these values unconditionally.

// CurrentRatio returns currentAssets / currentLiabilities.
func CurrentRatio(currentAssets, currentLiabilities float64) float64 {
	return round2(safeDivide(currentAssets, currentLiabilities))
}

// QuickRatio returns (currentAssets − inventory) / currentLiabilities.
func QuickRatio(currentAssets, inventory, currentLiabilities float64) float64 {
	return round2(safeDivide(currentAssets-inventory, currentLiabilities))
}

// DebtToEquityRatio returns totalLiabilities / totalEquity.
func DebtToEquityRatio(totalLiabilities, totalEquity float64) float64 {
	return round2(safeDivide(totalLiabilities, totalEquity))
}

// DebtRatio returns totalLiabilities / totalAssets.
func DebtRatio(totalLiabilities, totalAssets float64) float64 {
	return round2(safeDivide(totalLiabilities, totalAssets))
}

// EquityRatio returns totalEquity / totalAssets.
func EquityRatio(totalEquity, totalAssets float64) float64 {
	return round2(safeDivide(totalEquity, totalAssets))
}

// GrossProfitMargin returns grossProfit / revenue as a percentage.
func GrossProfitMargin(grossProfit, revenue float64) float64 {
	return round2(safeDivide(grossProfit, revenue) * 100)
}

// NetProfitMargin returns netIncome / revenue as a percentage.
func NetProfitMargin(netIncome, revenue float64) float64 {
	return round2(safeDivide(netIncome, revenue) * 100)
}

// ReturnOnAssets returns netIncome / totalAssets as a percentage.
func ReturnOnAssets(netIncome, totalAssets float64) float64 {
	return round2(safeDivide(netIncome, totalAssets) * 100)
}

// ReturnOnEquity returns netIncome / totalEquity as a percentage.
func ReturnOnEquity(netIncome, totalEquity float64) float64 {
	return round2(safeDivide(netIncome, totalEquity) * 100)
}

// AssetTurnover returns revenue / totalAssets.
func AssetTurnover(revenue, totalAssets float64) float64 {
	return round2(safeDivide(revenue, totalAssets))
}

// InventoryTurnover returns costOfGoodsSold / averageInventory.
func InventoryTurnover(costOfGoodsSold, averageInventory float64) float64 {
	return round2(safeDivide(costOfGoodsSold, averageInventory))
}
