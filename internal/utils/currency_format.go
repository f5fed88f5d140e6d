package utils

import (
	"github.com/shopspring/decimal"
)

// zeroDecimalCurrencies are currencies conventionally displayed without a
// fractional part. Everything else uses 2 decimal places.
var zeroDecimalCurrencies = map[string]struct{}{
	"JPY": {},
	"KRW": {},
	"HUF": {},
}

// CurrencyPrecision returns the display precision for a currency code.
func CurrencyPrecision(currencyCode string) int {
	if _, ok := zeroDecimalCurrencies[currencyCode]; ok {
		return 0
	}
	return 2
}

// FormatCurrency formats an amount with the fixed precision for its currency.
// Example: 12.345 with USD returns "12.35"; 12.345 with JPY returns "12".
func FormatCurrency(amount decimal.Decimal, currencyCode string) string {
	return amount.Round(int32(CurrencyPrecision(currencyCode))).StringFixed(int32(CurrencyPrecision(currencyCode)))
}

// FormatWithPrecision formats an amount with an explicit precision.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).StringFixed(int32(precision))
}

// FormatPercentage renders a rate with 2 decimal places and a percent sign.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Round(2).StringFixed(2) + "%"
}
