package utils

import (
	"github.com/shopspring/decimal"
)

// FormatAmount formats a monetary amount for display with the configured
// currency symbol, e.g. "G 1500.00".
func FormatAmount(amount decimal.Decimal, symbol string) string {
	if symbol == "" {
		return amount.StringFixed(2)
	}
	return symbol + " " + amount.StringFixed(2)
}
