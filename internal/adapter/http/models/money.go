package models

import "github.com/shopspring/decimal"

// FormatBRL renders a monetary amount the way statements print it, e.g.
// "R$ 123.45". Formatting is a presentation concern; the core only ever
// sees decimals.
func FormatBRL(amount decimal.Decimal) string {
	return "R$ " + amount.StringFixed(2)
}
