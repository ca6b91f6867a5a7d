package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts raw user input into a normalized monetary amount.
// Either '.' or ',' is accepted as the fractional separator, but at most one
// separator may appear. The result is always positive with at most two
// decimal places; anything else is ErrInvalidAmount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Decimal{}, ErrInvalidAmount
	}

	if strings.Count(trimmed, ".")+strings.Count(trimmed, ",") > 1 {
		return decimal.Decimal{}, ErrInvalidAmount
	}

	normalized := strings.ReplaceAll(trimmed, ",", ".")
	for _, ch := range normalized {
		if (ch < '0' || ch > '9') && ch != '.' {
			return decimal.Decimal{}, ErrInvalidAmount
		}
	}

	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	if value.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	if value.Exponent() < -2 {
		return decimal.Decimal{}, ErrInvalidAmount
	}

	return value.Round(2), nil
}

func isPositiveAmount(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}
