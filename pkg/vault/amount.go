package vault

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultDecimals is used by ParseAmount and FormatAmount when no decimals are given.
const DefaultDecimals = 18

var hundred = decimal.NewFromInt(100)

// FractionToPercent converts an upstream yield fraction (0.0523) to a percentage (5.23).
func FractionToPercent(f float64) float64 {
	return decimal.NewFromFloat(f).Mul(hundred).InexactFloat64()
}

// PercentToFraction converts a percentage (5.23) back to an upstream yield fraction (0.0523).
func PercentToFraction(p float64) float64 {
	return decimal.NewFromFloat(p).Div(hundred).InexactFloat64()
}

// ParseAmount scales a human readable amount ("1.5") to raw token units ("1500000"
// for 6 decimals). Fractional digits beyond decimals are rejected.
func ParseAmount(amount string, decimals int) (string, error) {
	if decimals < 0 {
		decimals = DefaultDecimals
	}
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return "", fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if d.IsNegative() {
		return "", fmt.Errorf("invalid amount %q: must not be negative", amount)
	}
	raw := d.Shift(int32(decimals))
	if !raw.Equal(raw.Truncate(0)) {
		return "", fmt.Errorf("invalid amount %q: more than %d fractional digits", amount, decimals)
	}
	return raw.String(), nil
}

// FormatAmount converts raw token units to a human readable amount.
func FormatAmount(raw string, decimals int) (string, error) {
	if decimals < 0 {
		decimals = DefaultDecimals
	}
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("invalid raw amount %q: %w", raw, err)
	}
	return d.Shift(-int32(decimals)).String(), nil
}
