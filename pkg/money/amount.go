// Package money parses and formats monetary amounts with two-decimal
// precision on top of shopspring/decimal.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of decimal places every stored amount keeps.
const Scale = 2

// Parse reads an amount written with either a dot or a comma as decimal
// separator ("12.50", "12,50"). Thousands separators are not accepted.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// Round rounds half away from zero to Scale decimal places.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// Format renders d with exactly two decimals, e.g. "1234.50".
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}

// FormatFloat renders f with exactly two decimals.
func FormatFloat(f float64) string {
	return decimal.NewFromFloat(f).StringFixed(Scale)
}

// Percent returns part/total*100 rounded to two decimals, or zero when the
// total is zero.
func Percent(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(decimal.NewFromInt(100)).Round(Scale)
}

// InRange reports whether min < d <= max.
func InRange(d, minExclusive, maxInclusive decimal.Decimal) bool {
	return d.GreaterThan(minExclusive) && d.LessThanOrEqual(maxInclusive)
}
