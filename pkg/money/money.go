// Package money keeps monetary amounts as integer minor units (paise, cents)
// and does rate math in fixed-point decimals.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MinorPerMajor is the number of minor units in one major unit.
const MinorPerMajor = 100

var hundred = decimal.NewFromInt(100)

// Percent returns rate% of amount, rounded half away from zero to a minor unit.
func Percent(amount int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(rate).Div(hundred).Round(0).IntPart()
}

// FromMajor converts a major-unit decimal (e.g. 249.50) to minor units.
func FromMajor(d decimal.Decimal) int64 {
	return d.Mul(decimal.NewFromInt(MinorPerMajor)).Round(0).IntPart()
}

// Parse reads a major-unit string such as "249" or "249.5".
func Parse(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return FromMajor(d), nil
}

// Major returns the amount in major units.
func Major(amount int64) decimal.Decimal {
	return decimal.New(amount, -2)
}

// Format renders the amount with two fraction digits, without a symbol.
func Format(amount int64) string {
	return Major(amount).StringFixed(2)
}

// Display renders the amount prefixed by a currency symbol.
func Display(symbol string, amount int64) string {
	if amount < 0 {
		return "-" + symbol + Format(-amount)
	}
	return symbol + Format(amount)
}
