// Package money provides the numeric coercion, rounding, and currency
// formatting helpers shared by the valuation engine and the ledger.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ToDecimal converts a user-entered value to a decimal amount.
// Blank or non-numeric input is coerced to zero, never rejected: an empty
// form field behaves as "no value".
func ToDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Round2 rounds an amount to 2 decimal places for display. Internal
// arithmetic is never pre-rounded; call this only at formatting boundaries.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Format renders an amount as "<symbol> <grouped amount>" with exactly two
// decimal places and comma thousands separators, e.g. "₹ 55,112.40".
func Format(symbol string, amount decimal.Decimal) string {
	return symbol + " " + Group(amount)
}

// Group renders an amount with two decimal places and comma thousands
// separators, without a currency symbol.
func Group(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}
