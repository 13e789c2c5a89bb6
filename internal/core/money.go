// Package core provides the ledger record model, its one-line codec and
// money parsing and formatting helpers.
package core

import (
	"errors"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount parses a decimal amount such as "450", "450.0" or "-12.5".
// Surrounding whitespace is ignored, so " 450" parses as 450.
//
// Unlike user-facing parsers it performs no range checks: whatever parses
// is accepted, negative values included.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// ParseUserAmount is the lenient variant used for interactive input: a
// decimal comma is accepted.
func ParseUserAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	return ParseAmount(s)
}

// KnownCurrency reports whether go-money has a definition for code.
func KnownCurrency(code string) bool {
	return money.GetCurrency(strings.ToUpper(code)) != nil
}

// FormatAmount renders an amount in the given currency for display,
// rounded to the currency's minor unit, e.g. "₹50,000.00". Amounts of any
// size are rendered; there is no int64 limit.
func FormatAmount(d decimal.Decimal, code string) string {
	cur := money.GetCurrency(strings.ToUpper(code))
	if cur == nil {
		return d.StringFixed(2)
	}
	f := cur.Formatter()
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	if minor.Abs().BigInt().IsInt64() {
		return f.Format(minor.IntPart())
	}
	return formatMinorDigits(f, minor.Abs().BigInt().String(), minor.IsNegative())
}

// formatMinorDigits applies f to a minor-unit digit string too large for
// Formatter.Format.
func formatMinorDigits(f *money.Formatter, digits string, negative bool) string {
	if len(digits) <= f.Fraction {
		digits = strings.Repeat("0", f.Fraction-len(digits)+1) + digits
	}
	if f.Thousand != "" {
		for i := len(digits) - f.Fraction - 3; i > 0; i -= 3 {
			digits = digits[:i] + f.Thousand + digits[i:]
		}
	}
	if f.Fraction > 0 {
		digits = digits[:len(digits)-f.Fraction] + f.Decimal + digits[len(digits)-f.Fraction:]
	}
	out := strings.Replace(f.Template, "1", digits, 1)
	out = strings.Replace(out, "$", f.Grapheme, 1)
	if negative {
		out = "-" + out
	}
	return out
}
