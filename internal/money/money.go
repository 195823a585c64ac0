package money

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Token matches a printed amount: digits optionally grouped by a space or a
// non-breaking space, a decimal comma and exactly two fractional digits.
// It is meant to be embedded in larger patterns.
const Token = `[0-9 \x{00A0}]+,[0-9]{2}`

// ErrMalformed is returned when a money-like token does not normalize to a decimal
var ErrMalformed = errors.New("malformed money token")

var (
	cleaner = strings.NewReplacer(" ", "", "\u00a0", "", ",", ".")
	literal = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

	cent = decimal.New(1, -2)
)

// Normalize converts a printed amount such as "1 234,56" into a decimal.
// Group separators are dropped and the decimal comma becomes a point.
func Normalize(raw string) (decimal.Decimal, error) {
	cleaned := cleaner.Replace(raw)
	if !literal.MatchString(cleaned) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformed, raw)
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q: %v", ErrMalformed, raw, err)
	}
	return d, nil
}

// Format renders an amount with exactly two fractional digits
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Sum adds amounts and rounds the result to cents.
// Rounding is half away from zero, which for receipt amounts is round-half-up.
func Sum(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total.Round(2)
}

// WithinCent reports whether two amounts differ by less than one cent
func WithinCent(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(cent)
}
