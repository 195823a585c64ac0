package scanning

import (
	"log/slog"
	"regexp"

	"github.com/dlclark/regexp2"
	"github.com/shopspring/decimal"

	"github.com/zombor/receipt-parser/internal/money"
)

// ws is any whitespace including Unicode spaces. RE2's \s is ASCII only and
// receipts put non-breaking spaces next to labels.
const ws = `[\s\p{Zs}\x{0085}\x{2028}\x{2029}]`

var (
	dateTimePattern = regexp.MustCompile(`Время:` + ws + `*(\d{2}\.\d{2}\.\d{4})` + ws + `+(\d{2}:\d{2}:\d{2})`)
	bankCardPattern = regexp.MustCompile(`(?i)Банковская` + ws + `+карта`)
	cashPattern     = regexp.MustCompile(`(?i)Наличные`)
	totalPattern    = regexp.MustCompile(`(?i)ИТОГО:` + ws + `*\n` + ws + `*(` + money.Token + `)`)

	// RE2 has no lookaround, so the digit boundaries need regexp2
	pricePattern = regexp2.MustCompile(
		`(?<![0-9])(?:[0-9]{1,3}(?:[ \u00A0][0-9]{3})*|[0-9]+),[0-9]{2}(?![0-9])`,
		regexp2.None,
	)
)

// ExtractDateTime returns the "DD.MM.YYYY HH:MM:SS" printed after the time label.
// The digits are not checked against the calendar.
func ExtractDateTime(text string) (string, bool) {
	m := dateTimePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1] + " " + m[2], true
}

// ExtractPaymentMethod detects the payment method. A bank card wins over cash.
func ExtractPaymentMethod(text string) PaymentMethod {
	switch {
	case bankCardPattern.MatchString(text):
		return PaymentBankCard
	case cashPattern.MatchString(text):
		return PaymentCash
	default:
		return PaymentUnknown
	}
}

// ExtractTotal returns the amount printed on the line after the total label
func ExtractTotal(text string) (decimal.Decimal, bool) {
	m := totalPattern.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero, false
	}

	total, err := money.Normalize(m[1])
	if err != nil {
		slog.Debug("Skipping malformed total", "token", m[1], "error", err)
		return decimal.Zero, false
	}
	return total, true
}

// ExtractAllPrices returns every amount in the text, left to right.
// This includes unit prices, VAT lines and totals.
func ExtractAllPrices(text string) []decimal.Decimal {
	prices := []decimal.Decimal{}

	m, err := pricePattern.FindStringMatch(text)
	for ; m != nil && err == nil; m, err = pricePattern.FindNextMatch(m) {
		price, perr := money.Normalize(m.String())
		if perr != nil {
			slog.Debug("Skipping malformed price", "token", m.String(), "error", perr)
			continue
		}
		prices = append(prices, price)
	}
	if err != nil {
		slog.Warn("Price scan stopped early", "error", err)
	}

	return prices
}
