package receipt

import (
	"github.com/shopspring/decimal"

	"github.com/zombor/receipt-parser/internal/money"
)

// TotalCheck is the outcome of comparing the printed total with the items
type TotalCheck int

const (
	// TotalUnchecked means the receipt has no printed total
	TotalUnchecked TotalCheck = iota
	TotalMatch
	TotalMismatch
)

func (c TotalCheck) String() string {
	switch c {
	case TotalMatch:
		return "OK ✅"
	case TotalMismatch:
		return "NOT MATCH ❌"
	default:
		return "no total to check against"
	}
}

// CompareTotals reports whether the printed and computed totals agree to
// within one cent
func CompareTotals(printed, computed decimal.Decimal) bool {
	return money.WithinCent(printed, computed)
}

// CheckTotal compares the printed total of r with the sum of its items
func CheckTotal(r *Receipt) TotalCheck {
	if !r.TotalFromReceipt.Valid {
		return TotalUnchecked
	}
	if CompareTotals(r.TotalFromReceipt.Decimal, r.TotalComputed) {
		return TotalMatch
	}
	return TotalMismatch
}
