package scanning

import "github.com/shopspring/decimal"

// PaymentMethod is how a receipt was paid
type PaymentMethod string

const (
	PaymentBankCard PaymentMethod = "BANK_CARD"
	PaymentCash     PaymentMethod = "CASH"
	PaymentUnknown  PaymentMethod = "UNKNOWN"
)

// LineItem is one purchased product on a receipt
type LineItem struct {
	Name      string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// ItemScanner defines the interface for extracting line items from receipt text.
// Each implementation understands one vendor layout.
type ItemScanner interface {
	// ScanItems returns the line items in the order they appear in text
	ScanItems(text string) []LineItem
}
