package receipt

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/zombor/receipt-parser/internal/money"
	"github.com/zombor/receipt-parser/internal/scanning"
)

// Service handles receipt parsing
type Service struct {
	source  Source
	scanner scanning.ItemScanner
}

// NewService creates a new Service that reads from source and understands
// the four line item layout
func NewService(source Source) *Service {
	return &Service{
		source:  source,
		scanner: scanning.NewBlockScanner(),
	}
}

// NewServiceWithDeps creates a new Service with a custom item layout
func NewServiceWithDeps(source Source, scanner scanning.ItemScanner) *Service {
	return &Service{
		source:  source,
		scanner: scanner,
	}
}

// Parse extracts every field from text. Fields that cannot be found are left
// empty; parsing itself never fails.
func (s *Service) Parse(text string) *Receipt {
	items := s.scanner.ScanItems(text)

	lineTotals := make([]decimal.Decimal, 0, len(items))
	for _, item := range items {
		lineTotals = append(lineTotals, item.LineTotal)
	}

	r := &Receipt{
		PaymentMethod: scanning.ExtractPaymentMethod(text),
		Items:         items,
		TotalComputed: money.Sum(lineTotals),
		AllPrices:     scanning.ExtractAllPrices(text),
	}

	if dateTime, ok := scanning.ExtractDateTime(text); ok {
		r.DateTime = &dateTime
	}

	if total, ok := scanning.ExtractTotal(text); ok {
		r.TotalFromReceipt = decimal.NewNullDecimal(total)
	}

	return r
}

// ProcessReceipt reads the named receipt from the source and parses it
func (s *Service) ProcessReceipt(name string) (*Receipt, error) {
	data, err := s.source.Get(name)
	if err != nil {
		return nil, fmt.Errorf("reading receipt: %w", err)
	}

	r := s.Parse(scanning.DecodeText(data))

	slog.Info("Parsed receipt",
		"name", name,
		"items", len(r.Items),
		"prices", len(r.AllPrices),
		"payment_method", r.PaymentMethod,
	)

	return r, nil
}
