package scanning

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zombor/receipt-parser/internal/money"
)

// blockPattern matches one item in the EUROPHARMA layout:
//
//	1.
//	Product name
//	2,000 x 154,00
//	308,00
var blockPattern = regexp.MustCompile(
	`(?m)^(?P<idx>\d+)\.` + ws + `*\n` +
		`(?P<name>.+?)\n` +
		`(?P<qty>\d+,\d+)` + ws + `*[xх×]` + ws + `*(?P<unit>` + money.Token + `)\n` +
		`(?P<total>` + money.Token + `)`,
)

var (
	nameGroup  = blockPattern.SubexpIndex("name")
	qtyGroup   = blockPattern.SubexpIndex("qty")
	unitGroup  = blockPattern.SubexpIndex("unit")
	totalGroup = blockPattern.SubexpIndex("total")
)

// BlockScanner implements ItemScanner for receipts that print every item as a
// four line block: index, name, quantity times unit price, line total.
// Blocks of any other shape are ignored.
type BlockScanner struct{}

// NewBlockScanner creates a new BlockScanner
func NewBlockScanner() *BlockScanner {
	return &BlockScanner{}
}

// ScanItems finds all non-overlapping item blocks in document order
func (b *BlockScanner) ScanItems(text string) []LineItem {
	items := []LineItem{}
	for _, m := range blockPattern.FindAllStringSubmatch(text, -1) {
		item, err := blockItem(m)
		if err != nil {
			slog.Debug("Skipping item block", "block", m[0], "error", err)
			continue
		}
		items = append(items, item)
	}
	return items
}

// parseQuantity reads a quantity such as "2,000" with a decimal comma
func parseQuantity(raw string) (decimal.Decimal, error) {
	qty, err := decimal.NewFromString(strings.Replace(raw, ",", ".", 1))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing quantity %q: %w", raw, err)
	}
	return qty, nil
}

func blockItem(m []string) (LineItem, error) {
	qty, err := parseQuantity(m[qtyGroup])
	if err != nil {
		return LineItem{}, err
	}

	unit, err := money.Normalize(m[unitGroup])
	if err != nil {
		return LineItem{}, fmt.Errorf("parsing unit price: %w", err)
	}

	total, err := money.Normalize(m[totalGroup])
	if err != nil {
		return LineItem{}, fmt.Errorf("parsing line total: %w", err)
	}

	return LineItem{
		Name:      strings.TrimSpace(m[nameGroup]),
		Quantity:  qty,
		UnitPrice: unit,
		LineTotal: total,
	}, nil
}
