package receipt

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/zombor/receipt-parser/internal/money"
	"github.com/zombor/receipt-parser/internal/scanning"
)

// Receipt holds the fields extracted from one receipt text
type Receipt struct {
	DateTime         *string                // "DD.MM.YYYY HH:MM:SS", nil when not printed
	PaymentMethod    scanning.PaymentMethod // PaymentUnknown when not printed
	Items            []scanning.LineItem    // in receipt order
	TotalFromReceipt decimal.NullDecimal    // the printed total
	TotalComputed    decimal.Decimal        // sum of item line totals, rounded to cents
	AllPrices        []decimal.Decimal      // every amount in the text, in order
}

type itemJSON struct {
	Name      string      `json:"name"`
	Quantity  json.Number `json:"qty"`
	UnitPrice json.Number `json:"unit_price"`
	LineTotal json.Number `json:"line_total"`
}

type receiptJSON struct {
	DateTime         *string       `json:"datetime"`
	PaymentMethod    *string       `json:"payment_method"`
	Items            []itemJSON    `json:"items"`
	TotalFromReceipt *json.Number  `json:"total_from_receipt"`
	TotalComputed    json.Number   `json:"total_computed_from_items"`
	AllPrices        []json.Number `json:"all_prices_found"`
}

func amountJSON(d decimal.Decimal) json.Number {
	return json.Number(money.Format(d))
}

// MarshalJSON renders amounts as numbers with two fractional digits and
// missing fields as null
func (r *Receipt) MarshalJSON() ([]byte, error) {
	out := receiptJSON{
		DateTime:      r.DateTime,
		Items:         make([]itemJSON, 0, len(r.Items)),
		TotalComputed: amountJSON(r.TotalComputed),
		AllPrices:     make([]json.Number, 0, len(r.AllPrices)),
	}

	if r.PaymentMethod != "" && r.PaymentMethod != scanning.PaymentUnknown {
		method := string(r.PaymentMethod)
		out.PaymentMethod = &method
	}

	for _, item := range r.Items {
		out.Items = append(out.Items, itemJSON{
			Name:      item.Name,
			Quantity:  json.Number(item.Quantity.String()),
			UnitPrice: amountJSON(item.UnitPrice),
			LineTotal: amountJSON(item.LineTotal),
		})
	}

	if r.TotalFromReceipt.Valid {
		total := amountJSON(r.TotalFromReceipt.Decimal)
		out.TotalFromReceipt = &total
	}

	for _, price := range r.AllPrices {
		out.AllPrices = append(out.AllPrices, amountJSON(price))
	}

	return json.Marshal(out)
}
