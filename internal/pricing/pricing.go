// Package pricing derives order totals from line items.
package pricing

import "github.com/shopspring/decimal"

// TaxRate is the flat sales tax applied to every order (8%).
var TaxRate = decimal.New(8, -2)

type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Calculate returns exact subtotal, tax and total for the given lines.
// No rounding happens here; two-decimal formatting is a display concern.
// Delivery is free, so nothing beyond tax is added.
func Calculate(lines []Line) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
