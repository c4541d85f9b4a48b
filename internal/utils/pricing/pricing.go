// Package pricing computes line item prices and document total rollups.
// All intermediate arithmetic runs at full decimal precision; rounding to
// 2 decimals (half away from zero) happens only at output points so that
// rounding error never compounds across steps.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/gobooks/books_backend/internal/utils/gst"
)

var hundred = decimal.NewFromInt(100)

// LineInput is the raw pricing input for one line. Negative values are
// rejected upstream by request validation; non-numeric monetary input
// never reaches this package because decimal parsing fails at the DTO
// boundary instead of coercing to zero.
type LineInput struct {
	Quantity        decimal.Decimal
	Rate            decimal.Decimal
	DiscountPercent decimal.Decimal
	GSTRate         decimal.Decimal
}

// PricedLine is the computed output for one line. Amount is the taxable
// amount: line total after the line discount, before tax.
type PricedLine struct {
	DiscountAmount decimal.Decimal
	Amount         decimal.Decimal
	IGST           decimal.Decimal
	CGST           decimal.Decimal
	SGST           decimal.Decimal
}

// TaxTotal returns the line's total tax across components.
func (l PricedLine) TaxTotal() decimal.Decimal {
	return l.IGST.Add(l.CGST).Add(l.SGST)
}

// PriceLine prices one line item: lineTotal = quantity x rate, the line
// discount comes off before tax, and the tax splits into GST components
// using the two jurisdictions. A zero-amount line is valid and produces
// all-zero outputs. Pricing is a pure function: the same input always
// yields the identical output.
func PriceLine(item LineInput, supplyState, partyState string) PricedLine {
	lineTotal := item.Quantity.Mul(item.Rate)
	discount := lineTotal.Mul(item.DiscountPercent).Div(hundred)
	taxable := lineTotal.Sub(discount)
	tax := taxable.Mul(item.GSTRate).Div(hundred)

	split := gst.Split(tax, supplyState, partyState)
	return PricedLine{
		DiscountAmount: discount.Round(2),
		Amount:         taxable.Round(2),
		IGST:           split.IGST,
		CGST:           split.CGST,
		SGST:           split.SGST,
	}
}

// DocumentTotals is the rollup of a document's priced lines.
type DocumentTotals struct {
	SubTotal    decimal.Decimal
	IGSTTotal   decimal.Decimal
	CGSTTotal   decimal.Decimal
	SGSTTotal   decimal.Decimal
	TotalTax    decimal.Decimal
	TotalAmount decimal.Decimal
}

// TotalDocument rolls priced lines up to document totals:
// totalAmount = subTotal - docDiscount + totalTax + shipping + roundingAdj.
// Shipping and the manual rounding adjustment apply to invoices only;
// callers pass zero for the other document kinds.
func TotalDocument(lines []PricedLine, docDiscount, shipping, roundingAdj decimal.Decimal) DocumentTotals {
	var t DocumentTotals
	t.SubTotal = decimal.Zero
	t.IGSTTotal = decimal.Zero
	t.CGSTTotal = decimal.Zero
	t.SGSTTotal = decimal.Zero
	for _, l := range lines {
		t.SubTotal = t.SubTotal.Add(l.Amount)
		t.IGSTTotal = t.IGSTTotal.Add(l.IGST)
		t.CGSTTotal = t.CGSTTotal.Add(l.CGST)
		t.SGSTTotal = t.SGSTTotal.Add(l.SGST)
	}
	t.TotalTax = t.IGSTTotal.Add(t.CGSTTotal).Add(t.SGSTTotal)
	t.TotalAmount = t.SubTotal.Sub(docDiscount).Add(t.TotalTax).Add(shipping).Add(roundingAdj).Round(2)
	return t
}

// BalanceDue returns totalAmount - amountPaid rounded to 2 decimals.
func BalanceDue(totalAmount, amountPaid decimal.Decimal) decimal.Decimal {
	return totalAmount.Sub(amountPaid).Round(2)
}
