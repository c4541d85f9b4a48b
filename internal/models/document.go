package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Document is the row shape of the documents table. All four document
// kinds share the table, discriminated by document_type. deleted_at marks
// soft deletion.
type Document struct {
	DocumentID     string          `json:"documentID"`
	DocumentType   string          `json:"documentType"`
	DocumentNumber string          `json:"documentNumber"`
	DocumentDate   time.Time       `json:"documentDate"`
	PartyID        string          `json:"partyID"`
	Status         string          `json:"status"`
	PlaceOfSupply  string          `json:"placeOfSupply"`
	SubTotal       decimal.Decimal `json:"subTotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	IGSTAmount     decimal.Decimal `json:"igstAmount"`
	CGSTAmount     decimal.Decimal `json:"cgstAmount"`
	SGSTAmount     decimal.Decimal `json:"sgstAmount"`
	TotalTax       decimal.Decimal `json:"totalTax"`
	ShippingCharge decimal.Decimal `json:"shippingCharge"`
	RoundingAdj    decimal.Decimal `json:"roundingAdj"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	AmountPaid     decimal.Decimal `json:"amountPaid"`
	BalanceDue     decimal.Decimal `json:"balanceDue"`
	Notes          string          `json:"notes"`
	DeletedAt      *time.Time      `json:"deletedAt,omitempty"`
	AuditFields
}

// LineItem is the row shape of the line_items table. Rows are deleted and
// reinserted wholesale whenever the parent document is updated.
type LineItem struct {
	LineItemID      string          `json:"lineItemID"`
	DocumentID      string          `json:"documentID"`
	LineNumber      int             `json:"lineNumber"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	Rate            decimal.Decimal `json:"rate"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	GSTRate         decimal.Decimal `json:"gstRate"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	IGSTAmount      decimal.Decimal `json:"igstAmount"`
	CGSTAmount      decimal.Decimal `json:"cgstAmount"`
	SGSTAmount      decimal.Decimal `json:"sgstAmount"`
	Amount          decimal.Decimal `json:"amount"`
}
