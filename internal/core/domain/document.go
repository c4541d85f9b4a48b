package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType identifies one of the four accounting document kinds.
type DocumentType string

const (
	Invoice    DocumentType = "INVOICE"
	Bill       DocumentType = "BILL"
	CreditNote DocumentType = "CREDIT_NOTE"
	DebitNote  DocumentType = "DEBIT_NOTE"
)

// PrimaryDocumentType returns the primary document kind for a party:
// invoices for customers, bills for vendors.
func PrimaryDocumentType(kind PartyKind) DocumentType {
	if kind == Vendor {
		return Bill
	}
	return Invoice
}

// AdjustmentDocumentType returns the adjustment document kind for a party:
// credit notes for customers, debit notes for vendors.
func AdjustmentDocumentType(kind PartyKind) DocumentType {
	if kind == Vendor {
		return DebitNote
	}
	return CreditNote
}

// DocumentStatus is the lifecycle state of an accounting document.
// Cancelled documents are excluded from every ledger aggregation.
type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "DRAFT"
	StatusPending   DocumentStatus = "PENDING"
	StatusPartial   DocumentStatus = "PARTIAL"
	StatusPaid      DocumentStatus = "PAID"
	StatusCancelled DocumentStatus = "CANCELLED"
)

// Document represents one accounting document (invoice, bill, credit note
// or debit note) together with its rolled-up totals. A document is
// immutable once PAID.
type Document struct {
	DocumentID     string         `json:"documentID"`
	DocumentType   DocumentType   `json:"documentType"`
	DocumentNumber string         `json:"documentNumber"`
	DocumentDate   time.Time      `json:"documentDate"`
	PartyID        string         `json:"partyID"`
	Status         DocumentStatus `json:"status"`
	// PlaceOfSupply overrides the party's place of supply for the GST
	// split when set; empty means "use the party's".
	PlaceOfSupply  string          `json:"placeOfSupply"`
	SubTotal       decimal.Decimal `json:"subTotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"` // document-level discount
	IGSTAmount     decimal.Decimal `json:"igstAmount"`
	CGSTAmount     decimal.Decimal `json:"cgstAmount"`
	SGSTAmount     decimal.Decimal `json:"sgstAmount"`
	TotalTax       decimal.Decimal `json:"totalTax"`
	ShippingCharge decimal.Decimal `json:"shippingCharge"` // invoice only
	RoundingAdj    decimal.Decimal `json:"roundingAdj"`    // invoice only
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	AmountPaid     decimal.Decimal `json:"amountPaid"`
	BalanceDue     decimal.Decimal `json:"balanceDue"`
	Notes          string          `json:"notes"`
	DeletedAt      *time.Time      `json:"deletedAt,omitempty"`
	AuditFields
}

// IsMutable reports whether the document may still be edited.
func (d Document) IsMutable() bool {
	return d.Status != StatusPaid && d.Status != StatusCancelled
}

// LineItem is a single priced line of a document. Lines carry the computed
// pricing outputs; the whole set is replaced on every document update, so
// a line has no identity that survives an edit.
type LineItem struct {
	LineItemID      string          `json:"lineItemID"`
	DocumentID      string          `json:"documentID"`
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
	Amount          decimal.Decimal `json:"amount"` // taxable amount after line discount, before tax
}
