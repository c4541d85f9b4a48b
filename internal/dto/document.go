package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gobooks/books_backend/internal/apperrors"
	"github.com/gobooks/books_backend/internal/core/domain"
)

const dateLayout = "2006-01-02"

// LineItemRequest is one raw line of a document create/update request.
// Amounts arrive as JSON numbers; anything non-numeric fails decimal
// unmarshalling at bind time instead of being coerced to zero.
type LineItemRequest struct {
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	Rate            decimal.Decimal `json:"rate"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	GSTRate         decimal.Decimal `json:"gstRate"`
}

// CreateDocumentRequest defines the data needed to create an invoice,
// bill, credit note or debit note. The document type comes from the route.
type CreateDocumentRequest struct {
	PartyID        string            `json:"partyID" binding:"required"`
	DocumentDate   string            `json:"documentDate" binding:"required"` // YYYY-MM-DD
	PlaceOfSupply  string            `json:"placeOfSupply"`                   // overrides the party's when set
	DiscountAmount decimal.Decimal   `json:"discountAmount"`
	ShippingCharge decimal.Decimal   `json:"shippingCharge"` // invoice only
	RoundingAdj    decimal.Decimal   `json:"roundingAdj"`    // invoice only
	Notes          string            `json:"notes"`
	LineItems      []LineItemRequest `json:"lineItems" binding:"required,min=1,dive"`
}

// Validate rejects negative monetary inputs before they reach the pricer.
func (r CreateDocumentRequest) Validate() error {
	if r.DiscountAmount.IsNegative() || r.ShippingCharge.IsNegative() {
		return apperrors.NewValidationError("document discount and shipping must be non-negative")
	}
	for i, li := range r.LineItems {
		if li.Quantity.IsNegative() || li.Rate.IsNegative() || li.DiscountPercent.IsNegative() || li.GSTRate.IsNegative() {
			return apperrors.NewValidationError(fmt.Sprintf("line %d: quantity, rate, discount and GST rate must be non-negative", i+1))
		}
	}
	return nil
}

// ParsedDate parses the request's document date.
func (r CreateDocumentRequest) ParsedDate() (time.Time, error) {
	d, err := time.Parse(dateLayout, r.DocumentDate)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("documentDate must be YYYY-MM-DD")
	}
	return d, nil
}

// UpdateDocumentRequest carries a full replacement of the document's
// editable data; lines are always replaced wholesale.
type UpdateDocumentRequest = CreateDocumentRequest

// LineItemResponse defines the data returned for a priced line.
type LineItemResponse struct {
	LineItemID      string          `json:"lineItemID"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
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

// DocumentResponse defines the data returned for a document.
type DocumentResponse struct {
	DocumentID     string             `json:"documentID"`
	DocumentType   string             `json:"documentType"`
	DocumentNumber string             `json:"documentNumber"`
	DocumentDate   string             `json:"documentDate"` // YYYY-MM-DD
	PartyID        string             `json:"partyID"`
	Status         string             `json:"status"`
	PlaceOfSupply  string             `json:"placeOfSupply,omitempty"`
	SubTotal       decimal.Decimal    `json:"subTotal"`
	DiscountAmount decimal.Decimal    `json:"discountAmount"`
	IGSTAmount     decimal.Decimal    `json:"igstAmount"`
	CGSTAmount     decimal.Decimal    `json:"cgstAmount"`
	SGSTAmount     decimal.Decimal    `json:"sgstAmount"`
	TotalTax       decimal.Decimal    `json:"totalTax"`
	ShippingCharge decimal.Decimal    `json:"shippingCharge"`
	RoundingAdj    decimal.Decimal    `json:"roundingAdj"`
	TotalAmount    decimal.Decimal    `json:"totalAmount"`
	AmountPaid     decimal.Decimal    `json:"amountPaid"`
	BalanceDue     decimal.Decimal    `json:"balanceDue"`
	Notes          string             `json:"notes,omitempty"`
	LineItems      []LineItemResponse `json:"lineItems,omitempty"`
}

// ToDocumentResponse converts a domain.Document (and optional lines) to a DTO.
func ToDocumentResponse(d *domain.Document, lines []domain.LineItem) DocumentResponse {
	resp := DocumentResponse{
		DocumentID:     d.DocumentID,
		DocumentType:   string(d.DocumentType),
		DocumentNumber: d.DocumentNumber,
		DocumentDate:   d.DocumentDate.Format(dateLayout),
		PartyID:        d.PartyID,
		Status:         string(d.Status),
		PlaceOfSupply:  d.PlaceOfSupply,
		SubTotal:       d.SubTotal,
		DiscountAmount: d.DiscountAmount,
		IGSTAmount:     d.IGSTAmount,
		CGSTAmount:     d.CGSTAmount,
		SGSTAmount:     d.SGSTAmount,
		TotalTax:       d.TotalTax,
		ShippingCharge: d.ShippingCharge,
		RoundingAdj:    d.RoundingAdj,
		TotalAmount:    d.TotalAmount,
		AmountPaid:     d.AmountPaid,
		BalanceDue:     d.BalanceDue,
		Notes:          d.Notes,
	}
	if len(lines) > 0 {
		resp.LineItems = make([]LineItemResponse, len(lines))
		for i, l := range lines {
			resp.LineItems[i] = LineItemResponse{
				LineItemID:      l.LineItemID,
				Name:            l.Name,
				Description:     l.Description,
				Quantity:        l.Quantity,
				Rate:            l.Rate,
				DiscountPercent: l.DiscountPercent,
				GSTRate:         l.GSTRate,
				DiscountAmount:  l.DiscountAmount,
				IGSTAmount:      l.IGSTAmount,
				CGSTAmount:      l.CGSTAmount,
				SGSTAmount:      l.SGSTAmount,
				Amount:          l.Amount,
			}
		}
	}
	return resp
}

// ListDocumentsParams defines query parameters for listing documents.
type ListDocumentsParams struct {
	PartyID   string  `form:"partyID" binding:"required"`
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListDocumentsResponse wraps a page of documents with the next-page token.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	NextToken *string            `json:"nextToken,omitempty"`
}
