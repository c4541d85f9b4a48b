package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gobooks/books_backend/internal/apperrors"
	"github.com/gobooks/books_backend/internal/core/domain"
)

// AllocationRequest applies part of a payment against one document.
type AllocationRequest struct {
	DocumentID      string          `json:"documentID" binding:"required"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount"`
}

// CreatePaymentRequest defines the data needed to record a payment.
// The direction (received/made) comes from the route. Amount is in the
// home currency; a foreign-currency receipt carries the original amount
// and the exchange rate used.
type CreatePaymentRequest struct {
	PartyID        string              `json:"partyID" binding:"required"`
	PaymentDate    string              `json:"paymentDate" binding:"required"` // YYYY-MM-DD
	Amount         decimal.Decimal     `json:"amount"`
	OriginalAmount *decimal.Decimal    `json:"originalAmount"`
	ExchangeRate   *decimal.Decimal    `json:"exchangeRate"`
	Mode           string              `json:"mode"`
	Reference      string              `json:"reference"`
	Notes          string              `json:"notes"`
	Allocations    []AllocationRequest `json:"allocations" binding:"omitempty,dive"`
}

// Validate rejects non-positive amounts and over-allocation.
func (r CreatePaymentRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return apperrors.NewValidationError("payment amount must be positive")
	}
	if (r.OriginalAmount == nil) != (r.ExchangeRate == nil) {
		return apperrors.NewValidationError("originalAmount and exchangeRate must be supplied together")
	}
	allocated := decimal.Zero
	for _, a := range r.Allocations {
		if !a.AllocatedAmount.IsPositive() {
			return apperrors.NewValidationError("allocated amounts must be positive")
		}
		allocated = allocated.Add(a.AllocatedAmount)
	}
	if allocated.GreaterThan(r.Amount) {
		return apperrors.NewValidationError("allocations exceed payment amount")
	}
	return nil
}

// ParsedDate parses the request's payment date.
func (r CreatePaymentRequest) ParsedDate() (time.Time, error) {
	d, err := time.Parse(dateLayout, r.PaymentDate)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("paymentDate must be YYYY-MM-DD")
	}
	return d, nil
}

// AllocationResponse defines the data returned for one allocation.
type AllocationResponse struct {
	AllocationID    string          `json:"allocationID"`
	DocumentID      string          `json:"documentID"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID      string               `json:"paymentID"`
	Direction      string               `json:"direction"`
	PartyID        string               `json:"partyID"`
	PaymentDate    string               `json:"paymentDate"` // YYYY-MM-DD
	Amount         decimal.Decimal      `json:"amount"`
	OriginalAmount *decimal.Decimal     `json:"originalAmount,omitempty"`
	ExchangeRate   *decimal.Decimal     `json:"exchangeRate,omitempty"`
	Mode           string               `json:"mode,omitempty"`
	Reference      string               `json:"reference,omitempty"`
	Notes          string               `json:"notes,omitempty"`
	Allocations    []AllocationResponse `json:"allocations"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	resp := PaymentResponse{
		PaymentID:      p.PaymentID,
		Direction:      string(p.Direction),
		PartyID:        p.PartyID,
		PaymentDate:    p.PaymentDate.Format(dateLayout),
		Amount:         p.Amount,
		OriginalAmount: p.OriginalAmount,
		ExchangeRate:   p.ExchangeRate,
		Mode:           p.Mode,
		Reference:      p.Reference,
		Notes:          p.Notes,
		Allocations:    make([]AllocationResponse, len(p.Allocations)),
	}
	for i, a := range p.Allocations {
		resp.Allocations[i] = AllocationResponse{
			AllocationID:    a.AllocationID,
			DocumentID:      a.DocumentID,
			AllocatedAmount: a.AllocatedAmount,
		}
	}
	return resp
}

// ListPaymentsParams defines query parameters for listing payments.
type ListPaymentsParams struct {
	PartyID string `form:"partyID" binding:"required"`
	Limit   int    `form:"limit,default=20"`
	Offset  int    `form:"offset,default=0"`
}
