package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the row shape of the payments table. amount is home currency;
// original_amount/exchange_rate are set only for foreign-currency receipts.
type Payment struct {
	PaymentID      string           `json:"paymentID"`
	Direction      string           `json:"direction"` // RECEIVED or MADE
	PartyID        string           `json:"partyID"`
	PaymentDate    time.Time        `json:"paymentDate"`
	Amount         decimal.Decimal  `json:"amount"`
	OriginalAmount *decimal.Decimal `json:"originalAmount,omitempty"`
	ExchangeRate   *decimal.Decimal `json:"exchangeRate,omitempty"`
	Mode           string           `json:"mode"`
	Reference      string           `json:"reference"`
	Notes          string           `json:"notes"`
	AuditFields
}

// Allocation is the row shape of the payment_allocations table.
type Allocation struct {
	AllocationID    string          `json:"allocationID"`
	PaymentID       string          `json:"paymentID"`
	DocumentID      string          `json:"documentID"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount"`
}
