package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentDirection distinguishes money received from customers from money
// paid to vendors.
type PaymentDirection string

const (
	PaymentReceived PaymentDirection = "RECEIVED"
	PaymentMade     PaymentDirection = "MADE"
)

// Payment is money received from a customer or paid to a vendor. Amount is
// always in the home currency; OriginalAmount and ExchangeRate carry the
// foreign-currency pair when the payment was collected in another currency.
type Payment struct {
	PaymentID      string           `json:"paymentID"`
	Direction      PaymentDirection `json:"direction"`
	PartyID        string           `json:"partyID"`
	PaymentDate    time.Time        `json:"paymentDate"`
	Amount         decimal.Decimal  `json:"amount"`
	OriginalAmount *decimal.Decimal `json:"originalAmount,omitempty"`
	ExchangeRate   *decimal.Decimal `json:"exchangeRate,omitempty"`
	Mode           string           `json:"mode"` // cash, bank transfer, UPI...
	Reference      string           `json:"reference"`
	Notes          string           `json:"notes"`
	Allocations    []Allocation     `json:"allocations"`
	AuditFields
}

// Allocation applies a portion of a payment against one document's balance
// due. AllocatedAmount never exceeds the document's balance due at the
// time of allocation.
type Allocation struct {
	AllocationID    string          `json:"allocationID"`
	PaymentID       string          `json:"paymentID"`
	DocumentID      string          `json:"documentID"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount"`
}

// AllocatedTotal sums the payment's allocations.
func (p Payment) AllocatedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, a := range p.Allocations {
		total = total.Add(a.AllocatedAmount)
	}
	return total
}
