package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartyKind distinguishes the two sides of the books.
type PartyKind string

const (
	Customer PartyKind = "CUSTOMER"
	Vendor   PartyKind = "VENDOR"
)

// Party represents a customer or vendor the company trades with.
// OpeningBalance is the amount owed by (customer) or to (vendor) the party
// as of the moment it was onboarded; CreatedAt anchors the default
// statement range. Parties are deactivated, never hard-deleted while
// documents reference them.
type Party struct {
	PartyID        string          `json:"partyID"`
	Kind           PartyKind       `json:"kind"`
	Name           string          `json:"name"`
	GSTIN          string          `json:"gstin"` // may be empty for unregistered parties
	PlaceOfSupply  string          `json:"placeOfSupply"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	BillingAddress string          `json:"billingAddress"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}

// StatementAnchor returns the date the party's default statement range
// starts on. Zero CreatedAt falls back to the Unix epoch so a party with
// missing lifecycle data still gets a deterministic range.
func (p Party) StatementAnchor() time.Time {
	if p.CreatedAt.IsZero() {
		return time.Unix(0, 0).UTC()
	}
	return p.CreatedAt
}
