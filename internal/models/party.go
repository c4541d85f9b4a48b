package models

import "github.com/shopspring/decimal"

// Party is the row shape of the parties table; customers and vendors share
// the table, discriminated by kind.
type Party struct {
	PartyID        string          `json:"partyID"`
	Kind           string          `json:"kind"` // CUSTOMER or VENDOR
	Name           string          `json:"name"`
	GSTIN          string          `json:"gstin"`
	PlaceOfSupply  string          `json:"placeOfSupply"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	BillingAddress string          `json:"billingAddress"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
