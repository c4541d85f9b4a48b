package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gobooks/books_backend/internal/core/domain"
)

// CreatePartyRequest defines the data needed to onboard a customer or vendor.
type CreatePartyRequest struct {
	Kind           domain.PartyKind `json:"kind" binding:"required,oneof=CUSTOMER VENDOR"`
	Name           string           `json:"name" binding:"required"`
	GSTIN          string           `json:"gstin"` // optional: unregistered parties have none
	PlaceOfSupply  string           `json:"placeOfSupply"`
	OpeningBalance decimal.Decimal  `json:"openingBalance"`
	Email          string           `json:"email" binding:"omitempty,email"`
	Phone          string           `json:"phone"`
	BillingAddress string           `json:"billingAddress"`
}

// UpdatePartyRequest defines the data allowed for updating a party.
// Pointers distinguish zero-value updates from fields not provided.
type UpdatePartyRequest struct {
	Name           *string `json:"name"`
	GSTIN          *string `json:"gstin"`
	PlaceOfSupply  *string `json:"placeOfSupply"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Phone          *string `json:"phone"`
	BillingAddress *string `json:"billingAddress"`
}

// PartyResponse defines the data returned for a party.
type PartyResponse struct {
	PartyID        string          `json:"partyID"`
	Kind           string          `json:"kind"`
	Name           string          `json:"name"`
	GSTIN          string          `json:"gstin"`
	PlaceOfSupply  string          `json:"placeOfSupply"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	BillingAddress string          `json:"billingAddress"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToPartyResponse converts a domain.Party to PartyResponse DTO
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:        p.PartyID,
		Kind:           string(p.Kind),
		Name:           p.Name,
		GSTIN:          p.GSTIN,
		PlaceOfSupply:  p.PlaceOfSupply,
		OpeningBalance: p.OpeningBalance,
		Email:          p.Email,
		Phone:          p.Phone,
		BillingAddress: p.BillingAddress,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
	}
}

// ToListPartyResponse converts a slice of domain.Party to PartyResponse DTOs
func ToListPartyResponse(parties []domain.Party) []PartyResponse {
	res := make([]PartyResponse, len(parties))
	for i, p := range parties {
		res[i] = ToPartyResponse(&p)
	}
	return res
}

// ListPartiesParams defines query parameters for listing parties.
type ListPartiesParams struct {
	Kind            string `form:"kind" binding:"omitempty,oneof=CUSTOMER VENDOR"`
	IncludeInactive bool   `form:"includeInactive"`
	Limit           int    `form:"limit,default=20"`
	Offset          int    `form:"offset,default=0"`
}
