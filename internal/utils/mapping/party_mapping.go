package mapping

import (
	"github.com/gobooks/books_backend/internal/core/domain"
	"github.com/gobooks/books_backend/internal/models"
)

// ToModelParty converts a domain Party to a model Party
func ToModelParty(d domain.Party) models.Party {
	return models.Party{
		PartyID:        d.PartyID,
		Kind:           string(d.Kind),
		Name:           d.Name,
		GSTIN:          d.GSTIN,
		PlaceOfSupply:  d.PlaceOfSupply,
		OpeningBalance: d.OpeningBalance,
		Email:          d.Email,
		Phone:          d.Phone,
		BillingAddress: d.BillingAddress,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainParty converts a model Party to a domain Party
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID:        m.PartyID,
		Kind:           domain.PartyKind(m.Kind),
		Name:           m.Name,
		GSTIN:          m.GSTIN,
		PlaceOfSupply:  m.PlaceOfSupply,
		OpeningBalance: m.OpeningBalance,
		Email:          m.Email,
		Phone:          m.Phone,
		BillingAddress: m.BillingAddress,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPartySlice converts a slice of model Parties to domain Parties
func ToDomainPartySlice(ms []models.Party) []domain.Party {
	ds := make([]domain.Party, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainParty(m)
	}
	return ds
}
