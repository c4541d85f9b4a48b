package services

import (
	"context"

	"github.com/gobooks/books_backend/internal/core/domain"
	"github.com/gobooks/books_backend/internal/dto"
)

// PartyReaderSvc defines read operations for customers and vendors.
type PartyReaderSvc interface {
	// GetPartyByID retrieves a specific party by its unique identifier.
	GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListParties retrieves a paginated list of parties of the given kind.
	ListParties(ctx context.Context, kind domain.PartyKind, includeInactive bool, limit int, offset int) ([]domain.Party, error)
}

// PartyWriterSvc defines write operations for customers and vendors.
type PartyWriterSvc interface {
	// CreateParty persists a new customer or vendor.
	CreateParty(ctx context.Context, kind domain.PartyKind, req dto.CreatePartyRequest, userID string) (*domain.Party, error)

	// UpdateParty updates an existing party's details.
	UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, userID string) (*domain.Party, error)

	// DeactivateParty marks a party as inactive.
	DeactivateParty(ctx context.Context, partyID string, userID string) error
}

// PartySvcFacade combines all party-related service interfaces.
type PartySvcFacade interface {
	PartyReaderSvc
	PartyWriterSvc
}
