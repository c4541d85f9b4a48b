package repositories

import (
	"context"
	"time"

	"github.com/gobooks/books_backend/internal/core/domain"
)

// PartyReader defines read operations for party data
type PartyReader interface {
	// FindPartyByID retrieves a party by its unique identifier.
	// Returns apperrors.ErrNotFound when no such party exists.
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListParties retrieves parties of a kind, optionally including
	// deactivated ones, with limit/offset pagination.
	ListParties(ctx context.Context, kind domain.PartyKind, includeInactive bool, limit, offset int) ([]domain.Party, error)
}

// PartyWriter defines write operations for party data
type PartyWriter interface {
	// SaveParty inserts a new party.
	SaveParty(ctx context.Context, party domain.Party) error

	// UpdateParty updates mutable party fields.
	UpdateParty(ctx context.Context, party domain.Party) error

	// DeactivateParty soft-deletes a party; it stays referenceable by
	// existing documents.
	DeactivateParty(ctx context.Context, partyID string, userID string, now time.Time) error
}

// PartyRepositoryFacade combines all party-related repository interfaces
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}
