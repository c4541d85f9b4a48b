package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gobooks/books_backend/internal/core/domain"
	portsrepo "github.com/gobooks/books_backend/internal/core/ports/repositories"
	portssvc "github.com/gobooks/books_backend/internal/core/ports/services"
	"github.com/gobooks/books_backend/internal/dto"
)

// partyService provides customer and vendor master data operations.
type partyService struct {
	BaseService
	partyRepo portsrepo.PartyRepositoryFacade
}

// NewPartyService creates a new PartyService.
func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade) portssvc.PartySvcFacade {
	return &partyService{partyRepo: partyRepo}
}

// Ensure partyService implements the portssvc.PartySvcFacade interface
var _ portssvc.PartySvcFacade = (*partyService)(nil)

func (s *partyService) CreateParty(ctx context.Context, kind domain.PartyKind, req dto.CreatePartyRequest, userID string) (*domain.Party, error) {
	now := time.Now()
	party := domain.Party{
		PartyID:        uuid.NewString(),
		Kind:           kind,
		Name:           req.Name,
		GSTIN:          req.GSTIN,
		PlaceOfSupply:  req.PlaceOfSupply,
		OpeningBalance: req.OpeningBalance,
		Email:          req.Email,
		Phone:          req.Phone,
		BillingAddress: req.BillingAddress,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		s.LogError(ctx, err, "Failed to save party", slog.String("party_name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Party created", slog.String("party_id", party.PartyID), slog.String("kind", string(kind)))
	return &party, nil
}

func (s *partyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		s.LogDebug(ctx, "Party lookup failed", slog.String("party_id", partyID), slog.String("error", err.Error()))
		return nil, err
	}
	return party, nil
}

func (s *partyService) ListParties(ctx context.Context, kind domain.PartyKind, includeInactive bool, limit int, offset int) ([]domain.Party, error) {
	parties, err := s.partyRepo.ListParties(ctx, kind, includeInactive, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list parties", slog.String("kind", string(kind)))
		return nil, err
	}
	return parties, nil
}

func (s *partyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, userID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		party.Name = *req.Name
	}
	if req.GSTIN != nil {
		party.GSTIN = *req.GSTIN
	}
	if req.PlaceOfSupply != nil {
		party.PlaceOfSupply = *req.PlaceOfSupply
	}
	if req.Email != nil {
		party.Email = *req.Email
	}
	if req.Phone != nil {
		party.Phone = *req.Phone
	}
	if req.BillingAddress != nil {
		party.BillingAddress = *req.BillingAddress
	}
	party.LastUpdatedAt = time.Now()
	party.LastUpdatedBy = userID

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		s.LogError(ctx, err, "Failed to update party", slog.String("party_id", partyID))
		return nil, err
	}
	return party, nil
}

func (s *partyService) DeactivateParty(ctx context.Context, partyID string, userID string) error {
	if err := s.partyRepo.DeactivateParty(ctx, partyID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate party", slog.String("party_id", partyID))
		return err
	}
	s.LogInfo(ctx, "Party deactivated", slog.String("party_id", partyID))
	return nil
}
