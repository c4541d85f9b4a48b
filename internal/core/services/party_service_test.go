package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gobooks/books_backend/internal/apperrors"
	"github.com/gobooks/books_backend/internal/core/domain"
	portsrepo "github.com/gobooks/books_backend/internal/core/ports/repositories"
	"github.com/gobooks/books_backend/internal/core/services"
	"github.com/gobooks/books_backend/internal/dto"
)

// --- Mock PartyRepository ---
type MockPartyRepository struct {
	MockPartyReader
}

// Ensure MockPartyRepository implements portsrepo.PartyRepositoryFacade
var _ portsrepo.PartyRepositoryFacade = (*MockPartyRepository)(nil)

func (m *MockPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) DeactivateParty(ctx context.Context, partyID string, userID string, now time.Time) error {
	args := m.Called(ctx, partyID, userID, now)
	return args.Error(0)
}

func TestCreateParty(t *testing.T) {
	repo := new(MockPartyRepository)
	var saved domain.Party
	repo.On("SaveParty", mock.Anything, mock.AnythingOfType("domain.Party")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Party) }).
		Return(nil)
	svc := services.NewPartyService(repo)

	req := dto.CreatePartyRequest{
		Kind:           domain.Customer,
		Name:           "Acme Traders",
		GSTIN:          "29ABCDE1234F1Z5",
		PlaceOfSupply:  "Karnataka",
		OpeningBalance: decimal.NewFromInt(1000),
	}
	party, err := svc.CreateParty(context.Background(), domain.Customer, req, "user-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, party.PartyID)
	assert.True(t, party.IsActive, "new parties start active")
	assert.Equal(t, "user-1", saved.CreatedBy)
	assert.True(t, saved.OpeningBalance.Equal(decimal.NewFromInt(1000)))
}

func TestCreatePartyDuplicate(t *testing.T) {
	repo := new(MockPartyRepository)
	repo.On("SaveParty", mock.Anything, mock.AnythingOfType("domain.Party")).Return(apperrors.ErrDuplicate)
	svc := services.NewPartyService(repo)

	_, err := svc.CreateParty(context.Background(), domain.Vendor, dto.CreatePartyRequest{Kind: domain.Vendor, Name: "Dup"}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestUpdatePartyAppliesOnlyProvidedFields(t *testing.T) {
	repo := new(MockPartyRepository)
	repo.On("FindPartyByID", mock.Anything, "party-1").Return(&domain.Party{
		PartyID:       "party-1",
		Kind:          domain.Customer,
		Name:          "Old Name",
		GSTIN:         "29ABCDE1234F1Z5",
		PlaceOfSupply: "Karnataka",
		IsActive:      true,
	}, nil)
	var updated domain.Party
	repo.On("UpdateParty", mock.Anything, mock.AnythingOfType("domain.Party")).
		Run(func(args mock.Arguments) { updated = args.Get(1).(domain.Party) }).
		Return(nil)
	svc := services.NewPartyService(repo)

	newName := "New Name"
	party, err := svc.UpdateParty(context.Background(), "party-1", dto.UpdatePartyRequest{Name: &newName}, "user-2")
	assert.NoError(t, err)
	assert.Equal(t, "New Name", party.Name)
	assert.Equal(t, "29ABCDE1234F1Z5", updated.GSTIN, "omitted fields keep their values")
	assert.Equal(t, "user-2", updated.LastUpdatedBy)
}

func TestUpdatePartyNotFound(t *testing.T) {
	repo := new(MockPartyRepository)
	repo.On("FindPartyByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound)
	svc := services.NewPartyService(repo)

	_, err := svc.UpdateParty(context.Background(), "missing", dto.UpdatePartyRequest{}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertNotCalled(t, "UpdateParty", mock.Anything, mock.Anything)
}

func TestDeactivateParty(t *testing.T) {
	repo := new(MockPartyRepository)
	repo.On("DeactivateParty", mock.Anything, "party-1", "user-1", mock.AnythingOfType("time.Time")).Return(nil)
	svc := services.NewPartyService(repo)

	assert.NoError(t, svc.DeactivateParty(context.Background(), "party-1", "user-1"))
	repo.AssertExpectations(t)
}
