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

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

// Ensure MockPaymentRepository implements portsrepo.PaymentRepositoryFacade
var _ portsrepo.PaymentRepositoryFacade = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByParty(ctx context.Context, partyID string, direction domain.PaymentDirection, from, to time.Time) ([]domain.Payment, error) {
	args := m.Called(ctx, partyID, direction, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, paymentID string, userID string, now time.Time) error {
	args := m.Called(ctx, paymentID, userID, now)
	return args.Error(0)
}

func newPaymentFixture(kind domain.PartyKind) (*MockPaymentRepository, *MockDocumentRepository, *MockPartyReaderSvc) {
	paymentRepo := new(MockPaymentRepository)
	docRepo := new(MockDocumentRepository)
	partySvc := new(MockPartyReaderSvc)
	partySvc.On("GetPartyByID", mock.Anything, "party-1").Return(&domain.Party{
		PartyID:  "party-1",
		Kind:     kind,
		Name:     "Acme Traders",
		IsActive: true,
	}, nil)
	return paymentRepo, docRepo, partySvc
}

func paymentRequest(amount decimal.Decimal, allocations ...dto.AllocationRequest) dto.CreatePaymentRequest {
	return dto.CreatePaymentRequest{
		PartyID:     "party-1",
		PaymentDate: "2023-04-20",
		Amount:      amount,
		Mode:        "UPI",
		Allocations: allocations,
	}
}

func TestCreatePayment(t *testing.T) {
	paymentRepo, docRepo, partySvc := newPaymentFixture(domain.Customer)
	docRepo.On("FindDocumentByID", mock.Anything, "doc-1").Return(&domain.Document{
		DocumentID:     "doc-1",
		DocumentNumber: "INV-00001",
		PartyID:        "party-1",
		Status:         domain.StatusPending,
		BalanceDue:     decimal.NewFromInt(5000),
	}, nil)
	paymentRepo.On("SavePayment", mock.Anything, mock.AnythingOfType("domain.Payment")).Return(nil)
	svc := services.NewPaymentService(paymentRepo, docRepo, partySvc)

	req := paymentRequest(decimal.NewFromInt(2000), dto.AllocationRequest{DocumentID: "doc-1", AllocatedAmount: decimal.NewFromInt(2000)})
	payment, err := svc.CreatePayment(context.Background(), domain.PaymentReceived, req, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentReceived, payment.Direction)
	assert.Len(t, payment.Allocations, 1)
	assert.True(t, payment.Allocations[0].AllocatedAmount.Equal(decimal.NewFromInt(2000)))
	paymentRepo.AssertExpectations(t)
}

func TestCreatePaymentDirectionMustMatchPartyKind(t *testing.T) {
	paymentRepo, docRepo, partySvc := newPaymentFixture(domain.Vendor)
	svc := services.NewPaymentService(paymentRepo, docRepo, partySvc)

	req := paymentRequest(decimal.NewFromInt(100))
	_, err := svc.CreatePayment(context.Background(), domain.PaymentReceived, req, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation, "a receipt cannot reference a vendor")
	paymentRepo.AssertNotCalled(t, "SavePayment", mock.Anything, mock.Anything)
}

func TestCreatePaymentAllocationExceedsBalance(t *testing.T) {
	paymentRepo, docRepo, partySvc := newPaymentFixture(domain.Customer)
	docRepo.On("FindDocumentByID", mock.Anything, "doc-1").Return(&domain.Document{
		DocumentID:     "doc-1",
		DocumentNumber: "INV-00001",
		PartyID:        "party-1",
		Status:         domain.StatusPartial,
		BalanceDue:     decimal.NewFromInt(300),
	}, nil)
	svc := services.NewPaymentService(paymentRepo, docRepo, partySvc)

	req := paymentRequest(decimal.NewFromInt(500), dto.AllocationRequest{DocumentID: "doc-1", AllocatedAmount: decimal.NewFromInt(500)})
	_, err := svc.CreatePayment(context.Background(), domain.PaymentReceived, req, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	paymentRepo.AssertNotCalled(t, "SavePayment", mock.Anything, mock.Anything)
}

func TestCreatePaymentAllocationToOtherPartyDocument(t *testing.T) {
	paymentRepo, docRepo, partySvc := newPaymentFixture(domain.Customer)
	docRepo.On("FindDocumentByID", mock.Anything, "doc-2").Return(&domain.Document{
		DocumentID:     "doc-2",
		DocumentNumber: "INV-00002",
		PartyID:        "party-9",
		Status:         domain.StatusPending,
		BalanceDue:     decimal.NewFromInt(5000),
	}, nil)
	svc := services.NewPaymentService(paymentRepo, docRepo, partySvc)

	req := paymentRequest(decimal.NewFromInt(100), dto.AllocationRequest{DocumentID: "doc-2", AllocatedAmount: decimal.NewFromInt(100)})
	_, err := svc.CreatePayment(context.Background(), domain.PaymentReceived, req, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreatePaymentAllocationToCancelledDocument(t *testing.T) {
	paymentRepo, docRepo, partySvc := newPaymentFixture(domain.Customer)
	docRepo.On("FindDocumentByID", mock.Anything, "doc-1").Return(&domain.Document{
		DocumentID:     "doc-1",
		DocumentNumber: "INV-00001",
		PartyID:        "party-1",
		Status:         domain.StatusCancelled,
		BalanceDue:     decimal.NewFromInt(5000),
	}, nil)
	svc := services.NewPaymentService(paymentRepo, docRepo, partySvc)

	req := paymentRequest(decimal.NewFromInt(100), dto.AllocationRequest{DocumentID: "doc-1", AllocatedAmount: decimal.NewFromInt(100)})
	_, err := svc.CreatePayment(context.Background(), domain.PaymentReceived, req, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreatePaymentValidation(t *testing.T) {
	paymentRepo, docRepo, partySvc := newPaymentFixture(domain.Customer)
	svc := services.NewPaymentService(paymentRepo, docRepo, partySvc)

	_, err := svc.CreatePayment(context.Background(), domain.PaymentReceived, paymentRequest(decimal.Zero), "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation, "zero amount must be rejected")

	// Allocations summing past the payment amount fail before any lookup.
	req := paymentRequest(decimal.NewFromInt(100),
		dto.AllocationRequest{DocumentID: "doc-1", AllocatedAmount: decimal.NewFromInt(80)},
		dto.AllocationRequest{DocumentID: "doc-2", AllocatedAmount: decimal.NewFromInt(80)})
	_, err = svc.CreatePayment(context.Background(), domain.PaymentReceived, req, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	docRepo.AssertNotCalled(t, "FindDocumentByID", mock.Anything, mock.Anything)

	// A foreign-currency receipt needs both the original amount and the rate.
	orig := decimal.NewFromInt(50)
	req = paymentRequest(decimal.NewFromInt(4100))
	req.OriginalAmount = &orig
	_, err = svc.CreatePayment(context.Background(), domain.PaymentReceived, req, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestListPaymentsByPartyInfersDirection(t *testing.T) {
	paymentRepo, docRepo, partySvc := newPaymentFixture(domain.Vendor)
	paymentRepo.On("ListPaymentsByParty", mock.Anything, "party-1", domain.PaymentMade, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]domain.Payment{
			{PaymentID: "pay-1", Direction: domain.PaymentMade},
			{PaymentID: "pay-2", Direction: domain.PaymentMade},
			{PaymentID: "pay-3", Direction: domain.PaymentMade},
		}, nil)
	svc := services.NewPaymentService(paymentRepo, docRepo, partySvc)

	payments, err := svc.ListPaymentsByParty(context.Background(), "party-1", 2, 1)
	assert.NoError(t, err)
	assert.Len(t, payments, 2)
	assert.Equal(t, "pay-2", payments[0].PaymentID)

	// Offset past the end yields an empty page, not an error.
	payments, err = svc.ListPaymentsByParty(context.Background(), "party-1", 2, 10)
	assert.NoError(t, err)
	assert.Empty(t, payments)
}
