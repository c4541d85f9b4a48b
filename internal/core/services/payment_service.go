package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gobooks/books_backend/internal/apperrors"
	"github.com/gobooks/books_backend/internal/core/domain"
	portsrepo "github.com/gobooks/books_backend/internal/core/ports/repositories"
	portssvc "github.com/gobooks/books_backend/internal/core/ports/services"
	"github.com/gobooks/books_backend/internal/dto"
)

// paymentService records money received from customers and paid to
// vendors, applying allocations to open documents.
type paymentService struct {
	BaseService
	paymentRepo  portsrepo.PaymentRepositoryFacade
	documentRepo portsrepo.DocumentReader
	partySvc     portssvc.PartyReaderSvc
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, documentRepo portsrepo.DocumentReader, partySvc portssvc.PartyReaderSvc) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo:  paymentRepo,
		documentRepo: documentRepo,
		partySvc:     partySvc,
	}
}

// Ensure paymentService implements the portssvc.PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) CreatePayment(ctx context.Context, direction domain.PaymentDirection, req dto.CreatePaymentRequest, userID string) (*domain.Payment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	paymentDate, err := req.ParsedDate()
	if err != nil {
		return nil, err
	}

	party, err := s.partySvc.GetPartyByID(ctx, req.PartyID)
	if err != nil {
		return nil, err
	}
	// Receipts come from customers, payments made go to vendors.
	if direction == domain.PaymentReceived && party.Kind != domain.Customer {
		return nil, apperrors.NewValidationError("payments received must reference a customer")
	}
	if direction == domain.PaymentMade && party.Kind != domain.Vendor {
		return nil, apperrors.NewValidationError("payments made must reference a vendor")
	}

	// Each allocation must target one of this party's live documents.
	for _, alloc := range req.Allocations {
		doc, err := s.documentRepo.FindDocumentByID(ctx, alloc.DocumentID)
		if err != nil {
			return nil, err
		}
		if doc.PartyID != party.PartyID {
			return nil, apperrors.NewValidationError("document " + doc.DocumentNumber + " belongs to a different party")
		}
		if doc.Status == domain.StatusCancelled {
			return nil, apperrors.NewValidationError("document " + doc.DocumentNumber + " is cancelled")
		}
		if alloc.AllocatedAmount.GreaterThan(doc.BalanceDue) {
			return nil, apperrors.NewValidationError("allocation exceeds balance due on document " + doc.DocumentNumber)
		}
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID:      uuid.NewString(),
		Direction:      direction,
		PartyID:        party.PartyID,
		PaymentDate:    paymentDate,
		Amount:         req.Amount.Round(2),
		OriginalAmount: req.OriginalAmount,
		ExchangeRate:   req.ExchangeRate,
		Mode:           req.Mode,
		Reference:      req.Reference,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	payment.Allocations = make([]domain.Allocation, len(req.Allocations))
	for i, alloc := range req.Allocations {
		payment.Allocations[i] = domain.Allocation{
			AllocationID:    uuid.NewString(),
			PaymentID:       payment.PaymentID,
			DocumentID:      alloc.DocumentID,
			AllocatedAmount: alloc.AllocatedAmount.Round(2),
		}
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment",
			slog.String("party_id", party.PartyID),
			slog.String("direction", string(direction)))
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("party_id", party.PartyID),
		slog.String("amount", payment.Amount.String()))
	return &payment, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return s.paymentRepo.FindPaymentByID(ctx, paymentID)
}

func (s *paymentService) ListPaymentsByParty(ctx context.Context, partyID string, limit int, offset int) ([]domain.Payment, error) {
	party, err := s.partySvc.GetPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}
	direction := domain.PaymentReceived
	if party.Kind == domain.Vendor {
		direction = domain.PaymentMade
	}
	// The repository filters by date range; list views take everything.
	payments, err := s.paymentRepo.ListPaymentsByParty(ctx, partyID, direction, time.Unix(0, 0).UTC(), time.Now().UTC())
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("party_id", partyID))
		return nil, err
	}
	if offset >= len(payments) {
		return []domain.Payment{}, nil
	}
	payments = payments[offset:]
	if limit > 0 && limit < len(payments) {
		payments = payments[:limit]
	}
	return payments, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, paymentID string, userID string) error {
	if err := s.paymentRepo.DeletePayment(ctx, paymentID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to delete payment", slog.String("payment_id", paymentID))
		return err
	}
	s.LogInfo(ctx, "Payment deleted", slog.String("payment_id", paymentID))
	return nil
}
