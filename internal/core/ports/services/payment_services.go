package services

import (
	"context"

	"github.com/gobooks/books_backend/internal/core/domain"
	"github.com/gobooks/books_backend/internal/dto"
)

// PaymentReaderSvc defines read operations for payments.
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a payment with its allocations.
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByParty retrieves a paginated list of a party's payments,
	// newest first.
	ListPaymentsByParty(ctx context.Context, partyID string, limit int, offset int) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations for payments.
type PaymentWriterSvc interface {
	// CreatePayment records a payment and applies its allocations to the
	// referenced documents in one transaction.
	CreatePayment(ctx context.Context, direction domain.PaymentDirection, req dto.CreatePaymentRequest, userID string) (*domain.Payment, error)

	// DeletePayment removes a payment and reverses its allocations.
	DeletePayment(ctx context.Context, paymentID string, userID string) error
}

// PaymentSvcFacade combines all payment-related service interfaces.
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
