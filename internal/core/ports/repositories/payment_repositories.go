package repositories

import (
	"context"
	"time"

	"github.com/gobooks/books_backend/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a payment with its allocations.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByParty retrieves a party's payments in a date range,
	// oldest first.
	ListPaymentsByParty(ctx context.Context, partyID string, direction domain.PaymentDirection, from, to time.Time) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment persists a payment, its allocations, and the resulting
	// amount_paid/status changes on the allocated documents within one
	// transaction.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// DeletePayment removes a payment and reverses its allocations'
	// effects on the allocated documents within one transaction.
	DeletePayment(ctx context.Context, paymentID string, userID string, now time.Time) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
