package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gobooks/books_backend/internal/core/domain"
)

// StatementRepository provides the aggregate queries behind party
// statements. Every query excludes cancelled and soft-deleted documents.
type StatementRepository interface {
	// SumDocumentsBefore sums total_amount of a party's documents of one
	// type dated strictly before the given date.
	SumDocumentsBefore(ctx context.Context, partyID string, docType domain.DocumentType, before time.Time) (decimal.Decimal, error)

	// SumPaymentsBefore sums a party's payment amounts dated strictly
	// before the given date.
	SumPaymentsBefore(ctx context.Context, partyID string, direction domain.PaymentDirection, before time.Time) (decimal.Decimal, error)

	// ListDocumentsInRange lists a party's documents of one type with
	// dates in [from, to], ordered by date ascending.
	ListDocumentsInRange(ctx context.Context, partyID string, docType domain.DocumentType, from, to time.Time) ([]domain.Document, error)

	// ListPaymentsInRange lists a party's payments with dates in
	// [from, to], ordered by date ascending.
	ListPaymentsInRange(ctx context.Context, partyID string, direction domain.PaymentDirection, from, to time.Time) ([]domain.Payment, error)
}
