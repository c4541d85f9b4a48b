package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/gobooks/books_backend/internal/core/domain"
	portsrepo "github.com/gobooks/books_backend/internal/core/ports/repositories"
	"github.com/gobooks/books_backend/internal/models"
	"github.com/gobooks/books_backend/internal/utils/mapping"
)

// statementRepository implements the StatementRepository interface.
// Every query here excludes cancelled and soft-deleted documents so a
// statement only ever reflects live paperwork.
type statementRepository struct {
	BaseRepository
}

// newStatementRepository creates a new statement repository
func newStatementRepository(db *pgxpool.Pool) portsrepo.StatementRepository {
	return &statementRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// Ensure statementRepository implements portsrepo.StatementRepository
var _ portsrepo.StatementRepository = (*statementRepository)(nil)

// SumDocumentsBefore sums total_amount of a party's documents of one type
// dated strictly before the given date.
func (r *statementRepository) SumDocumentsBefore(ctx context.Context, partyID string, docType domain.DocumentType, before time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM documents
		WHERE party_id = $1
			AND document_type = $2
			AND document_date < $3
			AND status <> 'CANCELLED'
			AND deleted_at IS NULL;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, partyID, string(docType), before).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error summing %s documents for party %s: %w", docType, partyID, err)
	}
	return total, nil
}

// SumPaymentsBefore sums a party's payment amounts dated strictly before
// the given date.
func (r *statementRepository) SumPaymentsBefore(ctx context.Context, partyID string, direction domain.PaymentDirection, before time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE party_id = $1 AND direction = $2 AND payment_date < $3;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, partyID, string(direction), before).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error summing payments for party %s: %w", partyID, err)
	}
	return total, nil
}

// ListDocumentsInRange lists a party's live documents of one type with
// dates in [from, to], oldest first.
func (r *statementRepository) ListDocumentsInRange(ctx context.Context, partyID string, docType domain.DocumentType, from, to time.Time) ([]domain.Document, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE party_id = $1
			AND document_type = $2
			AND document_date >= $3 AND document_date <= $4
			AND status <> 'CANCELLED'
			AND deleted_at IS NULL
		ORDER BY document_date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, partyID, string(docType), from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying %s documents for party %s: %w", docType, partyID, err)
	}
	defer rows.Close()

	docs := []models.Document{}
	for rows.Next() {
		m, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning document row for party %s: %w", partyID, err)
		}
		docs = append(docs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows for party %s: %w", partyID, err)
	}
	return mapping.ToDomainDocumentSlice(docs), nil
}

// ListPaymentsInRange lists a party's payments with dates in [from, to],
// oldest first.
func (r *statementRepository) ListPaymentsInRange(ctx context.Context, partyID string, direction domain.PaymentDirection, from, to time.Time) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE party_id = $1 AND direction = $2 AND payment_date >= $3 AND payment_date <= $4
		ORDER BY payment_date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, partyID, string(direction), from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying payments for party %s: %w", partyID, err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning payment row for party %s: %w", partyID, err)
		}
		payments = append(payments, mapping.ToDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows for party %s: %w", partyID, err)
	}
	return payments, nil
}
