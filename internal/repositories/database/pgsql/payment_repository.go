package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gobooks/books_backend/internal/apperrors"
	"github.com/gobooks/books_backend/internal/core/domain"
	portsrepo "github.com/gobooks/books_backend/internal/core/ports/repositories"
	"github.com/gobooks/books_backend/internal/models"
	"github.com/gobooks/books_backend/internal/utils/mapping"
)

type PgxPaymentRepository struct {
	BaseRepository
	documentRepo portsrepo.DocumentWriter
}

// newPgxPaymentRepository creates a new repository for payment and
// allocation data.
func newPgxPaymentRepository(pool *pgxpool.Pool, documentRepo portsrepo.DocumentWriter) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
		documentRepo:   documentRepo,
	}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryFacade
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, direction, party_id, payment_date, amount, original_amount, exchange_rate,
	mode, reference, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.Direction,
		&m.PartyID,
		&m.PaymentDate,
		&m.Amount,
		&m.OriginalAmount,
		&m.ExchangeRate,
		&m.Mode,
		&m.Reference,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePayment persists a payment, its allocations, and the amount_paid and
// status changes on the allocated documents within one transaction.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelPayment(payment)
	insertQuery := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.PaymentID,
		m.Direction,
		m.PartyID,
		m.PaymentDate,
		m.Amount,
		m.OriginalAmount,
		m.ExchangeRate,
		m.Mode,
		m.Reference,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert payment "+m.PaymentID, err)
	}

	allocQuery := `
		INSERT INTO payment_allocations (allocation_id, payment_id, document_id, allocated_amount)
		VALUES ($1, $2, $3, $4);
	`
	for _, alloc := range payment.Allocations {
		am := mapping.ToModelAllocation(alloc)
		if _, err := tx.Exec(ctx, allocQuery, am.AllocationID, m.PaymentID, am.DocumentID, am.AllocatedAmount); err != nil {
			return apperrors.NewAppError(500, "failed to insert allocation for payment "+m.PaymentID, err)
		}
		if err := r.documentRepo.ApplyPaymentToDocumentInTx(ctx, tx, am.DocumentID, am.AllocatedAmount, payment.CreatedBy, payment.CreatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// FindPaymentByID retrieves a payment with its allocations.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment by ID "+paymentID, err)
	}

	payment := mapping.ToDomainPayment(m)
	allocations, err := r.findAllocations(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	payment.Allocations = allocations
	return &payment, nil
}

func (r *PgxPaymentRepository) findAllocations(ctx context.Context, paymentID string) ([]domain.Allocation, error) {
	query := `
		SELECT allocation_id, payment_id, document_id, allocated_amount
		FROM payment_allocations
		WHERE payment_id = $1
		ORDER BY allocation_id;
	`
	rows, err := r.Pool.Query(ctx, query, paymentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query allocations for payment "+paymentID, err)
	}
	defer rows.Close()

	allocations := []domain.Allocation{}
	for rows.Next() {
		var m models.Allocation
		if err := rows.Scan(&m.AllocationID, &m.PaymentID, &m.DocumentID, &m.AllocatedAmount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan allocation row for payment "+paymentID, err)
		}
		allocations = append(allocations, mapping.ToDomainAllocation(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating allocation rows for payment "+paymentID, err)
	}
	return allocations, nil
}

// ListPaymentsByParty retrieves a party's payments with dates in [from, to],
// oldest first. Allocations are not loaded for list views.
func (r *PgxPaymentRepository) ListPaymentsByParty(ctx context.Context, partyID string, direction domain.PaymentDirection, from, to time.Time) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE party_id = $1 AND direction = $2 AND payment_date >= $3 AND payment_date <= $4
		ORDER BY payment_date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, partyID, string(direction), from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments for party "+partyID, err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row for party "+partyID, err)
		}
		payments = append(payments, mapping.ToDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows for party "+partyID, err)
	}
	return payments, nil
}

// DeletePayment removes a payment and reverses its allocations' effects on
// the allocated documents within one transaction.
func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID string, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	allocations, err := r.findAllocations(ctx, paymentID)
	if err != nil {
		return err
	}
	for _, alloc := range allocations {
		if err := r.documentRepo.ApplyPaymentToDocumentInTx(ctx, tx, alloc.DocumentID, alloc.AllocatedAmount.Neg(), userID, now); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM payment_allocations WHERE payment_id = $1;`, paymentID); err != nil {
		return apperrors.NewAppError(500, "failed to delete allocations for payment "+paymentID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete payment "+paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
