package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/gobooks/books_backend/internal/apperrors"
	"github.com/gobooks/books_backend/internal/core/domain"
	portsrepo "github.com/gobooks/books_backend/internal/core/ports/repositories"
	"github.com/gobooks/books_backend/internal/models"
	"github.com/gobooks/books_backend/internal/utils/mapping"
	"github.com/gobooks/books_backend/internal/utils/pagination"
)

type PgxDocumentRepository struct {
	BaseRepository
	sequenceRepo portsrepo.SequenceRepository
}

// newPgxDocumentRepository creates a new repository for document and line
// item data.
func newPgxDocumentRepository(pool *pgxpool.Pool, sequenceRepo portsrepo.SequenceRepository) portsrepo.DocumentRepositoryWithTx {
	return &PgxDocumentRepository{
		BaseRepository: BaseRepository{Pool: pool},
		sequenceRepo:   sequenceRepo,
	}
}

// Ensure PgxDocumentRepository implements portsrepo.DocumentRepositoryWithTx
var _ portsrepo.DocumentRepositoryWithTx = (*PgxDocumentRepository)(nil)

const documentColumns = `document_id, document_type, document_number, document_date, party_id, status, place_of_supply,
	sub_total, discount_amount, igst_amount, cgst_amount, sgst_amount, total_tax,
	shipping_charge, rounding_adj, total_amount, amount_paid, balance_due, notes, deleted_at,
	created_at, created_by, last_updated_at, last_updated_by`

func scanDocument(row pgx.Row) (models.Document, error) {
	var m models.Document
	err := row.Scan(
		&m.DocumentID,
		&m.DocumentType,
		&m.DocumentNumber,
		&m.DocumentDate,
		&m.PartyID,
		&m.Status,
		&m.PlaceOfSupply,
		&m.SubTotal,
		&m.DiscountAmount,
		&m.IGSTAmount,
		&m.CGSTAmount,
		&m.SGSTAmount,
		&m.TotalTax,
		&m.ShippingCharge,
		&m.RoundingAdj,
		&m.TotalAmount,
		&m.AmountPaid,
		&m.BalanceDue,
		&m.Notes,
		&m.DeletedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

const lineItemInsertQuery = `
	INSERT INTO line_items (line_item_id, document_id, line_number, name, description, quantity, rate,
		discount_percent, gst_rate, discount_amount, igst_amount, cgst_amount, sgst_amount, amount)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
`

func queueLineItems(batch *pgx.Batch, documentID string, lines []domain.LineItem) {
	for i, line := range lines {
		m := mapping.ToModelLineItem(line)
		m.DocumentID = documentID
		m.LineNumber = i + 1
		batch.Queue(lineItemInsertQuery,
			m.LineItemID,
			m.DocumentID,
			m.LineNumber,
			m.Name,
			m.Description,
			m.Quantity,
			m.Rate,
			m.DiscountPercent,
			m.GSTRate,
			m.DiscountAmount,
			m.IGSTAmount,
			m.CGSTAmount,
			m.SGSTAmount,
			m.Amount,
		)
	}
}

// CreateDocument persists a document and its lines in one transaction that
// also draws the document number. A failure at any step rolls everything
// back, so no number is consumed by a failed creation.
func (r *PgxDocumentRepository) CreateDocument(ctx context.Context, document domain.Document, lines []domain.LineItem) (*domain.Document, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	number, err := r.sequenceRepo.NextDocumentNumberInTx(ctx, tx, document.DocumentType)
	if err != nil {
		return nil, err
	}
	document.DocumentNumber = number

	m := mapping.ToModelDocument(document)
	insertQuery := `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.DocumentID,
		m.DocumentType,
		m.DocumentNumber,
		m.DocumentDate,
		m.PartyID,
		m.Status,
		m.PlaceOfSupply,
		m.SubTotal,
		m.DiscountAmount,
		m.IGSTAmount,
		m.CGSTAmount,
		m.SGSTAmount,
		m.TotalTax,
		m.ShippingCharge,
		m.RoundingAdj,
		m.TotalAmount,
		m.AmountPaid,
		m.BalanceDue,
		m.Notes,
		m.DeletedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert document "+m.DocumentID, err)
	}

	batch := &pgx.Batch{}
	queueLineItems(batch, document.DocumentID, lines)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert line items for document "+m.DocumentID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &document, nil
}

// UpdateDocument rewrites the header and replaces all lines in one
// transaction. The document number is never touched.
func (r *PgxDocumentRepository) UpdateDocument(ctx context.Context, document domain.Document, lines []domain.LineItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelDocument(document)
	updateQuery := `
		UPDATE documents
		SET document_date = $2, party_id = $3, place_of_supply = $4,
		    sub_total = $5, discount_amount = $6, igst_amount = $7, cgst_amount = $8, sgst_amount = $9,
		    total_tax = $10, shipping_charge = $11, rounding_adj = $12, total_amount = $13,
		    amount_paid = $14, balance_due = $15, status = $16, notes = $17,
		    last_updated_at = $18, last_updated_by = $19
		WHERE document_id = $1 AND deleted_at IS NULL;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		m.DocumentID,
		m.DocumentDate,
		m.PartyID,
		m.PlaceOfSupply,
		m.SubTotal,
		m.DiscountAmount,
		m.IGSTAmount,
		m.CGSTAmount,
		m.SGSTAmount,
		m.TotalTax,
		m.ShippingCharge,
		m.RoundingAdj,
		m.TotalAmount,
		m.AmountPaid,
		m.BalanceDue,
		m.Status,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update document "+m.DocumentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM line_items WHERE document_id = $1;`, m.DocumentID); err != nil {
		return apperrors.NewAppError(500, "failed to clear line items for document "+m.DocumentID, err)
	}

	batch := &pgx.Batch{}
	queueLineItems(batch, document.DocumentID, lines)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert line items for document "+m.DocumentID, err)
	}

	return r.Commit(ctx, tx)
}

// FindDocumentByID retrieves a document without its lines. Soft-deleted
// documents read as not found.
func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE document_id = $1 AND deleted_at IS NULL;`
	m, err := scanDocument(r.Pool.QueryRow(ctx, query, documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find document by ID "+documentID, err)
	}
	d := mapping.ToDomainDocument(m)
	return &d, nil
}

// FindLineItemsByDocumentID retrieves the document's lines in insert order.
func (r *PgxDocumentRepository) FindLineItemsByDocumentID(ctx context.Context, documentID string) ([]domain.LineItem, error) {
	query := `
		SELECT line_item_id, document_id, name, description, quantity, rate,
		       discount_percent, gst_rate, discount_amount, igst_amount, cgst_amount, sgst_amount, amount
		FROM line_items
		WHERE document_id = $1
		ORDER BY line_number;
	`
	rows, err := r.Pool.Query(ctx, query, documentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query line items for document "+documentID, err)
	}
	defer rows.Close()

	items := []models.LineItem{}
	for rows.Next() {
		var m models.LineItem
		err := rows.Scan(
			&m.LineItemID,
			&m.DocumentID,
			&m.Name,
			&m.Description,
			&m.Quantity,
			&m.Rate,
			&m.DiscountPercent,
			&m.GSTRate,
			&m.DiscountAmount,
			&m.IGSTAmount,
			&m.CGSTAmount,
			&m.SGSTAmount,
			&m.Amount,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line item row for document "+documentID, err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line item rows for document "+documentID, err)
	}
	return mapping.ToDomainLineItemSlice(items), nil
}

// ListDocumentsByParty retrieves a token-paginated page of a party's
// documents of one type, newest first.
func (r *PgxDocumentRepository) ListDocumentsByParty(ctx context.Context, partyID string, docType domain.DocumentType, limit int, nextToken *string) ([]domain.Document, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to know whether another page exists.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE party_id = $1 AND document_type = $2 AND deleted_at IS NULL
	`
	orderByClause := `ORDER BY document_date DESC, created_at DESC`

	args := []interface{}{partyID, string(docType)}
	query := baseQuery

	if nextToken != nil && *nextToken != "" {
		lastDocumentDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (document_date, created_at) < ($3, $4)`
		args = append(args, lastDocumentDate, lastCreatedAt)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query documents for party "+partyID, err)
	}
	defer rows.Close()

	docs := make([]models.Document, 0, fetchLimit)
	for rows.Next() {
		m, err := scanDocument(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan document row for party "+partyID, err)
		}
		docs = append(docs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating document rows for party "+partyID, err)
	}

	var newNextToken *string
	if len(docs) > limit {
		docs = docs[:limit]
		last := docs[len(docs)-1]
		token := pagination.EncodeToken(last.DocumentDate, last.CreatedAt)
		newNextToken = &token
	}
	return mapping.ToDomainDocumentSlice(docs), newNextToken, nil
}

// UpdateDocumentStatus sets the document status.
func (r *PgxDocumentRepository) UpdateDocumentStatus(ctx context.Context, documentID string, status domain.DocumentStatus, userID string, now time.Time) error {
	query := `
		UPDATE documents
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE document_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, documentID, string(status), now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of document "+documentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ApplyPaymentToDocumentInTx locks one document row and shifts its
// amount_paid/balance_due by delta, recomputing the payment status. A
// negative delta reverses a prior allocation.
func (r *PgxDocumentRepository) ApplyPaymentToDocumentInTx(ctx context.Context, tx pgx.Tx, documentID string, delta decimal.Decimal, userID string, now time.Time) error {
	lockQuery := `
		SELECT total_amount, amount_paid, status
		FROM documents
		WHERE document_id = $1 AND deleted_at IS NULL
		FOR UPDATE;
	`
	var totalAmount, amountPaid decimal.Decimal
	var status string
	err := tx.QueryRow(ctx, lockQuery, documentID).Scan(&totalAmount, &amountPaid, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock document "+documentID, err)
	}
	if status == string(domain.StatusCancelled) {
		return apperrors.ErrValidation
	}

	newPaid := amountPaid.Add(delta)
	if newPaid.IsNegative() || newPaid.GreaterThan(totalAmount) {
		return apperrors.ErrValidation
	}
	newBalance := totalAmount.Sub(newPaid)

	newStatus := domain.StatusPending
	switch {
	case newBalance.IsZero() && newPaid.IsPositive():
		newStatus = domain.StatusPaid
	case newPaid.IsPositive():
		newStatus = domain.StatusPartial
	}

	updateQuery := `
		UPDATE documents
		SET amount_paid = $2, balance_due = $3, status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE document_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, documentID, newPaid, newBalance, string(newStatus), now, userID); err != nil {
		return apperrors.NewAppError(500, "failed to apply payment to document "+documentID, err)
	}
	return nil
}

// SoftDeleteDocument marks deleted_at; the row stays for audit but drops
// out of every query.
func (r *PgxDocumentRepository) SoftDeleteDocument(ctx context.Context, documentID string, userID string, now time.Time) error {
	query := `
		UPDATE documents
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE document_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, documentID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to soft delete document "+documentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
