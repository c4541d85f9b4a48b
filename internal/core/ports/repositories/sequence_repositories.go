package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/gobooks/books_backend/internal/core/domain"
)

// SequenceRepository hands out document numbers from the persisted
// numbering_sequences rows. Drawing a number and advancing the counter is
// one atomic step: two concurrent callers never observe the same value.
type SequenceRepository interface {
	// NextDocumentNumberInTx draws the next formatted number for docType
	// inside the caller's transaction, seeding the sequence row from the
	// existing document count when it does not exist yet. Failure of the
	// atomic step returns apperrors.ErrConflict; the caller's transaction
	// must then roll back so no number is burned.
	NextDocumentNumberInTx(ctx context.Context, tx pgx.Tx, docType domain.DocumentType) (string, error)

	// FindSequence reads the current sequence row for introspection.
	FindSequence(ctx context.Context, docType domain.DocumentType) (*domain.NumberingSequence, error)

	// UpdateSequenceFormat changes prefix/separator/padding without
	// touching the counter.
	UpdateSequenceFormat(ctx context.Context, seq domain.NumberingSequence) error
}

// SequenceRepositoryWithTx extends SequenceRepository with transaction capabilities,
// for callers that draw a number outside a document-creation transaction.
type SequenceRepositoryWithTx interface {
	SequenceRepository
	TransactionManager
}
