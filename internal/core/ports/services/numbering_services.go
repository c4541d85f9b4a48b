package services

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/gobooks/books_backend/internal/core/domain"
)

// NumberingSvc manages the per-document-type numbering sequences.
type NumberingSvc interface {
	// NextNumberInTx draws and formats the next document number for docType
	// inside the caller's transaction. The draw is atomic with whatever the
	// transaction commits; a rollback releases the number.
	NextNumberInTx(ctx context.Context, tx pgx.Tx, docType domain.DocumentType) (string, error)

	// GetSequence retrieves the current sequence configuration for docType.
	GetSequence(ctx context.Context, docType domain.DocumentType) (*domain.NumberingSequence, error)

	// UpdateSequenceFormat changes prefix, separator and padding for future
	// numbers. Already-issued numbers are unaffected.
	UpdateSequenceFormat(ctx context.Context, docType domain.DocumentType, prefix, separator string, paddingDigits int, userID string) (*domain.NumberingSequence, error)
}
