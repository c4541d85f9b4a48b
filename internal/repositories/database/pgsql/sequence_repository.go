package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gobooks/books_backend/internal/apperrors"
	"github.com/gobooks/books_backend/internal/core/domain"
	portsrepo "github.com/gobooks/books_backend/internal/core/ports/repositories"
	"github.com/gobooks/books_backend/internal/models"
)

type PgxSequenceRepository struct {
	BaseRepository
}

// newPgxSequenceRepository creates a new repository for document numbering
// sequences.
func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepositoryWithTx {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSequenceRepository implements portsrepo.SequenceRepositoryWithTx
var _ portsrepo.SequenceRepositoryWithTx = (*PgxSequenceRepository)(nil)

// NextDocumentNumberInTx draws the next number for docType inside the
// caller's transaction. The sequence row is seeded on first use from the
// existing document count, so numbering continues correctly on databases
// that predate the sequences table. The draw itself is a single
// UPDATE..RETURNING, so concurrent transactions serialize on the row and
// never observe the same value.
func (r *PgxSequenceRepository) NextDocumentNumberInTx(ctx context.Context, tx pgx.Tx, docType domain.DocumentType) (string, error) {
	def := domain.DefaultSequence(docType)

	seedQuery := `
		INSERT INTO numbering_sequences (document_type, prefix, separator, padding_digits, next_number)
		SELECT $1, $2, $3, $4, COUNT(*) + 1
		FROM documents
		WHERE document_type = $1
		ON CONFLICT (document_type) DO NOTHING;
	`
	if _, err := tx.Exec(ctx, seedQuery, string(docType), def.Prefix, def.Separator, def.PaddingDigits); err != nil {
		return "", apperrors.NewAppError(500, "failed to seed numbering sequence for "+string(docType), err)
	}

	drawQuery := `
		UPDATE numbering_sequences
		SET next_number = next_number + 1
		WHERE document_type = $1
		RETURNING prefix, separator, padding_digits, next_number - 1;
	`
	var seq domain.NumberingSequence
	var drawn int64
	err := tx.QueryRow(ctx, drawQuery, string(docType)).Scan(&seq.Prefix, &seq.Separator, &seq.PaddingDigits, &drawn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Seed raced with nothing and the row is still absent.
			// The caller must roll back; retrying here could burn numbers.
			return "", apperrors.ErrConflict
		}
		return "", apperrors.NewAppError(500, "failed to draw document number for "+string(docType), err)
	}
	seq.DocumentType = docType
	return seq.FormatNumber(drawn), nil
}

// FindSequence reads the current sequence row for docType.
func (r *PgxSequenceRepository) FindSequence(ctx context.Context, docType domain.DocumentType) (*domain.NumberingSequence, error) {
	query := `
		SELECT document_type, prefix, separator, padding_digits, next_number
		FROM numbering_sequences
		WHERE document_type = $1;
	`
	var m models.NumberingSequence
	err := r.Pool.QueryRow(ctx, query, string(docType)).Scan(
		&m.DocumentType,
		&m.Prefix,
		&m.Separator,
		&m.PaddingDigits,
		&m.NextNumber,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find sequence for "+string(docType), err)
	}
	seq := domain.NumberingSequence{
		DocumentType:  domain.DocumentType(m.DocumentType),
		Prefix:        m.Prefix,
		Separator:     m.Separator,
		PaddingDigits: m.PaddingDigits,
		NextNumber:    m.NextNumber,
	}
	return &seq, nil
}

// UpdateSequenceFormat changes prefix/separator/padding without touching
// the counter. The row is created when the format is configured before any
// document of that type has been numbered.
func (r *PgxSequenceRepository) UpdateSequenceFormat(ctx context.Context, seq domain.NumberingSequence) error {
	query := `
		INSERT INTO numbering_sequences (document_type, prefix, separator, padding_digits, next_number)
		SELECT $1, $2, $3, $4, COUNT(*) + 1
		FROM documents
		WHERE document_type = $1
		ON CONFLICT (document_type) DO UPDATE
		SET prefix = EXCLUDED.prefix, separator = EXCLUDED.separator, padding_digits = EXCLUDED.padding_digits;
	`
	if _, err := r.Pool.Exec(ctx, query, string(seq.DocumentType), seq.Prefix, seq.Separator, seq.PaddingDigits); err != nil {
		return apperrors.NewAppError(500, "failed to update sequence format for "+string(seq.DocumentType), err)
	}
	return nil
}
