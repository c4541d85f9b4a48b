package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/gobooks/books_backend/internal/apperrors"
	"github.com/gobooks/books_backend/internal/core/domain"
	portsrepo "github.com/gobooks/books_backend/internal/core/ports/repositories"
	portssvc "github.com/gobooks/books_backend/internal/core/ports/services"
)

// numberingService hands out gap-free document numbers per document type.
type numberingService struct {
	BaseService
	sequenceRepo portsrepo.SequenceRepositoryWithTx
}

// NewNumberingService creates a new NumberingService.
func NewNumberingService(sequenceRepo portsrepo.SequenceRepositoryWithTx) portssvc.NumberingSvc {
	return &numberingService{sequenceRepo: sequenceRepo}
}

// Ensure numberingService implements the portssvc.NumberingSvc interface
var _ portssvc.NumberingSvc = (*numberingService)(nil)

// NextNumberInTx draws the next formatted number inside the caller's
// transaction. A conflict is surfaced, never retried: the caller's
// rollback is what keeps the sequence gap-free.
func (s *numberingService) NextNumberInTx(ctx context.Context, tx pgx.Tx, docType domain.DocumentType) (string, error) {
	number, err := s.sequenceRepo.NextDocumentNumberInTx(ctx, tx, docType)
	if err != nil {
		s.LogError(ctx, err, "Failed to draw document number", slog.String("document_type", string(docType)))
		return "", err
	}
	s.LogDebug(ctx, "Document number drawn", slog.String("document_type", string(docType)), slog.String("number", number))
	return number, nil
}

// GetSequence returns the sequence row for docType, synthesizing the
// default configuration when no document has been numbered yet.
func (s *numberingService) GetSequence(ctx context.Context, docType domain.DocumentType) (*domain.NumberingSequence, error) {
	seq, err := s.sequenceRepo.FindSequence(ctx, docType)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			def := domain.DefaultSequence(docType)
			return &def, nil
		}
		return nil, err
	}
	return seq, nil
}

// UpdateSequenceFormat changes how future numbers are rendered. The
// counter is untouched so already-issued numbers keep their place.
func (s *numberingService) UpdateSequenceFormat(ctx context.Context, docType domain.DocumentType, prefix, separator string, paddingDigits int, userID string) (*domain.NumberingSequence, error) {
	if prefix == "" || paddingDigits < 1 || paddingDigits > 10 {
		return nil, apperrors.NewValidationError("prefix is required and padding must be between 1 and 10")
	}

	seq := domain.NumberingSequence{
		DocumentType:  docType,
		Prefix:        prefix,
		Separator:     separator,
		PaddingDigits: paddingDigits,
	}
	if err := s.sequenceRepo.UpdateSequenceFormat(ctx, seq); err != nil {
		s.LogError(ctx, err, "Failed to update sequence format", slog.String("document_type", string(docType)))
		return nil, err
	}

	s.LogInfo(ctx, "Sequence format updated",
		slog.String("document_type", string(docType)),
		slog.String("prefix", prefix),
		slog.String("updated_by", userID))
	return s.sequenceRepo.FindSequence(ctx, docType)
}
