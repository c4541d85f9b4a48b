package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gobooks/books_backend/internal/core/domain"
)

// DocumentReader defines read operations for document data
type DocumentReader interface {
	// FindDocumentByID retrieves a document (without lines).
	// Soft-deleted documents are treated as not found.
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// FindLineItemsByDocumentID retrieves the document's lines in insert order.
	FindLineItemsByDocumentID(ctx context.Context, documentID string) ([]domain.LineItem, error)

	// ListDocumentsByParty retrieves a cursor-paginated list of a party's
	// documents of one type, newest first. Returns the page, a token for
	// the next page, and an error.
	ListDocumentsByParty(ctx context.Context, partyID string, docType domain.DocumentType, limit int, nextToken *string) ([]domain.Document, *string, error)
}

// DocumentWriter defines write operations for document data
type DocumentWriter interface {
	// CreateDocument persists a document and its lines within one
	// transaction that also draws the document number; the number is
	// filled into the returned document. Nothing is persisted (and no
	// sequence number is consumed) when any step fails.
	CreateDocument(ctx context.Context, document domain.Document, lines []domain.LineItem) (*domain.Document, error)

	// UpdateDocument rewrites the document header and replaces all of its
	// lines (delete-all, reinsert) in one transaction.
	UpdateDocument(ctx context.Context, document domain.Document, lines []domain.LineItem) error

	// UpdateDocumentStatus sets status; used by cancellation and by
	// payment allocation advancing PENDING -> PARTIAL -> PAID.
	UpdateDocumentStatus(ctx context.Context, documentID string, status domain.DocumentStatus, userID string, now time.Time) error

	// ApplyPaymentToDocumentInTx adjusts amount_paid/balance_due/status of
	// one document inside the caller's transaction, locking the row.
	ApplyPaymentToDocumentInTx(ctx context.Context, tx pgx.Tx, documentID string, delta decimal.Decimal, userID string, now time.Time) error

	// SoftDeleteDocument marks deleted_at.
	SoftDeleteDocument(ctx context.Context, documentID string, userID string, now time.Time) error
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}

// DocumentRepositoryWithTx extends DocumentRepositoryFacade with transaction capabilities
type DocumentRepositoryWithTx interface {
	DocumentRepositoryFacade
	TransactionManager
}
