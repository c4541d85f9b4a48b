package services

import (
	"context"

	"github.com/gobooks/books_backend/internal/core/domain"
	"github.com/gobooks/books_backend/internal/dto"
)

// DocumentReaderSvc defines read operations for financial documents.
type DocumentReaderSvc interface {
	// GetDocumentByID retrieves a document and its line items.
	GetDocumentByID(ctx context.Context, docType domain.DocumentType, documentID string) (*domain.Document, []domain.LineItem, error)

	// ListDocumentsByParty retrieves a cursor-paginated list of a party's
	// documents of the given type, newest first.
	ListDocumentsByParty(ctx context.Context, docType domain.DocumentType, partyID string, limit int, nextToken string) ([]domain.Document, string, error)
}

// DocumentWriterSvc defines write operations for financial documents.
// Creation prices all lines, computes totals and draws the document number
// atomically with the insert.
type DocumentWriterSvc interface {
	// CreateDocument validates, prices and persists a new document.
	CreateDocument(ctx context.Context, docType domain.DocumentType, req dto.CreateDocumentRequest, userID string) (*domain.Document, []domain.LineItem, error)

	// UpdateDocument replaces a mutable document's details and line items,
	// repricing everything. The document number never changes.
	UpdateDocument(ctx context.Context, docType domain.DocumentType, documentID string, req dto.UpdateDocumentRequest, userID string) (*domain.Document, []domain.LineItem, error)

	// CancelDocument marks a document cancelled. Cancelled documents keep
	// their number and drop out of statements and balances.
	CancelDocument(ctx context.Context, docType domain.DocumentType, documentID string, userID string) error

	// DeleteDocument soft-deletes a document.
	DeleteDocument(ctx context.Context, docType domain.DocumentType, documentID string, userID string) error
}

// DocumentSvcFacade combines all document-related service interfaces.
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
}
