package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gobooks/books_backend/internal/apperrors"
	"github.com/gobooks/books_backend/internal/core/domain"
	portsrepo "github.com/gobooks/books_backend/internal/core/ports/repositories"
	portssvc "github.com/gobooks/books_backend/internal/core/ports/services"
	"github.com/gobooks/books_backend/internal/dto"
	"github.com/gobooks/books_backend/internal/utils/pricing"
)

// documentService provides invoice, bill, credit note and debit note
// operations. All pricing runs through the pricing package; the repository
// owns the transaction that draws the document number.
type documentService struct {
	BaseService
	documentRepo portsrepo.DocumentRepositoryWithTx
	partySvc     portssvc.PartyReaderSvc
	homeState    string
}

// DocumentServiceOption is a functional option for configuring the
// document service.
type DocumentServiceOption func(*documentService)

// WithHomeState sets the company's home state, the supply side of every
// GST split.
func WithHomeState(state string) DocumentServiceOption {
	return func(s *documentService) {
		s.homeState = state
	}
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(documentRepo portsrepo.DocumentRepositoryWithTx, partySvc portssvc.PartyReaderSvc, options ...DocumentServiceOption) portssvc.DocumentSvcFacade {
	svc := &documentService{
		documentRepo: documentRepo,
		partySvc:     partySvc,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure documentService implements the portssvc.DocumentSvcFacade interface
var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// validateDocTypeForParty checks that the document type belongs to the
// party's side of the books: invoices and credit notes to customers,
// bills and debit notes to vendors.
func validateDocTypeForParty(docType domain.DocumentType, kind domain.PartyKind) error {
	if docType == domain.PrimaryDocumentType(kind) || docType == domain.AdjustmentDocumentType(kind) {
		return nil
	}
	return apperrors.NewValidationError("document type " + string(docType) + " is not valid for a " + string(kind))
}

// priceDocument runs every line through the pricer and rolls up the
// totals. partyState is the document's place of supply falling back to
// the party's.
func (s *documentService) priceDocument(req dto.CreateDocumentRequest, docType domain.DocumentType, partyState string) ([]pricing.PricedLine, pricing.DocumentTotals) {
	priced := make([]pricing.PricedLine, len(req.LineItems))
	for i, li := range req.LineItems {
		priced[i] = pricing.PriceLine(pricing.LineInput{
			Quantity:        li.Quantity,
			Rate:            li.Rate,
			DiscountPercent: li.DiscountPercent,
			GSTRate:         li.GSTRate,
		}, s.homeState, partyState)
	}

	shipping := req.ShippingCharge
	roundingAdj := req.RoundingAdj
	if docType != domain.Invoice {
		shipping = decimal.Zero
		roundingAdj = decimal.Zero
	}
	totals := pricing.TotalDocument(priced, req.DiscountAmount, shipping, roundingAdj)
	return priced, totals
}

func (s *documentService) buildLineItems(documentID string, req dto.CreateDocumentRequest, priced []pricing.PricedLine) []domain.LineItem {
	lines := make([]domain.LineItem, len(req.LineItems))
	for i, li := range req.LineItems {
		lines[i] = domain.LineItem{
			LineItemID:      uuid.NewString(),
			DocumentID:      documentID,
			Name:            li.Name,
			Description:     li.Description,
			Quantity:        li.Quantity,
			Rate:            li.Rate,
			DiscountPercent: li.DiscountPercent,
			GSTRate:         li.GSTRate,
			DiscountAmount:  priced[i].DiscountAmount,
			IGSTAmount:      priced[i].IGST,
			CGSTAmount:      priced[i].CGST,
			SGSTAmount:      priced[i].SGST,
			Amount:          priced[i].Amount,
		}
	}
	return lines
}

func (s *documentService) CreateDocument(ctx context.Context, docType domain.DocumentType, req dto.CreateDocumentRequest, userID string) (*domain.Document, []domain.LineItem, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}
	docDate, err := req.ParsedDate()
	if err != nil {
		return nil, nil, err
	}
	if docType != domain.Invoice && (!req.ShippingCharge.IsZero() || !req.RoundingAdj.IsZero()) {
		return nil, nil, apperrors.NewValidationError("shipping and rounding adjustment apply to invoices only")
	}

	party, err := s.partySvc.GetPartyByID(ctx, req.PartyID)
	if err != nil {
		return nil, nil, err
	}
	if !party.IsActive {
		return nil, nil, apperrors.NewValidationError("party " + party.PartyID + " is deactivated")
	}
	if err := validateDocTypeForParty(docType, party.Kind); err != nil {
		return nil, nil, err
	}

	partyState := req.PlaceOfSupply
	if partyState == "" {
		partyState = party.PlaceOfSupply
	}
	priced, totals := s.priceDocument(req, docType, partyState)

	now := time.Now()
	doc := domain.Document{
		DocumentID:     uuid.NewString(),
		DocumentType:   docType,
		DocumentDate:   docDate,
		PartyID:        party.PartyID,
		Status:         domain.StatusPending,
		PlaceOfSupply:  req.PlaceOfSupply,
		SubTotal:       totals.SubTotal,
		DiscountAmount: req.DiscountAmount.Round(2),
		IGSTAmount:     totals.IGSTTotal,
		CGSTAmount:     totals.CGSTTotal,
		SGSTAmount:     totals.SGSTTotal,
		TotalTax:       totals.TotalTax,
		ShippingCharge: req.ShippingCharge,
		RoundingAdj:    req.RoundingAdj,
		TotalAmount:    totals.TotalAmount,
		AmountPaid:     decimal.Zero,
		BalanceDue:     totals.TotalAmount,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	lines := s.buildLineItems(doc.DocumentID, req, priced)

	created, err := s.documentRepo.CreateDocument(ctx, doc, lines)
	if err != nil {
		s.LogError(ctx, err, "Failed to create document",
			slog.String("document_type", string(docType)),
			slog.String("party_id", party.PartyID))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Document created",
		slog.String("document_id", created.DocumentID),
		slog.String("document_number", created.DocumentNumber),
		slog.String("document_type", string(docType)))
	return created, lines, nil
}

func (s *documentService) GetDocumentByID(ctx context.Context, docType domain.DocumentType, documentID string) (*domain.Document, []domain.LineItem, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, nil, err
	}
	if doc.DocumentType != docType {
		// A bill fetched through the invoice route reads as absent.
		return nil, nil, apperrors.ErrNotFound
	}
	lines, err := s.documentRepo.FindLineItemsByDocumentID(ctx, documentID)
	if err != nil {
		return nil, nil, err
	}
	return doc, lines, nil
}

func (s *documentService) ListDocumentsByParty(ctx context.Context, docType domain.DocumentType, partyID string, limit int, nextToken string) ([]domain.Document, string, error) {
	var tokenPtr *string
	if nextToken != "" {
		tokenPtr = &nextToken
	}
	docs, newToken, err := s.documentRepo.ListDocumentsByParty(ctx, partyID, docType, limit, tokenPtr)
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents", slog.String("party_id", partyID))
		return nil, "", err
	}
	next := ""
	if newToken != nil {
		next = *newToken
	}
	return docs, next, nil
}

func (s *documentService) UpdateDocument(ctx context.Context, docType domain.DocumentType, documentID string, req dto.UpdateDocumentRequest, userID string) (*domain.Document, []domain.LineItem, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}
	docDate, err := req.ParsedDate()
	if err != nil {
		return nil, nil, err
	}

	existing, _, err := s.GetDocumentByID(ctx, docType, documentID)
	if err != nil {
		return nil, nil, err
	}
	if !existing.IsMutable() {
		return nil, nil, apperrors.NewValidationError("document " + existing.DocumentNumber + " can no longer be edited")
	}
	if docType != domain.Invoice && (!req.ShippingCharge.IsZero() || !req.RoundingAdj.IsZero()) {
		return nil, nil, apperrors.NewValidationError("shipping and rounding adjustment apply to invoices only")
	}

	party, err := s.partySvc.GetPartyByID(ctx, req.PartyID)
	if err != nil {
		return nil, nil, err
	}
	if err := validateDocTypeForParty(docType, party.Kind); err != nil {
		return nil, nil, err
	}

	partyState := req.PlaceOfSupply
	if partyState == "" {
		partyState = party.PlaceOfSupply
	}
	priced, totals := s.priceDocument(req, docType, partyState)

	if existing.AmountPaid.GreaterThan(totals.TotalAmount) {
		return nil, nil, apperrors.NewValidationError("new total is below the amount already paid")
	}

	doc := *existing
	doc.DocumentDate = docDate
	doc.PartyID = party.PartyID
	doc.PlaceOfSupply = req.PlaceOfSupply
	doc.SubTotal = totals.SubTotal
	doc.DiscountAmount = req.DiscountAmount.Round(2)
	doc.IGSTAmount = totals.IGSTTotal
	doc.CGSTAmount = totals.CGSTTotal
	doc.SGSTAmount = totals.SGSTTotal
	doc.TotalTax = totals.TotalTax
	doc.ShippingCharge = req.ShippingCharge
	doc.RoundingAdj = req.RoundingAdj
	doc.TotalAmount = totals.TotalAmount
	doc.BalanceDue = pricing.BalanceDue(totals.TotalAmount, existing.AmountPaid)
	doc.Notes = req.Notes
	doc.LastUpdatedAt = time.Now()
	doc.LastUpdatedBy = userID

	lines := s.buildLineItems(doc.DocumentID, req, priced)
	if err := s.documentRepo.UpdateDocument(ctx, doc, lines); err != nil {
		s.LogError(ctx, err, "Failed to update document", slog.String("document_id", documentID))
		return nil, nil, err
	}
	return &doc, lines, nil
}

func (s *documentService) CancelDocument(ctx context.Context, docType domain.DocumentType, documentID string, userID string) error {
	doc, _, err := s.GetDocumentByID(ctx, docType, documentID)
	if err != nil {
		return err
	}
	if doc.Status == domain.StatusCancelled {
		return apperrors.NewValidationError("document " + doc.DocumentNumber + " is already cancelled")
	}
	if doc.AmountPaid.IsPositive() {
		return apperrors.NewValidationError("document " + doc.DocumentNumber + " has payments applied; delete those first")
	}
	if err := s.documentRepo.UpdateDocumentStatus(ctx, documentID, domain.StatusCancelled, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to cancel document", slog.String("document_id", documentID))
		return err
	}
	s.LogInfo(ctx, "Document cancelled", slog.String("document_id", documentID), slog.String("document_number", doc.DocumentNumber))
	return nil
}

func (s *documentService) DeleteDocument(ctx context.Context, docType domain.DocumentType, documentID string, userID string) error {
	doc, _, err := s.GetDocumentByID(ctx, docType, documentID)
	if err != nil {
		return err
	}
	if doc.AmountPaid.IsPositive() {
		return apperrors.NewValidationError("document " + doc.DocumentNumber + " has payments applied; delete those first")
	}
	if err := s.documentRepo.SoftDeleteDocument(ctx, documentID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to delete document", slog.String("document_id", documentID))
		return err
	}
	s.LogInfo(ctx, "Document deleted", slog.String("document_id", documentID))
	return nil
}
