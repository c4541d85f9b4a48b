package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/gobooks/books_backend/internal/apperrors"
	"github.com/gobooks/books_backend/internal/core/domain"
	portsrepo "github.com/gobooks/books_backend/internal/core/ports/repositories"
	portssvc "github.com/gobooks/books_backend/internal/core/ports/services"
	"github.com/gobooks/books_backend/internal/utils/fiscal"
)

// statementService assembles party ledger statements. A customer's
// balance grows with what they are billed (debits) and shrinks with
// credit notes and receipts (credits); a vendor's statement is the
// mirror image, tracking what the company owes.
type statementService struct {
	BaseService
	statementRepo portsrepo.StatementRepository
	partyRepo     portsrepo.PartyReader
}

// NewStatementService creates a new StatementService.
func NewStatementService(statementRepo portsrepo.StatementRepository, partyRepo portsrepo.PartyReader) portssvc.StatementSvc {
	return &statementService{
		statementRepo: statementRepo,
		partyRepo:     partyRepo,
	}
}

// Ensure statementService implements the portssvc.StatementSvc interface
var _ portssvc.StatementSvc = (*statementService)(nil)

func statementLineKind(docType domain.DocumentType) domain.StatementLineKind {
	switch docType {
	case domain.Bill:
		return domain.LineBill
	case domain.CreditNote:
		return domain.LineCreditNote
	case domain.DebitNote:
		return domain.LineDebitNote
	default:
		return domain.LineInvoice
	}
}

func paymentDescription(direction domain.PaymentDirection, mode string) string {
	desc := "Payment received"
	if direction == domain.PaymentMade {
		desc = "Payment made"
	}
	if mode != "" {
		desc += " (" + mode + ")"
	}
	return desc
}

// BuildStatement resolves the period, computes the opening balance from
// everything dated before it, and walks the period's transactions in
// chronological order accumulating the running balance.
func (s *statementService) BuildStatement(ctx context.Context, partyID string, q fiscal.PeriodQuery) (*domain.Statement, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	period, err := fiscal.Resolve(q, party.StatementAnchor())
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidRange) {
			return nil, err
		}
		// An unusable explicit range degrades to the as-on-date default
		// rather than failing the whole request.
		s.LogWarn(ctx, "Invalid statement period, falling back to as-on-date",
			slog.String("party_id", partyID),
			slog.String("error", err.Error()))
		period = fiscal.Default(party.StatementAnchor())
	}

	primaryType := domain.PrimaryDocumentType(party.Kind)
	adjustmentType := domain.AdjustmentDocumentType(party.Kind)
	direction := domain.PaymentReceived
	if party.Kind == domain.Vendor {
		direction = domain.PaymentMade
	}

	primaryBefore, err := s.statementRepo.SumDocumentsBefore(ctx, partyID, primaryType, period.StartDate)
	if err != nil {
		return nil, err
	}
	adjustmentBefore, err := s.statementRepo.SumDocumentsBefore(ctx, partyID, adjustmentType, period.StartDate)
	if err != nil {
		return nil, err
	}
	paymentsBefore, err := s.statementRepo.SumPaymentsBefore(ctx, partyID, direction, period.StartDate)
	if err != nil {
		return nil, err
	}

	// Primary documents raise the balance owed; adjustments and payments
	// settle it. This reads identically for both kinds because a vendor
	// statement tracks what the company owes.
	openingBalance := party.OpeningBalance.Add(primaryBefore).Sub(adjustmentBefore).Sub(paymentsBefore).Round(2)

	primaryDocs, err := s.statementRepo.ListDocumentsInRange(ctx, partyID, primaryType, period.StartDate, period.EndDate)
	if err != nil {
		return nil, err
	}
	adjustmentDocs, err := s.statementRepo.ListDocumentsInRange(ctx, partyID, adjustmentType, period.StartDate, period.EndDate)
	if err != nil {
		return nil, err
	}
	payments, err := s.statementRepo.ListPaymentsInRange(ctx, partyID, direction, period.StartDate, period.EndDate)
	if err != nil {
		return nil, err
	}

	// The debit/credit columns mirror by party kind: a customer's invoice
	// debits their statement and settlements credit it, while a vendor's
	// bill lands in the credit column and settlements in debit.
	vendor := party.Kind == domain.Vendor
	charge := func(amount decimal.Decimal) (debit, credit decimal.Decimal) {
		if vendor {
			return decimal.Zero, amount
		}
		return amount, decimal.Zero
	}
	settle := func(amount decimal.Decimal) (debit, credit decimal.Decimal) {
		if vendor {
			return amount, decimal.Zero
		}
		return decimal.Zero, amount
	}

	// Merge order matters: the stable sort below orders by date only, so
	// same-day entries keep this stream order (documents first, then
	// adjustments, then payments). Cancelled documents are excluded from
	// all ledger aggregation.
	lines := make([]domain.StatementLine, 0, len(primaryDocs)+len(adjustmentDocs)+len(payments))
	for _, doc := range primaryDocs {
		if doc.Status == domain.StatusCancelled {
			continue
		}
		debit, credit := charge(doc.TotalAmount)
		lines = append(lines, domain.StatementLine{
			Date:           doc.DocumentDate,
			Kind:           statementLineKind(doc.DocumentType),
			DocumentNumber: doc.DocumentNumber,
			Description:    doc.Notes,
			Debit:          debit,
			Credit:         credit,
		})
	}
	for _, doc := range adjustmentDocs {
		if doc.Status == domain.StatusCancelled {
			continue
		}
		debit, credit := settle(doc.TotalAmount)
		lines = append(lines, domain.StatementLine{
			Date:           doc.DocumentDate,
			Kind:           statementLineKind(doc.DocumentType),
			DocumentNumber: doc.DocumentNumber,
			Description:    doc.Notes,
			Debit:          debit,
			Credit:         credit,
		})
	}
	for _, p := range payments {
		debit, credit := settle(p.Amount)
		lines = append(lines, domain.StatementLine{
			Date:           p.PaymentDate,
			Kind:           domain.LinePayment,
			DocumentNumber: p.Reference,
			Description:    paymentDescription(p.Direction, p.Mode),
			Debit:          debit,
			Credit:         credit,
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Date.Before(lines[j].Date)
	})

	running := openingBalance
	summary := domain.StatementSummary{TransactionCount: len(lines)}
	for i := range lines {
		step := lines[i].Debit.Sub(lines[i].Credit)
		if vendor {
			step = lines[i].Credit.Sub(lines[i].Debit)
		}
		running = running.Add(step).Round(2)
		lines[i].RunningBalance = running
		summary.TotalDebit = summary.TotalDebit.Add(lines[i].Debit)
		summary.TotalCredit = summary.TotalCredit.Add(lines[i].Credit)
	}
	summary.TotalDebit = summary.TotalDebit.Round(2)
	summary.TotalCredit = summary.TotalCredit.Round(2)

	return &domain.Statement{
		Party:          *party,
		Period:         period,
		OpeningBalance: openingBalance,
		Lines:          lines,
		ClosingBalance: running,
		Summary:        summary,
	}, nil
}
