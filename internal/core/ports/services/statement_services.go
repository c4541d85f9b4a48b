package services

import (
	"context"

	"github.com/gobooks/books_backend/internal/core/domain"
	"github.com/gobooks/books_backend/internal/utils/fiscal"
)

// StatementSvc builds party ledger statements over a resolved period.
type StatementSvc interface {
	// BuildStatement resolves the requested period and assembles the party's
	// statement: opening balance, merged chronological transactions with a
	// running balance, closing balance and totals. An unresolvable period
	// falls back to the as-on-date default.
	BuildStatement(ctx context.Context, partyID string, q fiscal.PeriodQuery) (*domain.Statement, error)
}
