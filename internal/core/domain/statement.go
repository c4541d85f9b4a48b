package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementLineKind tags a statement line with the stream it came from.
type StatementLineKind string

const (
	LineInvoice    StatementLineKind = "invoice"
	LineBill       StatementLineKind = "bill"
	LineCreditNote StatementLineKind = "credit_note"
	LineDebitNote  StatementLineKind = "debit_note"
	LinePayment    StatementLineKind = "payment"
)

// Period is a resolved inclusive date range.
type Period struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// StatementLine is one transaction row of a party statement with the
// running balance after applying it.
type StatementLine struct {
	Date           time.Time         `json:"date"`
	Kind           StatementLineKind `json:"kind"`
	DocumentNumber string            `json:"documentNumber"`
	Description    string            `json:"description"`
	Debit          decimal.Decimal   `json:"debit"`
	Credit         decimal.Decimal   `json:"credit"`
	RunningBalance decimal.Decimal   `json:"runningBalance"`
}

// StatementSummary carries the plain column sums of a statement, not the
// running balances.
type StatementSummary struct {
	TotalDebit       decimal.Decimal `json:"totalDebit"`
	TotalCredit      decimal.Decimal `json:"totalCredit"`
	TransactionCount int             `json:"transactionCount"`
}

// Statement is the computed ledger statement for one party over a resolved
// period. It is never persisted; the state is entirely the storage
// snapshot read at build time.
type Statement struct {
	Party          Party            `json:"party"`
	Period         Period           `json:"period"`
	OpeningBalance decimal.Decimal  `json:"openingBalance"`
	Lines          []StatementLine  `json:"lines"`
	ClosingBalance decimal.Decimal  `json:"closingBalance"`
	Summary        StatementSummary `json:"summary"`
}
