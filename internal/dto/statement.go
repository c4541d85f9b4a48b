package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gobooks/books_backend/internal/apperrors"
	"github.com/gobooks/books_backend/internal/core/domain"
	"github.com/gobooks/books_backend/internal/utils/fiscal"
)

// StatementParams defines the query parameters of a statement request.
// Four period modes are understood; see fiscal.Resolve for precedence.
// An unrecognized mode is not a binding error, it simply matches none of
// the modes and the resolver falls through to the remaining ones.
type StatementParams struct {
	Mode      string `form:"mode"`
	StartDate string `form:"startDate"` // YYYY-MM-DD
	EndDate   string `form:"endDate"`   // YYYY-MM-DD
	Month     int    `form:"month"`
	Year      int    `form:"year"`
}

// PeriodQuery parses the raw parameters into a fiscal.PeriodQuery.
// Unparsable dates surface as ErrInvalidRange so the statement builder
// can apply its documented as-on-date fallback.
func (p StatementParams) PeriodQuery() (fiscal.PeriodQuery, error) {
	q := fiscal.PeriodQuery{Mode: p.Mode, Month: p.Month, Year: p.Year}
	if p.StartDate != "" {
		d, err := time.Parse(dateLayout, p.StartDate)
		if err != nil {
			return q, apperrors.ErrInvalidRange
		}
		q.StartDate = &d
	}
	if p.EndDate != "" {
		d, err := time.Parse(dateLayout, p.EndDate)
		if err != nil {
			return q, apperrors.ErrInvalidRange
		}
		q.EndDate = &d
	}
	return q, nil
}

// StatementLineResponse is one transaction row of the statement response.
type StatementLineResponse struct {
	Date           string          `json:"date"` // YYYY-MM-DD
	Type           string          `json:"type"`
	DocumentNumber string          `json:"documentNumber"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// StatementResponse is the JSON shape of a party statement.
type StatementResponse struct {
	Party struct {
		PartyID       string `json:"partyID"`
		Kind          string `json:"kind"`
		Name          string `json:"name"`
		GSTIN         string `json:"gstin,omitempty"`
		PlaceOfSupply string `json:"placeOfSupply,omitempty"`
	} `json:"party"`
	Period struct {
		StartDate  string `json:"startDate"`
		EndDate    string `json:"endDate"`
		FiscalYear string `json:"fiscalYear"` // label only, April-March
	} `json:"period"`
	OpeningBalance decimal.Decimal         `json:"openingBalance"`
	Transactions   []StatementLineResponse `json:"transactions"`
	ClosingBalance decimal.Decimal         `json:"closingBalance"`
	Summary        struct {
		TotalDebit       decimal.Decimal `json:"totalDebit"`
		TotalCredit      decimal.Decimal `json:"totalCredit"`
		TransactionCount int             `json:"transactionCount"`
	} `json:"summary"`
}

// ToStatementResponse converts a domain.Statement to its JSON DTO.
func ToStatementResponse(s *domain.Statement) StatementResponse {
	var resp StatementResponse
	resp.Party.PartyID = s.Party.PartyID
	resp.Party.Kind = string(s.Party.Kind)
	resp.Party.Name = s.Party.Name
	resp.Party.GSTIN = s.Party.GSTIN
	resp.Party.PlaceOfSupply = s.Party.PlaceOfSupply
	resp.Period.StartDate = s.Period.StartDate.Format(dateLayout)
	resp.Period.EndDate = s.Period.EndDate.Format(dateLayout)
	resp.Period.FiscalYear = fiscal.FinancialYearLabel(s.Period.EndDate)
	resp.OpeningBalance = s.OpeningBalance
	resp.Transactions = make([]StatementLineResponse, len(s.Lines))
	for i, l := range s.Lines {
		resp.Transactions[i] = StatementLineResponse{
			Date:           l.Date.Format(dateLayout),
			Type:           string(l.Kind),
			DocumentNumber: l.DocumentNumber,
			Description:    l.Description,
			Debit:          l.Debit,
			Credit:         l.Credit,
			RunningBalance: l.RunningBalance,
		}
	}
	resp.ClosingBalance = s.ClosingBalance
	resp.Summary.TotalDebit = s.Summary.TotalDebit
	resp.Summary.TotalCredit = s.Summary.TotalCredit
	resp.Summary.TransactionCount = s.Summary.TransactionCount
	return resp
}
