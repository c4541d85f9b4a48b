// Package gst implements India's GST component split. A supply between two
// parties in the same state is intra-state and taxed as CGST+SGST; any
// other supply is inter-state and taxed as IGST.
package gst

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TaxSplit is a tax amount broken into its GST components. At most one of
// IGST or the CGST/SGST pair is non-zero.
type TaxSplit struct {
	IGST decimal.Decimal `json:"igst"`
	CGST decimal.Decimal `json:"cgst"`
	SGST decimal.Decimal `json:"sgst"`
}

// Total returns IGST + CGST + SGST.
func (s TaxSplit) Total() decimal.Decimal {
	return s.IGST.Add(s.CGST).Add(s.SGST)
}

// NormalizeState canonicalizes a jurisdiction string for comparison.
func NormalizeState(state string) string {
	return strings.ToLower(strings.TrimSpace(state))
}

// IsIntraState reports whether the two jurisdictions describe an
// intra-state supply. An empty state on either side is treated as
// inter-state: the GSTIN is carried on the parties for future
// cross-checks, but the state comparison is authoritative, and when a
// state is unknown we must not assume the cheaper intra-state split.
func IsIntraState(supplyState, partyState string) bool {
	a := NormalizeState(supplyState)
	b := NormalizeState(partyState)
	return a != "" && a == b
}

// Split divides taxAmount into GST components based on the two
// jurisdictions. Components are rounded to 2 decimals half away from
// zero. Invariant: IGST + CGST + SGST always equals taxAmount rounded to
// 2 decimals; for intra-state supplies any odd-cent rounding residue is
// absorbed into SGST.
func Split(taxAmount decimal.Decimal, supplyState, partyState string) TaxSplit {
	rounded := taxAmount.Round(2)
	if IsIntraState(supplyState, partyState) {
		cgst := taxAmount.Div(decimal.NewFromInt(2)).Round(2)
		return TaxSplit{
			IGST: decimal.Zero,
			CGST: cgst,
			SGST: rounded.Sub(cgst),
		}
	}
	return TaxSplit{
		IGST: rounded,
		CGST: decimal.Zero,
		SGST: decimal.Zero,
	}
}
