package gst

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSplitInterState(t *testing.T) {
	tax := decimal.NewFromFloat(180.00)
	split := Split(tax, "Karnataka", "Maharashtra")

	assert.True(t, split.IGST.Equal(decimal.NewFromFloat(180.00)), "Inter-state tax should be all IGST")
	assert.True(t, split.CGST.IsZero(), "CGST should be zero for inter-state supply")
	assert.True(t, split.SGST.IsZero(), "SGST should be zero for inter-state supply")
}

func TestSplitIntraState(t *testing.T) {
	tax := decimal.NewFromFloat(180.00)
	split := Split(tax, "Karnataka", "Karnataka")

	assert.True(t, split.IGST.IsZero(), "IGST should be zero for intra-state supply")
	assert.True(t, split.CGST.Equal(decimal.NewFromFloat(90.00)), "CGST should be half the tax")
	assert.True(t, split.SGST.Equal(decimal.NewFromFloat(90.00)), "SGST should be half the tax")
}

func TestSplitIntraStateOddCentResidue(t *testing.T) {
	// 0.01 cannot split evenly: CGST rounds to 0.01, SGST absorbs the residue.
	split := Split(decimal.NewFromFloat(0.01), "Karnataka", "karnataka")
	assert.True(t, split.CGST.Equal(decimal.NewFromFloat(0.01)), "CGST got %s", split.CGST)
	assert.True(t, split.SGST.IsZero(), "SGST got %s", split.SGST)
	assert.True(t, split.Total().Equal(decimal.NewFromFloat(0.01)), "Components must sum to the rounded tax")

	// 100.01 / 2 = 50.005, which rounds half away from zero to 50.01.
	split = Split(decimal.NewFromFloat(100.01), "Delhi", "Delhi")
	assert.True(t, split.CGST.Equal(decimal.NewFromFloat(50.01)), "CGST got %s", split.CGST)
	assert.True(t, split.SGST.Equal(decimal.NewFromFloat(50.00)), "SGST got %s", split.SGST)
	assert.True(t, split.Total().Equal(decimal.NewFromFloat(100.01)), "Components must sum to the rounded tax")
}

func TestSplitComponentSumInvariant(t *testing.T) {
	// The sum of components always equals the rounded tax, regardless of
	// how awkwardly the amount halves.
	amounts := []string{"0.01", "0.03", "1.255", "99.99", "123.456", "100.01", "0.005"}
	for _, a := range amounts {
		tax := decimal.RequireFromString(a)
		split := Split(tax, "Karnataka", "Karnataka")
		assert.True(t, split.Total().Equal(tax.Round(2)),
			"intra-state components for %s sum to %s, want %s", a, split.Total(), tax.Round(2))

		split = Split(tax, "Karnataka", "Kerala")
		assert.True(t, split.Total().Equal(tax.Round(2)),
			"inter-state components for %s sum to %s, want %s", a, split.Total(), tax.Round(2))
	}
}

func TestSplitUnknownStateIsInterState(t *testing.T) {
	// An empty state on either side must not get the intra-state split.
	split := Split(decimal.NewFromFloat(18.00), "", "")
	assert.True(t, split.IGST.Equal(decimal.NewFromFloat(18.00)), "Unknown states should tax as IGST")
	assert.True(t, split.CGST.IsZero())

	split = Split(decimal.NewFromFloat(18.00), "Karnataka", "")
	assert.True(t, split.IGST.Equal(decimal.NewFromFloat(18.00)), "Missing party state should tax as IGST")
}

func TestIsIntraStateNormalization(t *testing.T) {
	assert.True(t, IsIntraState("  Karnataka ", "karnataka"), "Comparison should ignore case and whitespace")
	assert.False(t, IsIntraState("Karnataka", "Kerala"))
	assert.False(t, IsIntraState("", ""), "Empty states are never intra-state")
}
