package domain

import "fmt"

// NumberingSequence is the persisted counter behind document numbers.
// One row exists per document type. NextNumber is monotonically
// non-decreasing and every value it has ever held maps to a document
// number issued at most once; the row survives restarts and is shared
// across service instances.
type NumberingSequence struct {
	DocumentType  DocumentType `json:"documentType"`
	Prefix        string       `json:"prefix"`
	Separator     string       `json:"separator"`
	PaddingDigits int          `json:"paddingDigits"`
	NextNumber    int64        `json:"nextNumber"`
}

// DefaultSequence returns the seed sequence configuration for a document
// type, used when no row exists yet.
func DefaultSequence(docType DocumentType) NumberingSequence {
	seq := NumberingSequence{
		DocumentType:  docType,
		Separator:     "-",
		PaddingDigits: 5,
		NextNumber:    1,
	}
	switch docType {
	case Invoice:
		seq.Prefix = "INV"
	case Bill:
		seq.Prefix = "BILL"
	case CreditNote:
		seq.Prefix = "CN"
	case DebitNote:
		seq.Prefix = "DN"
	default:
		seq.Prefix = "DOC"
	}
	return seq
}

// FormatNumber renders a counter value as a document number, e.g.
// INV-00042 for prefix "INV", separator "-", padding 5.
func (s NumberingSequence) FormatNumber(n int64) string {
	return fmt.Sprintf("%s%s%0*d", s.Prefix, s.Separator, s.PaddingDigits, n)
}
