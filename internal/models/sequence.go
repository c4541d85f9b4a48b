package models

// NumberingSequence is the row shape of the numbering_sequences table, one
// row per document type.
type NumberingSequence struct {
	DocumentType  string `json:"documentType"`
	Prefix        string `json:"prefix"`
	Separator     string `json:"separator"`
	PaddingDigits int    `json:"paddingDigits"`
	NextNumber    int64  `json:"nextNumber"`
}
