package dto

import "github.com/gobooks/books_backend/internal/core/domain"

// UpdateSequenceFormatRequest changes how future document numbers are
// rendered. The counter itself is never exposed for writing.
type UpdateSequenceFormatRequest struct {
	Prefix        string `json:"prefix" binding:"required"`
	Separator     string `json:"separator"`
	PaddingDigits int    `json:"paddingDigits" binding:"required,min=1,max=10"`
}

// SequenceResponse defines the data returned for a numbering sequence.
type SequenceResponse struct {
	DocumentType  string `json:"documentType"`
	Prefix        string `json:"prefix"`
	Separator     string `json:"separator"`
	PaddingDigits int    `json:"paddingDigits"`
	NextNumber    int64  `json:"nextNumber"`
}

// ToSequenceResponse converts a domain.NumberingSequence to its DTO.
func ToSequenceResponse(s *domain.NumberingSequence) SequenceResponse {
	return SequenceResponse{
		DocumentType:  string(s.DocumentType),
		Prefix:        s.Prefix,
		Separator:     s.Separator,
		PaddingDigits: s.PaddingDigits,
		NextNumber:    s.NextNumber,
	}
}
