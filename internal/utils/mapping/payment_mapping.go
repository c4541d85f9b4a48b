package mapping

import (
	"github.com/gobooks/books_backend/internal/core/domain"
	"github.com/gobooks/books_backend/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment.
// Allocations travel separately (payment_allocations table).
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:      d.PaymentID,
		Direction:      string(d.Direction),
		PartyID:        d.PartyID,
		PaymentDate:    d.PaymentDate,
		Amount:         d.Amount,
		OriginalAmount: d.OriginalAmount,
		ExchangeRate:   d.ExchangeRate,
		Mode:           d.Mode,
		Reference:      d.Reference,
		Notes:          d.Notes,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:      m.PaymentID,
		Direction:      domain.PaymentDirection(m.Direction),
		PartyID:        m.PartyID,
		PaymentDate:    m.PaymentDate,
		Amount:         m.Amount,
		OriginalAmount: m.OriginalAmount,
		ExchangeRate:   m.ExchangeRate,
		Mode:           m.Mode,
		Reference:      m.Reference,
		Notes:          m.Notes,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAllocation converts a domain Allocation to a model Allocation
func ToModelAllocation(d domain.Allocation) models.Allocation {
	return models.Allocation{
		AllocationID:    d.AllocationID,
		PaymentID:       d.PaymentID,
		DocumentID:      d.DocumentID,
		AllocatedAmount: d.AllocatedAmount,
	}
}

// ToDomainAllocation converts a model Allocation to a domain Allocation
func ToDomainAllocation(m models.Allocation) domain.Allocation {
	return domain.Allocation{
		AllocationID:    m.AllocationID,
		PaymentID:       m.PaymentID,
		DocumentID:      m.DocumentID,
		AllocatedAmount: m.AllocatedAmount,
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
