package mapping

import (
	"github.com/gobooks/books_backend/internal/core/domain"
	"github.com/gobooks/books_backend/internal/models"
)

// ToModelDocument converts a domain Document to a model Document
func ToModelDocument(d domain.Document) models.Document {
	return models.Document{
		DocumentID:     d.DocumentID,
		DocumentType:   string(d.DocumentType),
		DocumentNumber: d.DocumentNumber,
		DocumentDate:   d.DocumentDate,
		PartyID:        d.PartyID,
		Status:         string(d.Status),
		PlaceOfSupply:  d.PlaceOfSupply,
		SubTotal:       d.SubTotal,
		DiscountAmount: d.DiscountAmount,
		IGSTAmount:     d.IGSTAmount,
		CGSTAmount:     d.CGSTAmount,
		SGSTAmount:     d.SGSTAmount,
		TotalTax:       d.TotalTax,
		ShippingCharge: d.ShippingCharge,
		RoundingAdj:    d.RoundingAdj,
		TotalAmount:    d.TotalAmount,
		AmountPaid:     d.AmountPaid,
		BalanceDue:     d.BalanceDue,
		Notes:          d.Notes,
		DeletedAt:      d.DeletedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDocument converts a model Document to a domain Document
func ToDomainDocument(m models.Document) domain.Document {
	return domain.Document{
		DocumentID:     m.DocumentID,
		DocumentType:   domain.DocumentType(m.DocumentType),
		DocumentNumber: m.DocumentNumber,
		DocumentDate:   m.DocumentDate,
		PartyID:        m.PartyID,
		Status:         domain.DocumentStatus(m.Status),
		PlaceOfSupply:  m.PlaceOfSupply,
		SubTotal:       m.SubTotal,
		DiscountAmount: m.DiscountAmount,
		IGSTAmount:     m.IGSTAmount,
		CGSTAmount:     m.CGSTAmount,
		SGSTAmount:     m.SGSTAmount,
		TotalTax:       m.TotalTax,
		ShippingCharge: m.ShippingCharge,
		RoundingAdj:    m.RoundingAdj,
		TotalAmount:    m.TotalAmount,
		AmountPaid:     m.AmountPaid,
		BalanceDue:     m.BalanceDue,
		Notes:          m.Notes,
		DeletedAt:      m.DeletedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDocumentSlice converts a slice of model Documents to domain Documents
func ToDomainDocumentSlice(ms []models.Document) []domain.Document {
	ds := make([]domain.Document, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDocument(m)
	}
	return ds
}

// ToModelLineItem converts a domain LineItem to a model LineItem
func ToModelLineItem(d domain.LineItem) models.LineItem {
	return models.LineItem{
		LineItemID:      d.LineItemID,
		DocumentID:      d.DocumentID,
		Name:            d.Name,
		Description:     d.Description,
		Quantity:        d.Quantity,
		Rate:            d.Rate,
		DiscountPercent: d.DiscountPercent,
		GSTRate:         d.GSTRate,
		DiscountAmount:  d.DiscountAmount,
		IGSTAmount:      d.IGSTAmount,
		CGSTAmount:      d.CGSTAmount,
		SGSTAmount:      d.SGSTAmount,
		Amount:          d.Amount,
	}
}

// ToDomainLineItem converts a model LineItem to a domain LineItem
func ToDomainLineItem(m models.LineItem) domain.LineItem {
	return domain.LineItem{
		LineItemID:      m.LineItemID,
		DocumentID:      m.DocumentID,
		Name:            m.Name,
		Description:     m.Description,
		Quantity:        m.Quantity,
		Rate:            m.Rate,
		DiscountPercent: m.DiscountPercent,
		GSTRate:         m.GSTRate,
		DiscountAmount:  m.DiscountAmount,
		IGSTAmount:      m.IGSTAmount,
		CGSTAmount:      m.CGSTAmount,
		SGSTAmount:      m.SGSTAmount,
		Amount:          m.Amount,
	}
}

// ToDomainLineItemSlice converts a slice of model LineItems to domain LineItems
func ToDomainLineItemSlice(ms []models.LineItem) []domain.LineItem {
	ds := make([]domain.LineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLineItem(m)
	}
	return ds
}
