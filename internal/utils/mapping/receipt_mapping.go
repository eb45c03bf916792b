package mapping

import (
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	"github.com/MboaHealth/hospital_admin_app/internal/models"
)

// ToModelReceipt converts a domain Receipt to a model Receipt
func ToModelReceipt(d domain.Receipt) models.Receipt {
	return models.Receipt{
		ReceiptID:     d.ReceiptID,
		Reason:        d.Reason,
		DepartmentID:  d.DepartmentID,
		TransactionID: d.TransactionID,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

// ToDomainReceipt converts a model Receipt to a domain Receipt
func ToDomainReceipt(m models.Receipt) domain.Receipt {
	return domain.Receipt{
		ReceiptID:     m.ReceiptID,
		Reason:        m.Reason,
		DepartmentID:  m.DepartmentID,
		TransactionID: m.TransactionID,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

// ToDomainReceiptSlice converts a slice of model Receipts to domain Receipts
func ToDomainReceiptSlice(ms []models.Receipt) []domain.Receipt {
	ds := make([]domain.Receipt, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReceipt(m)
	}
	return ds
}
