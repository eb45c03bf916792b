package mapping

import (
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	"github.com/MboaHealth/hospital_admin_app/internal/models"
)

// ToModelInventoryItem converts a domain InventoryItem to a model InventoryItem
func ToModelInventoryItem(d domain.InventoryItem) models.InventoryItem {
	return models.InventoryItem{
		ItemID:       d.ItemID,
		Name:         d.Name,
		Unit:         d.Unit,
		Quantity:     d.Quantity,
		UsedQuantity: d.UsedQuantity,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInventoryItem converts a model InventoryItem to a domain InventoryItem
func ToDomainInventoryItem(m models.InventoryItem) domain.InventoryItem {
	return domain.InventoryItem{
		ItemID:       m.ItemID,
		Name:         m.Name,
		Unit:         m.Unit,
		Quantity:     m.Quantity,
		UsedQuantity: m.UsedQuantity,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInventoryItemSlice converts a slice of model InventoryItems to domain InventoryItems
func ToDomainInventoryItemSlice(ms []models.InventoryItem) []domain.InventoryItem {
	ds := make([]domain.InventoryItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInventoryItem(m)
	}
	return ds
}
