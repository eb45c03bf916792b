package models

// InventoryItem represents a row of the inventory_items table.
type InventoryItem struct {
	ItemID       string `json:"itemID"`
	Name         string `json:"name"`
	Unit         string `json:"unit"`
	Quantity     int64  `json:"quantity"`
	UsedQuantity int64  `json:"usedQuantity"`
	AuditFields
}
