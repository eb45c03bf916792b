package domain

// InventoryItem is a stocked article. Quantity never goes below zero and
// UsedQuantity only ever accumulates through stock usage.
type InventoryItem struct {
	ItemID       string `json:"itemID"` // Primary Key (UUID)
	Name         string `json:"name"`
	Unit         string `json:"unit"` // e.g. "boîte", "flacon"
	Quantity     int64  `json:"quantity"`
	UsedQuantity int64  `json:"usedQuantity"`
	AuditFields
}
