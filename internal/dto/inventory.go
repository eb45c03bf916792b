package dto

import (
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
)

// CreateItemRequest defines the data needed to create an inventory item.
type CreateItemRequest struct {
	Name     string `json:"name" binding:"required,notblank"`
	Unit     string `json:"unit"`
	Quantity int64  `json:"quantity" binding:"omitempty,min=0"`
}

// UpdateItemRequest defines the descriptive fields allowed for update.
// Stock levels move only through the use/restock operations.
type UpdateItemRequest struct {
	Name *string `json:"name"`
	Unit *string `json:"unit"`
}

// UseStockRequest defines a stock usage.
type UseStockRequest struct {
	Used int64 `json:"used" binding:"required,gt=0"`
}

// RestockRequest defines a restock.
type RestockRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// ListItemsParams defines query parameters for listing inventory items.
type ListItemsParams struct {
	Search      string `form:"search"`
	OutOfStock  bool   `form:"outOfStock"`
	LowStockMax *int64 `form:"lowStockMax" binding:"omitempty,min=0"`
	Limit       int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset      int    `form:"offset,default=0" binding:"omitempty,min=0"`
}

// ItemResponse defines the data returned for an inventory item.
type ItemResponse struct {
	ItemID        string    `json:"itemID"`
	Name          string    `json:"name"`
	Unit          string    `json:"unit"`
	Quantity      int64     `json:"quantity"`
	UsedQuantity  int64     `json:"usedQuantity"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ListItemsResponse wraps the list of inventory items.
type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

// ToItemResponse converts a domain.InventoryItem to ItemResponse DTO.
func ToItemResponse(item *domain.InventoryItem) ItemResponse {
	return ItemResponse{
		ItemID:        item.ItemID,
		Name:          item.Name,
		Unit:          item.Unit,
		Quantity:      item.Quantity,
		UsedQuantity:  item.UsedQuantity,
		LastUpdatedAt: item.LastUpdatedAt,
	}
}

// ToListItemsResponse converts a slice of domain.InventoryItem to ListItemsResponse.
func ToListItemsResponse(items []domain.InventoryItem) ListItemsResponse {
	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToItemResponse(&item)
	}
	return ListItemsResponse{Items: responses}
}
