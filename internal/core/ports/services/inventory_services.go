package services

import (
	"context"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	"github.com/MboaHealth/hospital_admin_app/internal/dto"
)

// InventoryReaderSvc defines read operations for inventory data.
type InventoryReaderSvc interface {
	// GetItemByID retrieves an inventory item by its ID.
	GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)

	// ListItems retrieves a filtered, paginated list of inventory items.
	ListItems(ctx context.Context, params dto.ListItemsParams) ([]domain.InventoryItem, error)
}

// InventoryWriterSvc defines write operations for inventory data.
type InventoryWriterSvc interface {
	// CreateItem creates a new inventory item.
	CreateItem(ctx context.Context, req dto.CreateItemRequest, creatorUserID string) (*domain.InventoryItem, error)

	// UpdateItem updates an item's descriptive fields.
	UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, requestingUserID string) (*domain.InventoryItem, error)

	// DeleteItem removes an item.
	DeleteItem(ctx context.Context, itemID string, requestingUserID string) error
}

// StockOperatorSvc defines the stock movement operations.
type StockOperatorSvc interface {
	// UseStock consumes used units from the item's stock. Fails with
	// apperrors.ErrInsufficientStock when used exceeds the current quantity,
	// leaving the item unchanged.
	UseStock(ctx context.Context, itemID string, used int64, requestingUserID string) (*domain.InventoryItem, error)

	// Restock adds amount units to the item's stock.
	Restock(ctx context.Context, itemID string, amount int64, requestingUserID string) (*domain.InventoryItem, error)
}

// InventorySvcFacade combines all inventory-related service interfaces.
type InventorySvcFacade interface {
	InventoryReaderSvc
	InventoryWriterSvc
	StockOperatorSvc
}
