package repositories

import (
	"context"
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
)

// InventoryReader defines read operations for inventory data.
type InventoryReader interface {
	// FindItemByID retrieves an inventory item by its unique identifier.
	FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)

	// ListItems retrieves a filtered, paginated list of inventory items.
	ListItems(ctx context.Context, filter domain.InventoryFilter, limit int, offset int) ([]domain.InventoryItem, error)
}

// InventoryWriter defines write operations for inventory data.
type InventoryWriter interface {
	// SaveItem persists a new inventory item.
	SaveItem(ctx context.Context, item domain.InventoryItem) error

	// UpdateItem persists changes to an existing item's descriptive fields.
	UpdateItem(ctx context.Context, item domain.InventoryItem) error

	// DeleteItem removes an item entirely.
	DeleteItem(ctx context.Context, itemID string) error

	// ApplyStockUsage atomically decrements quantity and increments
	// usedQuantity by used, guarded by quantity >= used. Returns
	// apperrors.ErrInsufficientStock when the guard fails and
	// apperrors.ErrNotFound when the item does not exist.
	ApplyStockUsage(ctx context.Context, itemID string, used int64, userID string, now time.Time) (*domain.InventoryItem, error)

	// Restock atomically increments quantity by amount.
	Restock(ctx context.Context, itemID string, amount int64, userID string, now time.Time) (*domain.InventoryItem, error)
}

// InventoryRepositoryFacade combines all inventory-related repository interfaces.
type InventoryRepositoryFacade interface {
	InventoryReader
	InventoryWriter
}
