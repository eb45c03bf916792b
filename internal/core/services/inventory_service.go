package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/apperrors"
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	portsrepo "github.com/MboaHealth/hospital_admin_app/internal/core/ports/repositories"
	portssvc "github.com/MboaHealth/hospital_admin_app/internal/core/ports/services"
	"github.com/MboaHealth/hospital_admin_app/internal/dto"
	"github.com/MboaHealth/hospital_admin_app/internal/middleware"
	"github.com/google/uuid"
)

// InventoryService implements item CRUD and the stock movement operations.
type InventoryService struct {
	inventoryRepo portsrepo.InventoryRepositoryFacade
}

func NewInventoryService(inventoryRepo portsrepo.InventoryRepositoryFacade) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

var _ portssvc.InventorySvcFacade = (*InventoryService)(nil)

func (s *InventoryService) GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	item, err := s.inventoryRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find inventory item", slog.String("error", err.Error()), slog.String("item_id", itemID))
		}
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) ListItems(ctx context.Context, params dto.ListItemsParams) ([]domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	filter := domain.InventoryFilter{
		Search:      params.Search,
		OutOfStock:  params.OutOfStock,
		LowStockMax: params.LowStockMax,
	}
	items, err := s.inventoryRepo.ListItems(ctx, filter, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list inventory items", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	if items == nil {
		return []domain.InventoryItem{}, nil
	}
	return items, nil
}

func (s *InventoryService) CreateItem(ctx context.Context, req dto.CreateItemRequest, creatorUserID string) (*domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	item := domain.InventoryItem{
		ItemID:   uuid.NewString(),
		Name:     req.Name,
		Unit:     req.Unit,
		Quantity: req.Quantity,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.inventoryRepo.SaveItem(ctx, item); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save inventory item", slog.String("error", err.Error()), slog.String("name", req.Name))
		}
		return nil, err
	}

	logger.Info("Inventory item created", slog.String("item_id", item.ItemID))
	return &item, nil
}

func (s *InventoryService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, requestingUserID string) (*domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	item, err := s.inventoryRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	item.LastUpdatedAt = time.Now()
	item.LastUpdatedBy = requestingUserID

	if err := s.inventoryRepo.UpdateItem(ctx, *item); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update inventory item", slog.String("error", err.Error()), slog.String("item_id", itemID))
		}
		return nil, err
	}

	logger.Info("Inventory item updated", slog.String("item_id", itemID))
	return item, nil
}

func (s *InventoryService) DeleteItem(ctx context.Context, itemID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.inventoryRepo.DeleteItem(ctx, itemID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete inventory item", slog.String("error", err.Error()), slog.String("item_id", itemID))
		}
		return err
	}

	logger.Info("Inventory item deleted", slog.String("item_id", itemID))
	return nil
}

// UseStock consumes stock. The repository applies the movement as one
// conditional update, so a concurrent usage can never drive quantity
// negative; the loser of the race gets ErrInsufficientStock.
func (s *InventoryService) UseStock(ctx context.Context, itemID string, used int64, requestingUserID string) (*domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if used <= 0 {
		return nil, fmt.Errorf("%w: used quantity must be strictly positive", apperrors.ErrValidation)
	}

	item, err := s.inventoryRepo.ApplyStockUsage(ctx, itemID, used, requestingUserID, time.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInsufficientStock) {
			logger.Error("Failed to apply stock usage", slog.String("error", err.Error()), slog.String("item_id", itemID))
		}
		return nil, err
	}

	logger.Info("Stock used", slog.String("item_id", itemID), slog.Int64("used", used), slog.Int64("remaining", item.Quantity))
	return item, nil
}

func (s *InventoryService) Restock(ctx context.Context, itemID string, amount int64, requestingUserID string) (*domain.InventoryItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if amount <= 0 {
		return nil, fmt.Errorf("%w: restock amount must be strictly positive", apperrors.ErrValidation)
	}

	item, err := s.inventoryRepo.Restock(ctx, itemID, amount, requestingUserID, time.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to restock item", slog.String("error", err.Error()), slog.String("item_id", itemID))
		}
		return nil, err
	}

	logger.Info("Item restocked", slog.String("item_id", itemID), slog.Int64("amount", amount), slog.Int64("quantity", item.Quantity))
	return item, nil
}
