package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/apperrors"
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	portsrepo "github.com/MboaHealth/hospital_admin_app/internal/core/ports/repositories"
	"github.com/MboaHealth/hospital_admin_app/internal/models"
	"github.com/MboaHealth/hospital_admin_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInventoryRepository struct {
	BaseRepository
}

// newPgxInventoryRepository creates a new repository for inventory data.
func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

const inventoryColumns = `item_id, name, unit, quantity, used_quantity, created_at, created_by, last_updated_at, last_updated_by`

func scanInventoryItem(row pgx.Row) (*models.InventoryItem, error) {
	var m models.InventoryItem
	err := row.Scan(
		&m.ItemID,
		&m.Name,
		&m.Unit,
		&m.Quantity,
		&m.UsedQuantity,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveItem persists a new inventory item.
func (r *PgxInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	m := mapping.ToModelInventoryItem(item)
	query := `
		INSERT INTO inventory_items (` + inventoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID,
		m.Name,
		m.Unit,
		m.Quantity,
		m.UsedQuantity,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: item %s", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save inventory item %s: %w", m.ItemID, err)
	}
	return nil
}

// FindItemByID retrieves an inventory item by its unique identifier.
func (r *PgxInventoryRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE item_id = $1;`
	m, err := scanInventoryItem(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inventory item by id %s: %w", itemID, err)
	}

	item := mapping.ToDomainInventoryItem(*m)
	return &item, nil
}

// ListItems retrieves a filtered, paginated list of inventory items.
func (r *PgxInventoryRepository) ListItems(ctx context.Context, filter domain.InventoryFilter, limit int, offset int) ([]domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE 1=1`
	args := []any{}
	argPos := 1

	if filter.Search != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if filter.OutOfStock {
		query += " AND quantity = 0"
	}
	if filter.LowStockMax != nil {
		query += fmt.Sprintf(" AND quantity <= $%d", argPos)
		args = append(args, *filter.LowStockMax)
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory items: %w", err)
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.InventoryItem, error) {
		m, err := scanInventoryItem(row)
		if err != nil {
			return models.InventoryItem{}, err
		}
		return *m, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan inventory items: %w", err)
	}

	return mapping.ToDomainInventoryItemSlice(modelItems), nil
}

// UpdateItem persists changes to an existing item's descriptive fields.
// Stock counters are only ever touched through ApplyStockUsage and Restock.
func (r *PgxInventoryRepository) UpdateItem(ctx context.Context, item domain.InventoryItem) error {
	m := mapping.ToModelInventoryItem(item)
	query := `
		UPDATE inventory_items
		SET name = $2, unit = $3, last_updated_at = $4, last_updated_by = $5
		WHERE item_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.ItemID, m.Name, m.Unit, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: item %s", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to update inventory item %s: %w", m.ItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteItem removes an item entirely.
func (r *PgxInventoryRepository) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM inventory_items WHERE item_id = $1;`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ApplyStockUsage decrements quantity and increments used_quantity in a
// single conditional UPDATE. The quantity >= $2 guard makes the operation
// safe under concurrent usage without an explicit lock.
func (r *PgxInventoryRepository) ApplyStockUsage(ctx context.Context, itemID string, used int64, userID string, now time.Time) (*domain.InventoryItem, error) {
	query := `
		UPDATE inventory_items
		SET quantity = quantity - $2,
		    used_quantity = used_quantity + $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE item_id = $1 AND quantity >= $2
		RETURNING ` + inventoryColumns + `;
	`
	m, err := scanInventoryItem(r.Pool.QueryRow(ctx, query, itemID, used, now, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Distinguish a missing item from an insufficient balance.
			var exists bool
			checkErr := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM inventory_items WHERE item_id = $1);`, itemID).Scan(&exists)
			if checkErr != nil {
				return nil, fmt.Errorf("failed to check inventory item %s: %w", itemID, checkErr)
			}
			if !exists {
				return nil, apperrors.ErrNotFound
			}
			return nil, apperrors.ErrInsufficientStock
		}
		return nil, fmt.Errorf("failed to apply stock usage on item %s: %w", itemID, err)
	}

	item := mapping.ToDomainInventoryItem(*m)
	return &item, nil
}

// Restock increments quantity in a single UPDATE.
func (r *PgxInventoryRepository) Restock(ctx context.Context, itemID string, amount int64, userID string, now time.Time) (*domain.InventoryItem, error) {
	query := `
		UPDATE inventory_items
		SET quantity = quantity + $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE item_id = $1
		RETURNING ` + inventoryColumns + `;
	`
	m, err := scanInventoryItem(r.Pool.QueryRow(ctx, query, itemID, amount, now, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to restock item %s: %w", itemID, err)
	}

	item := mapping.ToDomainInventoryItem(*m)
	return &item, nil
}
