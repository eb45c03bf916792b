package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/MboaHealth/hospital_admin_app/internal/apperrors"
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	portsrepo "github.com/MboaHealth/hospital_admin_app/internal/core/ports/repositories"
	"github.com/MboaHealth/hospital_admin_app/internal/models"
	"github.com/MboaHealth/hospital_admin_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReceiptRepository struct {
	BaseRepository
}

// newPgxReceiptRepository creates a new repository for receipt data.
// Receipt creation and reconciliation live in the transaction repository;
// this one only reads and executes.
func newPgxReceiptRepository(pool *pgxpool.Pool) portsrepo.ReceiptRepositoryFacade {
	return &PgxReceiptRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReceiptRepositoryFacade = (*PgxReceiptRepository)(nil)

const receiptColumns = `receipt_id, reason, department_id, transaction_id, created_at, created_by`

func scanReceipt(row pgx.Row) (*models.Receipt, error) {
	var m models.Receipt
	err := row.Scan(
		&m.ReceiptID,
		&m.Reason,
		&m.DepartmentID,
		&m.TransactionID,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindReceiptByID retrieves a receipt by its unique identifier.
func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE receipt_id = $1;`
	m, err := scanReceipt(r.Pool.QueryRow(ctx, query, receiptID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receipt by id %s: %w", receiptID, err)
	}

	receipt := mapping.ToDomainReceipt(*m)
	return &receipt, nil
}

// FindReceiptByTransactionID retrieves the companion receipt of a transaction.
func (r *PgxReceiptRepository) FindReceiptByTransactionID(ctx context.Context, transactionID string) (*domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE transaction_id = $1;`
	m, err := scanReceipt(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receipt by transaction id %s: %w", transactionID, err)
	}

	receipt := mapping.ToDomainReceipt(*m)
	return &receipt, nil
}

// ListReceipts retrieves a filtered, paginated list of pending receipts.
func (r *PgxReceiptRepository) ListReceipts(ctx context.Context, filter domain.ReceiptFilter, limit int, offset int) ([]domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE 1=1`
	args := []any{}
	argPos := 1

	if len(filter.DepartmentIDs) > 0 {
		query += fmt.Sprintf(" AND department_id = ANY($%d)", argPos)
		args = append(args, filter.DepartmentIDs)
		argPos++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND reason ILIKE $%d", argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipts: %w", err)
	}
	defer rows.Close()

	modelReceipts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Receipt, error) {
		m, err := scanReceipt(row)
		if err != nil {
			return models.Receipt{}, err
		}
		return *m, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan receipts: %w", err)
	}

	return mapping.ToDomainReceiptSlice(modelReceipts), nil
}

// DeleteReceipt removes a receipt. Used for receipt execution.
func (r *PgxReceiptRepository) DeleteReceipt(ctx context.Context, receiptID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM receipts WHERE receipt_id = $1;`, receiptID)
	if err != nil {
		return fmt.Errorf("failed to delete receipt %s: %w", receiptID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
