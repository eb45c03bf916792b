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
	"github.com/MboaHealth/hospital_admin_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, type, reason, amount, department_id, transaction_date, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.Type,
		&m.Reason,
		&m.Amount,
		&m.DepartmentID,
		&m.TransactionDate,
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

func insertTransactionTx(ctx context.Context, tx pgx.Tx, m models.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.Type,
		m.Reason,
		m.Amount,
		m.DepartmentID,
		m.TransactionDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	return err
}

// upsertReceiptTx creates the companion receipt or moves it onto a new
// department while keeping the transaction link stable. ON CONFLICT on the
// unique transaction_id collapses create and update into one statement.
func upsertReceiptTx(ctx context.Context, tx pgx.Tx, m models.Receipt) error {
	query := `
		INSERT INTO receipts (receipt_id, reason, department_id, transaction_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (transaction_id)
		DO UPDATE SET reason = EXCLUDED.reason, department_id = EXCLUDED.department_id;
	`
	_, err := tx.Exec(ctx, query,
		m.ReceiptID,
		m.Reason,
		m.DepartmentID,
		m.TransactionID,
		m.CreatedAt,
		m.CreatedBy,
	)
	return err
}

func mapTransactionWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperrors.ErrDuplicate
		case "23503":
			return fmt.Errorf("%w: unknown department", apperrors.ErrValidation)
		}
	}
	return err
}

// SaveTransaction persists a new transaction and, when receipt is non-nil,
// its companion receipt. Both writes share one database transaction so a
// receipt failure rolls back the primary row.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, receipt *domain.Receipt) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := insertTransactionTx(ctx, tx, mapping.ToModelTransaction(txn)); err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, mapTransactionWriteError(err))
	}
	if receipt != nil {
		if err := upsertReceiptTx(ctx, tx, mapping.ToModelReceipt(*receipt)); err != nil {
			return fmt.Errorf("failed to save companion receipt for transaction %s: %w", txn.TransactionID, mapTransactionWriteError(err))
		}
	}

	return r.Commit(ctx, tx)
}

// UpdateTransaction persists changes to a transaction and reconciles the
// companion receipt inside the same database transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, upsertReceipt *domain.Receipt, deleteReceiptID *string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET type = $2, reason = $3, amount = $4, department_id = $5, transaction_date = $6, last_updated_at = $7, last_updated_by = $8
		WHERE transaction_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.Type,
		m.Reason,
		m.Amount,
		m.DepartmentID,
		m.TransactionDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, mapTransactionWriteError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if deleteReceiptID != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM receipts WHERE receipt_id = $1;`, *deleteReceiptID); err != nil {
			return fmt.Errorf("failed to delete companion receipt %s: %w", *deleteReceiptID, err)
		}
	}
	if upsertReceipt != nil {
		if err := upsertReceiptTx(ctx, tx, mapping.ToModelReceipt(*upsertReceipt)); err != nil {
			return fmt.Errorf("failed to reconcile companion receipt for transaction %s: %w", m.TransactionID, mapTransactionWriteError(err))
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction removes a transaction and any companion receipt.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM receipts WHERE transaction_id = $1;`, transactionID); err != nil {
		return fmt.Errorf("failed to delete companion receipt of transaction %s: %w", transactionID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction by its unique identifier.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by id %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainTransaction(*m)
	return &txn, nil
}

// ListTransactions retrieves a filtered page of transactions ordered newest
// first, using keyset pagination on (transaction_date, created_at).
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	args := []any{}
	argPos := 1

	if filter.Type != nil {
		query += fmt.Sprintf(" AND type = $%d", argPos)
		args = append(args, string(*filter.Type))
		argPos++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND reason ILIKE $%d", argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if len(filter.DepartmentIDs) > 0 {
		query += fmt.Sprintf(" AND department_id = ANY($%d)", argPos)
		args = append(args, filter.DepartmentIDs)
		argPos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND transaction_date >= $%d", argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND transaction_date <= $%d", argPos)
		args = append(args, *filter.To)
		argPos++
	}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += fmt.Sprintf(" AND (transaction_date, created_at) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, lastDate, lastCreatedAt)
		argPos += 2
	}

	// Fetch one extra row to decide whether another page exists.
	query += fmt.Sprintf(" ORDER BY transaction_date DESC, created_at DESC LIMIT $%d;", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		m, err := scanTransaction(row)
		if err != nil {
			return models.Transaction{}, err
		}
		return *m, nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	var token *string
	if len(modelTxns) > limit {
		modelTxns = modelTxns[:limit]
		last := modelTxns[len(modelTxns)-1]
		t := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		token = &t
	}

	return mapping.ToDomainTransactionSlice(modelTxns), token, nil
}
