package repositories

import (
	"context"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered list of transactions using
	// token-based pagination. It returns the transactions, a token for the
	// next page, and an error.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for transaction data. The
// companion receipt writes happen inside the same database transaction as
// the primary write, so a reconciliation failure rolls everything back.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction and, when receipt is
	// non-nil, its companion receipt.
	SaveTransaction(ctx context.Context, txn domain.Transaction, receipt *domain.Receipt) error

	// UpdateTransaction persists changes to a transaction and reconciles the
	// companion receipt: upsertReceipt is created or updated when non-nil,
	// and the receipt identified by deleteReceiptID is removed when non-nil.
	UpdateTransaction(ctx context.Context, txn domain.Transaction, upsertReceipt *domain.Receipt, deleteReceiptID *string) error

	// DeleteTransaction removes a transaction and any companion receipt.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
