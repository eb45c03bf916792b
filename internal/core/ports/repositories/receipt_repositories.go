package repositories

import (
	"context"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
)

// ReceiptReader defines read operations for receipt data.
type ReceiptReader interface {
	// FindReceiptByID retrieves a receipt by its unique identifier.
	FindReceiptByID(ctx context.Context, receiptID string) (*domain.Receipt, error)

	// FindReceiptByTransactionID retrieves the companion receipt of a transaction.
	FindReceiptByTransactionID(ctx context.Context, transactionID string) (*domain.Receipt, error)

	// ListReceipts retrieves a filtered, paginated list of pending receipts.
	ListReceipts(ctx context.Context, filter domain.ReceiptFilter, limit int, offset int) ([]domain.Receipt, error)
}

// ReceiptWriter defines write operations for receipt data. Receipts are
// created and reconciled by the transaction write path; executing one is a
// destructive delete.
type ReceiptWriter interface {
	// DeleteReceipt removes a receipt. Used for receipt execution.
	DeleteReceipt(ctx context.Context, receiptID string) error
}

// ReceiptRepositoryFacade combines all receipt-related repository interfaces.
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}
