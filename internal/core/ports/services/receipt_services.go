package services

import (
	"context"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	"github.com/MboaHealth/hospital_admin_app/internal/dto"
)

// ReceiptSvcFacade handles pending receipt listing and execution.
type ReceiptSvcFacade interface {
	// GetReceiptByID retrieves a receipt by its ID.
	GetReceiptByID(ctx context.Context, receiptID string, requestingUserID string) (*domain.Receipt, error)

	// ListReceipts retrieves pending receipts, scoped to the caller's
	// departments for regular users.
	ListReceipts(ctx context.Context, params dto.ListReceiptsParams, requestingUserID string) ([]domain.Receipt, error)

	// ExecuteReceipt clears a pending receipt by deleting it. Destructive
	// and irreversible. Executing a receipt of a department the caller is
	// not a member of requires the ADMIN or MANAGEMENT level.
	ExecuteReceipt(ctx context.Context, receiptID string, requestingUserID string) error
}
