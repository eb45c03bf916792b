package dto

import (
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
)

// ListReceiptsParams defines query parameters for listing pending receipts.
type ListReceiptsParams struct {
	Search       string `form:"search"`
	DepartmentID string `form:"departmentID"`
	Limit        int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset       int    `form:"offset,default=0" binding:"omitempty,min=0"`
}

// ExecuteReceiptRequest requires an explicit confirmation before the
// destructive, irreversible execution.
type ExecuteReceiptRequest struct {
	Confirm bool `json:"confirm" binding:"required"`
}

// ReceiptResponse defines the data returned for a pending receipt.
type ReceiptResponse struct {
	ReceiptID     string    `json:"receiptID"`
	Reason        string    `json:"reason"`
	DepartmentID  string    `json:"departmentID"`
	TransactionID string    `json:"transactionID"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ListReceiptsResponse wraps the list of pending receipts.
type ListReceiptsResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
}

// ToReceiptResponse converts a domain.Receipt to ReceiptResponse DTO.
func ToReceiptResponse(r *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ReceiptID:     r.ReceiptID,
		Reason:        r.Reason,
		DepartmentID:  r.DepartmentID,
		TransactionID: r.TransactionID,
		CreatedAt:     r.CreatedAt,
	}
}

// ToListReceiptsResponse converts a slice of domain.Receipt to ListReceiptsResponse.
func ToListReceiptsResponse(receipts []domain.Receipt) ListReceiptsResponse {
	responses := make([]ReceiptResponse, len(receipts))
	for i, r := range receipts {
		responses[i] = ToReceiptResponse(&r)
	}
	return ListReceiptsResponse{Receipts: responses}
}
