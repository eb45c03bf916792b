package dto

import (
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to create a transaction.
type CreateTransactionRequest struct {
	Type            string          `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Reason          string          `json:"reason" binding:"required,notblank"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	DepartmentID    *string         `json:"departmentID"`
	TransactionDate *time.Time      `json:"transactionDate"`
}

// UpdateTransactionRequest defines the data allowed for updating a
// transaction. DepartmentSet distinguishes "leave the department untouched"
// from "clear the department": when true, DepartmentID (possibly nil) is the
// new value.
type UpdateTransactionRequest struct {
	Type            *string          `json:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Reason          *string          `json:"reason"`
	Amount          *decimal.Decimal `json:"amount"`
	DepartmentSet   bool             `json:"departmentSet"`
	DepartmentID    *string          `json:"departmentID"`
	TransactionDate *time.Time       `json:"transactionDate"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Type         string     `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Search       string     `form:"search"`
	DepartmentID string     `form:"departmentID"`
	From         *time.Time `form:"from" time_format:"2006-01-02"`
	To           *time.Time `form:"to" time_format:"2006-01-02"`
	Limit        int        `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken    *string    `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	Type            string          `json:"type"`
	Reason          string          `json:"reason"`
	Amount          decimal.Decimal `json:"amount"`
	DepartmentID    *string         `json:"departmentID"`
	TransactionDate time.Time       `json:"transactionDate"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		Type:            string(t.Type),
		Reason:          t.Reason,
		Amount:          t.Amount,
		DepartmentID:    t.DepartmentID,
		TransactionDate: t.TransactionDate,
		CreatedAt:       t.CreatedAt,
		CreatedBy:       t.CreatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		responses[i] = ToTransactionResponse(&t)
	}
	return responses
}
