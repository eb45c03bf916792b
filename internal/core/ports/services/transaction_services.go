package services

import (
	"context"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	"github.com/MboaHealth/hospital_admin_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction by its ID.
	GetTransactionByID(ctx context.Context, transactionID string, requestingUserID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered page of transactions, scoped to
	// the caller's departments for regular users.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams, requestingUserID string) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines write operations for transaction data. Every
// write keeps the companion receipt in 1:1 correspondence with "transaction
// having a department".
type TransactionWriterSvc interface {
	// CreateTransaction persists a new transaction, creating its companion
	// receipt when a department is referenced.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)

	// UpdateTransaction updates a transaction, reconciling the companion
	// receipt against the department change.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, requestingUserID string) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction and any companion receipt.
	DeleteTransaction(ctx context.Context, transactionID string, requestingUserID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
