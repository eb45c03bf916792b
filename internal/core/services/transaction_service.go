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
	"github.com/shopspring/decimal"
)

// TransactionService implements transaction CRUD while keeping the
// companion receipt in 1:1 correspondence with "transaction having a
// department". All receipt reconciliation happens through the transaction
// repository inside a single database transaction.
type TransactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	receiptRepo     portsrepo.ReceiptRepositoryFacade
	departmentRepo  portsrepo.DepartmentRepositoryFacade
	permissions     portssvc.PermissionResolverSvc
}

func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	receiptRepo portsrepo.ReceiptRepositoryFacade,
	departmentRepo portsrepo.DepartmentRepositoryFacade,
	permissions portssvc.PermissionResolverSvc,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		receiptRepo:     receiptRepo,
		departmentRepo:  departmentRepo,
		permissions:     permissions,
	}
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be strictly positive", apperrors.ErrValidation)
	}
	return nil
}

func (s *TransactionService) validateDepartment(ctx context.Context, departmentID *string) error {
	if departmentID == nil || *departmentID == "" {
		return nil
	}
	if _, err := s.departmentRepo.FindDepartmentByID(ctx, *departmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: unknown department %s", apperrors.ErrValidation, *departmentID)
		}
		return err
	}
	return nil
}

func (s *TransactionService) GetTransactionByID(ctx context.Context, transactionID string, requestingUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

// ListTransactions retrieves a filtered page. Regular users only see
// transactions of departments they are members of; admin and management see
// everything.
func (s *TransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams, requestingUserID string) (*dto.ListTransactionsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	pc, err := s.permissions.GetPermissionContext(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}

	filter := domain.TransactionFilter{
		Search: params.Search,
		From:   params.From,
		To:     params.To,
	}
	if params.Type != "" {
		t := domain.TransactionType(params.Type)
		filter.Type = &t
	}
	if params.DepartmentID != "" {
		filter.DepartmentIDs = []string{params.DepartmentID}
	}

	if !pc.Level.SeesAllDepartments() {
		if params.DepartmentID != "" {
			if !pc.MemberOf(params.DepartmentID) {
				return nil, apperrors.ErrForbidden
			}
		} else {
			if len(pc.DepartmentIDs) == 0 {
				return &dto.ListTransactionsResponse{Transactions: []dto.TransactionResponse{}}, nil
			}
			filter.DepartmentIDs = pc.DepartmentIDs
		}
	}

	txns, nextToken, err := s.transactionRepo.ListTransactions(ctx, filter, params.Limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		}
		return nil, err
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

// CreateTransaction persists a new transaction. When a department is
// referenced a companion receipt is created in the same database
// transaction, so either both rows exist afterwards or neither does.
func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	if err := s.validateDepartment(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	now := time.Now()
	txnDate := now
	if req.TransactionDate != nil {
		txnDate = *req.TransactionDate
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		Type:            domain.TransactionType(req.Type),
		Reason:          req.Reason,
		Amount:          req.Amount,
		DepartmentID:    req.DepartmentID,
		TransactionDate: txnDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	var receipt *domain.Receipt
	if txn.HasDepartment() {
		receipt = &domain.Receipt{
			ReceiptID:     uuid.NewString(),
			Reason:        txn.Reason,
			DepartmentID:  *txn.DepartmentID,
			TransactionID: txn.TransactionID,
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
		}
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn, receipt); err != nil {
		if !errors.Is(err, apperrors.ErrValidation) && !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save transaction", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
		}
		return nil, err
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID), slog.Bool("receipt_created", receipt != nil))
	return &txn, nil
}

// UpdateTransaction applies the requested changes and reconciles the
// companion receipt against the department transition:
//
//	none -> none  nothing to do
//	none -> set   create receipt
//	set  -> none  delete receipt
//	set  -> same  refresh receipt reason
//	set  -> other move receipt to the new department
func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, requestingUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		txn.Type = domain.TransactionType(*req.Type)
	}
	if req.Reason != nil {
		txn.Reason = *req.Reason
	}
	if req.Amount != nil {
		if err := validateAmount(*req.Amount); err != nil {
			return nil, err
		}
		txn.Amount = *req.Amount
	}
	if req.TransactionDate != nil {
		txn.TransactionDate = *req.TransactionDate
	}

	hadDepartment := txn.HasDepartment()
	previousDepartmentID := ""
	if hadDepartment {
		previousDepartmentID = *txn.DepartmentID
	}

	if req.DepartmentSet {
		if err := s.validateDepartment(ctx, req.DepartmentID); err != nil {
			return nil, err
		}
		txn.DepartmentID = req.DepartmentID
	}

	now := time.Now()
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = requestingUserID

	var upsertReceipt *domain.Receipt
	var deleteReceiptID *string

	switch {
	case !hadDepartment && txn.HasDepartment():
		upsertReceipt = &domain.Receipt{
			ReceiptID:     uuid.NewString(),
			Reason:        txn.Reason,
			DepartmentID:  *txn.DepartmentID,
			TransactionID: txn.TransactionID,
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
		}
	case hadDepartment && !txn.HasDepartment():
		existing, err := s.receiptRepo.FindReceiptByTransactionID(ctx, transactionID)
		if err == nil {
			deleteReceiptID = &existing.ReceiptID
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	case hadDepartment && txn.HasDepartment():
		// Refresh the receipt in place; a department change moves it.
		// The already executed case (receipt row gone) recreates it only
		// when the department actually changed.
		existing, err := s.receiptRepo.FindReceiptByTransactionID(ctx, transactionID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			existing.Reason = txn.Reason
			existing.DepartmentID = *txn.DepartmentID
			upsertReceipt = existing
		} else if *txn.DepartmentID != previousDepartmentID {
			upsertReceipt = &domain.Receipt{
				ReceiptID:     uuid.NewString(),
				Reason:        txn.Reason,
				DepartmentID:  *txn.DepartmentID,
				TransactionID: txn.TransactionID,
				CreatedAt:     now,
				CreatedBy:     requestingUserID,
			}
		}
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn, upsertReceipt, deleteReceiptID); err != nil {
		if !errors.Is(err, apperrors.ErrValidation) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	logger.Info("Transaction updated", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return err
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
