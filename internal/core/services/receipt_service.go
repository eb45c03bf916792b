package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MboaHealth/hospital_admin_app/internal/apperrors"
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	portsrepo "github.com/MboaHealth/hospital_admin_app/internal/core/ports/repositories"
	portssvc "github.com/MboaHealth/hospital_admin_app/internal/core/ports/services"
	"github.com/MboaHealth/hospital_admin_app/internal/dto"
	"github.com/MboaHealth/hospital_admin_app/internal/middleware"
)

// ReceiptService lists pending receipts and executes them. Receipts are
// created by the transaction write path; execution is the only mutation
// exposed here.
type ReceiptService struct {
	receiptRepo portsrepo.ReceiptRepositoryFacade
	permissions portssvc.PermissionResolverSvc
}

func NewReceiptService(receiptRepo portsrepo.ReceiptRepositoryFacade, permissions portssvc.PermissionResolverSvc) *ReceiptService {
	return &ReceiptService{
		receiptRepo: receiptRepo,
		permissions: permissions,
	}
}

var _ portssvc.ReceiptSvcFacade = (*ReceiptService)(nil)

func (s *ReceiptService) GetReceiptByID(ctx context.Context, receiptID string, requestingUserID string) (*domain.Receipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find receipt", slog.String("error", err.Error()), slog.String("receipt_id", receiptID))
		}
		return nil, err
	}

	pc, err := s.permissions.GetPermissionContext(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}
	if !pc.Level.SeesAllDepartments() && !pc.MemberOf(receipt.DepartmentID) {
		return nil, apperrors.ErrForbidden
	}

	return receipt, nil
}

// ListReceipts returns pending receipts, scoped to the caller's departments
// unless the caller sees everything.
func (s *ReceiptService) ListReceipts(ctx context.Context, params dto.ListReceiptsParams, requestingUserID string) ([]domain.Receipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	pc, err := s.permissions.GetPermissionContext(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}

	filter := domain.ReceiptFilter{Search: params.Search}
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
				return []domain.Receipt{}, nil
			}
			filter.DepartmentIDs = pc.DepartmentIDs
		}
	}

	receipts, err := s.receiptRepo.ListReceipts(ctx, filter, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list receipts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	if receipts == nil {
		return []domain.Receipt{}, nil
	}
	return receipts, nil
}

// ExecuteReceipt clears a pending receipt by deleting it. The deletion is
// irreversible. Members may execute receipts of their own departments; a
// receipt of a foreign department requires the ADMIN or MANAGEMENT level.
func (s *ReceiptService) ExecuteReceipt(ctx context.Context, receiptID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find receipt for execution", slog.String("error", err.Error()), slog.String("receipt_id", receiptID))
		}
		return err
	}

	pc, err := s.permissions.GetPermissionContext(ctx, requestingUserID)
	if err != nil {
		return err
	}
	if !pc.Level.CanExecuteForeignReceipt() && !pc.MemberOf(receipt.DepartmentID) {
		return apperrors.ErrForbidden
	}

	if err := s.receiptRepo.DeleteReceipt(ctx, receiptID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to execute receipt", slog.String("error", err.Error()), slog.String("receipt_id", receiptID))
		}
		return err
	}

	logger.Info("Receipt executed",
		slog.String("receipt_id", receiptID),
		slog.String("department_id", receipt.DepartmentID),
		slog.String("executed_by", requestingUserID),
	)
	return nil
}
