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
)

// DepartmentService implements department lookup and administration.
// Mutations require the ADMIN level.
type DepartmentService struct {
	departmentRepo portsrepo.DepartmentRepositoryFacade
	permissions    portssvc.PermissionResolverSvc
}

func NewDepartmentService(departmentRepo portsrepo.DepartmentRepositoryFacade, permissions portssvc.PermissionResolverSvc) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		permissions:    permissions,
	}
}

var _ portssvc.DepartmentSvcFacade = (*DepartmentService)(nil)

func (s *DepartmentService) GetDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	department, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find department by ID", slog.String("error", err.Error()), slog.String("department_id", departmentID))
		}
		return nil, err
	}
	return department, nil
}

func (s *DepartmentService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	departments, err := s.departmentRepo.ListDepartments(ctx)
	if err != nil {
		logger.Error("Failed to list departments", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	if departments == nil {
		return []domain.Department{}, nil
	}
	return departments, nil
}

func (s *DepartmentService) requireAdmin(ctx context.Context, requestingUserID string) error {
	pc, err := s.permissions.GetPermissionContext(ctx, requestingUserID)
	if err != nil {
		return err
	}
	if pc.Level != domain.PermissionAdmin {
		return apperrors.ErrForbidden
	}
	return nil
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest, creatorUserID string) (*domain.Department, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.requireAdmin(ctx, creatorUserID); err != nil {
		return nil, err
	}

	now := time.Now()
	department := domain.Department{
		DepartmentID: uuid.NewString(),
		Name:         req.Name,
		Description:  req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.departmentRepo.SaveDepartment(ctx, department); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save department", slog.String("error", err.Error()), slog.String("name", req.Name))
		}
		return nil, err
	}

	logger.Info("Department created", slog.String("department_id", department.DepartmentID))
	return &department, nil
}

func (s *DepartmentService) UpdateDepartment(ctx context.Context, departmentID string, req dto.UpdateDepartmentRequest, requestingUserID string) (*domain.Department, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.requireAdmin(ctx, requestingUserID); err != nil {
		return nil, err
	}

	department, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		department.Name = *req.Name
	}
	if req.Description != nil {
		department.Description = *req.Description
	}
	department.LastUpdatedAt = time.Now()
	department.LastUpdatedBy = requestingUserID

	if err := s.departmentRepo.UpdateDepartment(ctx, *department); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update department", slog.String("error", err.Error()), slog.String("department_id", departmentID))
		}
		return nil, err
	}

	logger.Info("Department updated", slog.String("department_id", departmentID))
	return department, nil
}
