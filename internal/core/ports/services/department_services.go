package services

import (
	"context"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	"github.com/MboaHealth/hospital_admin_app/internal/dto"
)

// DepartmentSvcFacade handles department lookup and administration.
type DepartmentSvcFacade interface {
	// GetDepartmentByID retrieves a department by its ID.
	GetDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error)

	// ListDepartments retrieves all departments.
	ListDepartments(ctx context.Context) ([]domain.Department, error)

	// CreateDepartment creates a department. Admin only.
	CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest, creatorUserID string) (*domain.Department, error)

	// UpdateDepartment updates a department. Admin only.
	UpdateDepartment(ctx context.Context, departmentID string, req dto.UpdateDepartmentRequest, requestingUserID string) (*domain.Department, error)
}
