package repositories

import (
	"context"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
)

// DepartmentReader defines read operations for department data.
type DepartmentReader interface {
	// FindDepartmentByID retrieves a department by its unique identifier.
	FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error)

	// ListDepartments retrieves all departments ordered by name.
	ListDepartments(ctx context.Context) ([]domain.Department, error)
}

// DepartmentWriter defines write operations for department data.
type DepartmentWriter interface {
	// SaveDepartment persists a new department.
	SaveDepartment(ctx context.Context, department domain.Department) error

	// UpdateDepartment persists changes to an existing department.
	UpdateDepartment(ctx context.Context, department domain.Department) error
}

// DepartmentRepositoryFacade combines all department-related repository interfaces.
type DepartmentRepositoryFacade interface {
	DepartmentReader
	DepartmentWriter
}
