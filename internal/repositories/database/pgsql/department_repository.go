package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/MboaHealth/hospital_admin_app/internal/apperrors"
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	portsrepo "github.com/MboaHealth/hospital_admin_app/internal/core/ports/repositories"
	"github.com/MboaHealth/hospital_admin_app/internal/models"
	"github.com/MboaHealth/hospital_admin_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDepartmentRepository struct {
	BaseRepository
}

// newPgxDepartmentRepository creates a new repository for department data.
func newPgxDepartmentRepository(pool *pgxpool.Pool) portsrepo.DepartmentRepositoryFacade {
	return &PgxDepartmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DepartmentRepositoryFacade = (*PgxDepartmentRepository)(nil)

// SaveDepartment persists a new department.
func (r *PgxDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	m := mapping.ToModelDepartment(department)
	query := `
		INSERT INTO departments (department_id, name, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DepartmentID,
		m.Name,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: department %s", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save department %s: %w", m.DepartmentID, err)
	}
	return nil
}

// FindDepartmentByID retrieves a department by its unique identifier.
func (r *PgxDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	query := `
		SELECT department_id, name, description, created_at, created_by, last_updated_at, last_updated_by
		FROM departments
		WHERE department_id = $1;
	`
	var m models.Department
	err := r.Pool.QueryRow(ctx, query, departmentID).Scan(
		&m.DepartmentID,
		&m.Name,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find department by id %s: %w", departmentID, err)
	}

	d := mapping.ToDomainDepartment(m)
	return &d, nil
}

// ListDepartments retrieves all departments ordered by name.
func (r *PgxDepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	query := `
		SELECT department_id, name, description, created_at, created_by, last_updated_at, last_updated_by
		FROM departments
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	modelDepartments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Department, error) {
		var m models.Department
		err := row.Scan(&m.DepartmentID, &m.Name, &m.Description, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan departments: %w", err)
	}

	return mapping.ToDomainDepartmentSlice(modelDepartments), nil
}

// UpdateDepartment persists changes to an existing department.
func (r *PgxDepartmentRepository) UpdateDepartment(ctx context.Context, department domain.Department) error {
	m := mapping.ToModelDepartment(department)
	query := `
		UPDATE departments
		SET name = $2, description = $3, last_updated_at = $4, last_updated_by = $5
		WHERE department_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.DepartmentID, m.Name, m.Description, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: department %s", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to update department %s: %w", m.DepartmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
