package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/apperrors"
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	portsrepo "github.com/MboaHealth/hospital_admin_app/internal/core/ports/repositories"
	"github.com/MboaHealth/hospital_admin_app/internal/models"
	"github.com/MboaHealth/hospital_admin_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProfileRepository struct {
	BaseRepository
}

// newPgxProfileRepository creates a new repository for profile data.
func newPgxProfileRepository(pool *pgxpool.Pool) portsrepo.ProfileRepositoryFacade {
	return &PgxProfileRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProfileRepositoryFacade = (*PgxProfileRepository)(nil)

const profileColumns = `profile_id, full_name, email, role, password_hash, refresh_token_hash, refresh_token_expiry, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var m models.Profile
	err := row.Scan(
		&m.ProfileID,
		&m.FullName,
		&m.Email,
		&m.Role,
		&m.PasswordHash,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveProfile persists a new profile.
func (r *PgxProfileRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	m := mapping.ToModelProfile(profile)
	query := `
		INSERT INTO profiles (profile_id, full_name, email, role, password_hash, refresh_token_hash, refresh_token_expiry, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProfileID,
		m.FullName,
		m.Email,
		m.Role,
		m.PasswordHash,
		m.RefreshTokenHash,
		m.RefreshTokenExpiryTime,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: email %s", apperrors.ErrDuplicate, m.Email)
		}
		return fmt.Errorf("failed to save profile %s: %w", m.ProfileID, err)
	}
	return nil
}

// FindProfileByID retrieves a profile by its unique identifier.
func (r *PgxProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE profile_id = $1 AND deleted_at IS NULL;`
	m, err := scanProfile(r.Pool.QueryRow(ctx, query, profileID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile by id %s: %w", profileID, err)
	}
	d := mapping.ToDomainProfile(*m)
	return &d, nil
}

// FindProfileByEmail retrieves a profile by email, excluding soft-deleted rows.
func (r *PgxProfileRepository) FindProfileByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE lower(email) = lower($1) AND deleted_at IS NULL;`
	m, err := scanProfile(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile by email: %w", err)
	}
	d := mapping.ToDomainProfile(*m)
	return &d, nil
}

// ListProfiles retrieves a paginated list of profiles.
func (r *PgxProfileRepository) ListProfiles(ctx context.Context, limit int, offset int) ([]domain.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE deleted_at IS NULL
		ORDER BY full_name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	modelProfiles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Profile, error) {
		m, err := scanProfile(row)
		if err != nil {
			return models.Profile{}, err
		}
		return *m, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan profiles: %w", err)
	}

	return mapping.ToDomainProfileSlice(modelProfiles), nil
}

// ListDepartmentsForProfile retrieves the departments a profile belongs to.
func (r *PgxProfileRepository) ListDepartmentsForProfile(ctx context.Context, profileID string) ([]domain.Department, error) {
	query := `
		SELECT d.department_id, d.name, d.description, d.created_at, d.created_by, d.last_updated_at, d.last_updated_by
		FROM departments d
		JOIN profile_departments pd ON pd.department_id = d.department_id
		WHERE pd.profile_id = $1
		ORDER BY d.name;
	`
	rows, err := r.Pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments for profile %s: %w", profileID, err)
	}
	defer rows.Close()

	modelDepartments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Department, error) {
		var m models.Department
		err := row.Scan(&m.DepartmentID, &m.Name, &m.Description, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan departments for profile %s: %w", profileID, err)
	}

	return mapping.ToDomainDepartmentSlice(modelDepartments), nil
}

// UpdateProfile persists changes to an existing profile.
func (r *PgxProfileRepository) UpdateProfile(ctx context.Context, profile domain.Profile) error {
	m := mapping.ToModelProfile(profile)
	query := `
		UPDATE profiles
		SET full_name = $2, role = $3, last_updated_at = $4, last_updated_by = $5
		WHERE profile_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, m.ProfileID, m.FullName, m.Role, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update profile %s: %w", m.ProfileID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkProfileDeleted soft-deletes a profile.
func (r *PgxProfileRepository) MarkProfileDeleted(ctx context.Context, profileID string, deletedByUserID string, deletedAt time.Time) error {
	query := `
		UPDATE profiles
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE profile_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, profileID, deletedAt, deletedByUserID)
	if err != nil {
		return fmt.Errorf("failed to mark profile %s deleted: %w", profileID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateRefreshToken stores the hash and expiry of the current refresh token.
func (r *PgxProfileRepository) UpdateRefreshToken(ctx context.Context, profileID string, tokenHash *string, expiryTime *time.Time) error {
	query := `
		UPDATE profiles
		SET refresh_token_hash = $2, refresh_token_expiry = $3
		WHERE profile_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, profileID, tokenHash, expiryTime)
	if err != nil {
		return fmt.Errorf("failed to update refresh token for profile %s: %w", profileID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetDepartmentMemberships replaces the profile's department memberships
// within a single database transaction.
func (r *PgxProfileRepository) SetDepartmentMemberships(ctx context.Context, profileID string, departmentIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM profile_departments WHERE profile_id = $1;`, profileID); err != nil {
		return fmt.Errorf("failed to clear memberships for profile %s: %w", profileID, err)
	}

	batch := &pgx.Batch{}
	for _, departmentID := range departmentIDs {
		batch.Queue(`INSERT INTO profile_departments (profile_id, department_id) VALUES ($1, $2);`, profileID, departmentID)
	}
	results := tx.SendBatch(ctx, batch)
	for range departmentIDs {
		if _, err := results.Exec(); err != nil {
			results.Close()
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return fmt.Errorf("%w: unknown department", apperrors.ErrValidation)
			}
			return fmt.Errorf("failed to insert membership for profile %s: %w", profileID, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close membership batch: %w", err)
	}

	return r.Commit(ctx, tx)
}
