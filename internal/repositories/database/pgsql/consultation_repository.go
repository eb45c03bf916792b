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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxConsultationRepository struct {
	BaseRepository
}

// newPgxConsultationRepository creates a new repository for consultation data.
func newPgxConsultationRepository(pool *pgxpool.Pool) portsrepo.ConsultationRepositoryFacade {
	return &PgxConsultationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ConsultationRepositoryFacade = (*PgxConsultationRepository)(nil)

const consultationColumns = `consultation_id, patient_name, age, phone, address, gestational_weeks, diagnosis, notes, consultation_date, created_at, created_by, last_updated_at, last_updated_by`

func scanConsultation(row pgx.Row) (*models.Consultation, error) {
	var m models.Consultation
	err := row.Scan(
		&m.ConsultationID,
		&m.PatientName,
		&m.Age,
		&m.Phone,
		&m.Address,
		&m.GestationalWeeks,
		&m.Diagnosis,
		&m.Notes,
		&m.ConsultationDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveConsultation persists a new consultation.
func (r *PgxConsultationRepository) SaveConsultation(ctx context.Context, consultation domain.Consultation) error {
	m := mapping.ToModelConsultation(consultation)
	query := `
		INSERT INTO consultations (` + consultationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ConsultationID,
		m.PatientName,
		m.Age,
		m.Phone,
		m.Address,
		m.GestationalWeeks,
		m.Diagnosis,
		m.Notes,
		m.ConsultationDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save consultation %s: %w", m.ConsultationID, err)
	}
	return nil
}

// FindConsultationByID retrieves a consultation by its unique identifier.
func (r *PgxConsultationRepository) FindConsultationByID(ctx context.Context, consultationID string) (*domain.Consultation, error) {
	query := `SELECT ` + consultationColumns + ` FROM consultations WHERE consultation_id = $1;`
	m, err := scanConsultation(r.Pool.QueryRow(ctx, query, consultationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find consultation by id %s: %w", consultationID, err)
	}

	c := mapping.ToDomainConsultation(*m)
	return &c, nil
}

// ListConsultations retrieves a filtered, paginated list of consultations
// ordered most recent first.
func (r *PgxConsultationRepository) ListConsultations(ctx context.Context, filter domain.ConsultationFilter, limit int, offset int) ([]domain.Consultation, error) {
	query := `SELECT ` + consultationColumns + ` FROM consultations WHERE 1=1`
	args := []any{}
	argPos := 1

	if filter.Search != "" {
		query += fmt.Sprintf(" AND patient_name ILIKE $%d", argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND consultation_date >= $%d", argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND consultation_date <= $%d", argPos)
		args = append(args, *filter.To)
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY consultation_date DESC, created_at DESC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query consultations: %w", err)
	}
	defer rows.Close()

	modelConsultations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Consultation, error) {
		m, err := scanConsultation(row)
		if err != nil {
			return models.Consultation{}, err
		}
		return *m, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan consultations: %w", err)
	}

	return mapping.ToDomainConsultationSlice(modelConsultations), nil
}

// UpdateConsultation persists changes to an existing consultation.
func (r *PgxConsultationRepository) UpdateConsultation(ctx context.Context, consultation domain.Consultation) error {
	m := mapping.ToModelConsultation(consultation)
	query := `
		UPDATE consultations
		SET patient_name = $2, age = $3, phone = $4, address = $5, gestational_weeks = $6,
		    diagnosis = $7, notes = $8, consultation_date = $9, last_updated_at = $10, last_updated_by = $11
		WHERE consultation_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ConsultationID,
		m.PatientName,
		m.Age,
		m.Phone,
		m.Address,
		m.GestationalWeeks,
		m.Diagnosis,
		m.Notes,
		m.ConsultationDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update consultation %s: %w", m.ConsultationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteConsultation removes a consultation.
func (r *PgxConsultationRepository) DeleteConsultation(ctx context.Context, consultationID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM consultations WHERE consultation_id = $1;`, consultationID)
	if err != nil {
		return fmt.Errorf("failed to delete consultation %s: %w", consultationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
