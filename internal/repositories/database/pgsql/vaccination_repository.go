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

type PgxVaccinationRepository struct {
	BaseRepository
}

// newPgxVaccinationRepository creates a new repository for vaccination records.
func newPgxVaccinationRepository(pool *pgxpool.Pool) portsrepo.VaccinationRepositoryFacade {
	return &PgxVaccinationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VaccinationRepositoryFacade = (*PgxVaccinationRepository)(nil)

const vaccinationColumns = `record_id, category, patient_name, birth_date, guardian_name, vaccine_name, dose_number, administered_at, next_dose_at, created_at, created_by, last_updated_at, last_updated_by`

func scanVaccinationRecord(row pgx.Row) (*models.VaccinationRecord, error) {
	var m models.VaccinationRecord
	err := row.Scan(
		&m.RecordID,
		&m.Category,
		&m.PatientName,
		&m.BirthDate,
		&m.GuardianName,
		&m.VaccineName,
		&m.DoseNumber,
		&m.AdministeredAt,
		&m.NextDoseAt,
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

// SaveVaccination persists a new vaccination record.
func (r *PgxVaccinationRepository) SaveVaccination(ctx context.Context, record domain.VaccinationRecord) error {
	m := mapping.ToModelVaccinationRecord(record)
	query := `
		INSERT INTO vaccination_records (` + vaccinationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RecordID,
		m.Category,
		m.PatientName,
		m.BirthDate,
		m.GuardianName,
		m.VaccineName,
		m.DoseNumber,
		m.AdministeredAt,
		m.NextDoseAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save vaccination record %s: %w", m.RecordID, err)
	}
	return nil
}

// FindVaccinationByID retrieves a vaccination record by its unique identifier.
func (r *PgxVaccinationRepository) FindVaccinationByID(ctx context.Context, recordID string) (*domain.VaccinationRecord, error) {
	query := `SELECT ` + vaccinationColumns + ` FROM vaccination_records WHERE record_id = $1;`
	m, err := scanVaccinationRecord(r.Pool.QueryRow(ctx, query, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vaccination record by id %s: %w", recordID, err)
	}

	rec := mapping.ToDomainVaccinationRecord(*m)
	return &rec, nil
}

// ListVaccinations retrieves a filtered, paginated list of vaccination
// records ordered most recent first.
func (r *PgxVaccinationRepository) ListVaccinations(ctx context.Context, filter domain.VaccinationFilter, limit int, offset int) ([]domain.VaccinationRecord, error) {
	query := `SELECT ` + vaccinationColumns + ` FROM vaccination_records WHERE 1=1`
	args := []any{}
	argPos := 1

	if filter.Category != nil {
		query += fmt.Sprintf(" AND category = $%d", argPos)
		args = append(args, string(*filter.Category))
		argPos++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND patient_name ILIKE $%d", argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND administered_at >= $%d", argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND administered_at <= $%d", argPos)
		args = append(args, *filter.To)
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY administered_at DESC, created_at DESC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vaccination records: %w", err)
	}
	defer rows.Close()

	modelRecords, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.VaccinationRecord, error) {
		m, err := scanVaccinationRecord(row)
		if err != nil {
			return models.VaccinationRecord{}, err
		}
		return *m, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan vaccination records: %w", err)
	}

	return mapping.ToDomainVaccinationRecordSlice(modelRecords), nil
}

// UpdateVaccination persists changes to an existing vaccination record.
func (r *PgxVaccinationRepository) UpdateVaccination(ctx context.Context, record domain.VaccinationRecord) error {
	m := mapping.ToModelVaccinationRecord(record)
	query := `
		UPDATE vaccination_records
		SET category = $2, patient_name = $3, birth_date = $4, guardian_name = $5, vaccine_name = $6,
		    dose_number = $7, administered_at = $8, next_dose_at = $9, last_updated_at = $10, last_updated_by = $11
		WHERE record_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.RecordID,
		m.Category,
		m.PatientName,
		m.BirthDate,
		m.GuardianName,
		m.VaccineName,
		m.DoseNumber,
		m.AdministeredAt,
		m.NextDoseAt,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update vaccination record %s: %w", m.RecordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteVaccination removes a vaccination record.
func (r *PgxVaccinationRepository) DeleteVaccination(ctx context.Context, recordID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM vaccination_records WHERE record_id = $1;`, recordID)
	if err != nil {
		return fmt.Errorf("failed to delete vaccination record %s: %w", recordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
