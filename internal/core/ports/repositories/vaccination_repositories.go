package repositories

import (
	"context"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
)

// VaccinationReader defines read operations for vaccination record data.
type VaccinationReader interface {
	// FindVaccinationByID retrieves a vaccination record by its unique identifier.
	FindVaccinationByID(ctx context.Context, recordID string) (*domain.VaccinationRecord, error)

	// ListVaccinations retrieves a filtered, paginated list of vaccination records.
	ListVaccinations(ctx context.Context, filter domain.VaccinationFilter, limit int, offset int) ([]domain.VaccinationRecord, error)
}

// VaccinationWriter defines write operations for vaccination record data.
type VaccinationWriter interface {
	// SaveVaccination persists a new vaccination record.
	SaveVaccination(ctx context.Context, record domain.VaccinationRecord) error

	// UpdateVaccination persists changes to an existing vaccination record.
	UpdateVaccination(ctx context.Context, record domain.VaccinationRecord) error

	// DeleteVaccination removes a vaccination record.
	DeleteVaccination(ctx context.Context, recordID string) error
}

// VaccinationRepositoryFacade combines all vaccination-related repository interfaces.
type VaccinationRepositoryFacade interface {
	VaccinationReader
	VaccinationWriter
}
