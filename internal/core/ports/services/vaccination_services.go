package services

import (
	"context"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	"github.com/MboaHealth/hospital_admin_app/internal/dto"
)

// VaccinationSvcFacade handles child and pregnant-woman vaccination records.
type VaccinationSvcFacade interface {
	// GetVaccinationByID retrieves a vaccination record by its ID.
	GetVaccinationByID(ctx context.Context, recordID string) (*domain.VaccinationRecord, error)

	// ListVaccinations retrieves a filtered, paginated list of records.
	ListVaccinations(ctx context.Context, params dto.ListVaccinationsParams) ([]domain.VaccinationRecord, error)

	// CreateVaccination records a new vaccination.
	CreateVaccination(ctx context.Context, req dto.CreateVaccinationRequest, creatorUserID string) (*domain.VaccinationRecord, error)

	// UpdateVaccination updates an existing record.
	UpdateVaccination(ctx context.Context, recordID string, req dto.UpdateVaccinationRequest, requestingUserID string) (*domain.VaccinationRecord, error)

	// DeleteVaccination removes a record.
	DeleteVaccination(ctx context.Context, recordID string, requestingUserID string) error
}
