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

// VaccinationService implements vaccination record CRUD for both the child
// and pregnant-woman categories.
type VaccinationService struct {
	vaccinationRepo portsrepo.VaccinationRepositoryFacade
}

func NewVaccinationService(vaccinationRepo portsrepo.VaccinationRepositoryFacade) *VaccinationService {
	return &VaccinationService{vaccinationRepo: vaccinationRepo}
}

var _ portssvc.VaccinationSvcFacade = (*VaccinationService)(nil)

func (s *VaccinationService) GetVaccinationByID(ctx context.Context, recordID string) (*domain.VaccinationRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	record, err := s.vaccinationRepo.FindVaccinationByID(ctx, recordID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find vaccination record", slog.String("error", err.Error()), slog.String("record_id", recordID))
		}
		return nil, err
	}
	return record, nil
}

func (s *VaccinationService) ListVaccinations(ctx context.Context, params dto.ListVaccinationsParams) ([]domain.VaccinationRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	filter := domain.VaccinationFilter{
		Search: params.Search,
		From:   params.From,
		To:     params.To,
	}
	if params.Category != "" {
		c := domain.VaccinationCategory(params.Category)
		filter.Category = &c
	}

	records, err := s.vaccinationRepo.ListVaccinations(ctx, filter, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list vaccination records", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list vaccination records: %w", err)
	}
	if records == nil {
		return []domain.VaccinationRecord{}, nil
	}
	return records, nil
}

func (s *VaccinationService) CreateVaccination(ctx context.Context, req dto.CreateVaccinationRequest, creatorUserID string) (*domain.VaccinationRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category := domain.VaccinationCategory(req.Category)
	if category == domain.ChildVaccination && req.BirthDate == nil {
		return nil, fmt.Errorf("%w: birth date is required for child records", apperrors.ErrValidation)
	}

	now := time.Now()
	administeredAt := now
	if req.AdministeredAt != nil {
		administeredAt = *req.AdministeredAt
	}

	record := domain.VaccinationRecord{
		RecordID:       uuid.NewString(),
		Category:       category,
		PatientName:    req.PatientName,
		BirthDate:      req.BirthDate,
		GuardianName:   req.GuardianName,
		VaccineName:    req.VaccineName,
		DoseNumber:     req.DoseNumber,
		AdministeredAt: administeredAt,
		NextDoseAt:     req.NextDoseAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.vaccinationRepo.SaveVaccination(ctx, record); err != nil {
		logger.Error("Failed to save vaccination record", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Vaccination recorded", slog.String("record_id", record.RecordID), slog.String("category", string(record.Category)))
	return &record, nil
}

func (s *VaccinationService) UpdateVaccination(ctx context.Context, recordID string, req dto.UpdateVaccinationRequest, requestingUserID string) (*domain.VaccinationRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	record, err := s.vaccinationRepo.FindVaccinationByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	if req.PatientName != nil {
		record.PatientName = *req.PatientName
	}
	if req.BirthDate != nil {
		record.BirthDate = req.BirthDate
	}
	if req.GuardianName != nil {
		record.GuardianName = req.GuardianName
	}
	if req.VaccineName != nil {
		record.VaccineName = *req.VaccineName
	}
	if req.DoseNumber != nil {
		record.DoseNumber = *req.DoseNumber
	}
	if req.AdministeredAt != nil {
		record.AdministeredAt = *req.AdministeredAt
	}
	if req.NextDoseAt != nil {
		record.NextDoseAt = req.NextDoseAt
	}
	record.LastUpdatedAt = time.Now()
	record.LastUpdatedBy = requestingUserID

	if err := s.vaccinationRepo.UpdateVaccination(ctx, *record); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update vaccination record", slog.String("error", err.Error()), slog.String("record_id", recordID))
		}
		return nil, err
	}

	logger.Info("Vaccination record updated", slog.String("record_id", recordID))
	return record, nil
}

func (s *VaccinationService) DeleteVaccination(ctx context.Context, recordID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.vaccinationRepo.DeleteVaccination(ctx, recordID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete vaccination record", slog.String("error", err.Error()), slog.String("record_id", recordID))
		}
		return err
	}

	logger.Info("Vaccination record deleted", slog.String("record_id", recordID))
	return nil
}
