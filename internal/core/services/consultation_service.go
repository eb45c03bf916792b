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

// ConsultationService implements maternity consultation CRUD.
type ConsultationService struct {
	consultationRepo portsrepo.ConsultationRepositoryFacade
}

func NewConsultationService(consultationRepo portsrepo.ConsultationRepositoryFacade) *ConsultationService {
	return &ConsultationService{consultationRepo: consultationRepo}
}

var _ portssvc.ConsultationSvcFacade = (*ConsultationService)(nil)

func (s *ConsultationService) GetConsultationByID(ctx context.Context, consultationID string) (*domain.Consultation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	consultation, err := s.consultationRepo.FindConsultationByID(ctx, consultationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find consultation", slog.String("error", err.Error()), slog.String("consultation_id", consultationID))
		}
		return nil, err
	}
	return consultation, nil
}

func (s *ConsultationService) ListConsultations(ctx context.Context, params dto.ListConsultationsParams) ([]domain.Consultation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	filter := domain.ConsultationFilter{
		Search: params.Search,
		From:   params.From,
		To:     params.To,
	}
	consultations, err := s.consultationRepo.ListConsultations(ctx, filter, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list consultations", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	if consultations == nil {
		return []domain.Consultation{}, nil
	}
	return consultations, nil
}

func (s *ConsultationService) CreateConsultation(ctx context.Context, req dto.CreateConsultationRequest, creatorUserID string) (*domain.Consultation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	consultationDate := now
	if req.ConsultationDate != nil {
		consultationDate = *req.ConsultationDate
	}

	consultation := domain.Consultation{
		ConsultationID:   uuid.NewString(),
		PatientName:      req.PatientName,
		Age:              req.Age,
		Phone:            req.Phone,
		Address:          req.Address,
		GestationalWeeks: req.GestationalWeeks,
		Diagnosis:        req.Diagnosis,
		Notes:            req.Notes,
		ConsultationDate: consultationDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.consultationRepo.SaveConsultation(ctx, consultation); err != nil {
		logger.Error("Failed to save consultation", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Consultation recorded", slog.String("consultation_id", consultation.ConsultationID))
	return &consultation, nil
}

func (s *ConsultationService) UpdateConsultation(ctx context.Context, consultationID string, req dto.UpdateConsultationRequest, requestingUserID string) (*domain.Consultation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	consultation, err := s.consultationRepo.FindConsultationByID(ctx, consultationID)
	if err != nil {
		return nil, err
	}

	if req.PatientName != nil {
		consultation.PatientName = *req.PatientName
	}
	if req.Age != nil {
		consultation.Age = *req.Age
	}
	if req.Phone != nil {
		consultation.Phone = *req.Phone
	}
	if req.Address != nil {
		consultation.Address = *req.Address
	}
	if req.GestationalWeeks != nil {
		consultation.GestationalWeeks = req.GestationalWeeks
	}
	if req.Diagnosis != nil {
		consultation.Diagnosis = *req.Diagnosis
	}
	if req.Notes != nil {
		consultation.Notes = *req.Notes
	}
	if req.ConsultationDate != nil {
		consultation.ConsultationDate = *req.ConsultationDate
	}
	consultation.LastUpdatedAt = time.Now()
	consultation.LastUpdatedBy = requestingUserID

	if err := s.consultationRepo.UpdateConsultation(ctx, *consultation); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update consultation", slog.String("error", err.Error()), slog.String("consultation_id", consultationID))
		}
		return nil, err
	}

	logger.Info("Consultation updated", slog.String("consultation_id", consultationID))
	return consultation, nil
}

func (s *ConsultationService) DeleteConsultation(ctx context.Context, consultationID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.consultationRepo.DeleteConsultation(ctx, consultationID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete consultation", slog.String("error", err.Error()), slog.String("consultation_id", consultationID))
		}
		return err
	}

	logger.Info("Consultation deleted", slog.String("consultation_id", consultationID))
	return nil
}
