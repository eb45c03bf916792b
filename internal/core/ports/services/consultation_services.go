package services

import (
	"context"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	"github.com/MboaHealth/hospital_admin_app/internal/dto"
)

// ConsultationSvcFacade handles maternity consultation records.
type ConsultationSvcFacade interface {
	// GetConsultationByID retrieves a consultation by its ID.
	GetConsultationByID(ctx context.Context, consultationID string) (*domain.Consultation, error)

	// ListConsultations retrieves a filtered, paginated list of consultations.
	ListConsultations(ctx context.Context, params dto.ListConsultationsParams) ([]domain.Consultation, error)

	// CreateConsultation records a new consultation.
	CreateConsultation(ctx context.Context, req dto.CreateConsultationRequest, creatorUserID string) (*domain.Consultation, error)

	// UpdateConsultation updates an existing consultation.
	UpdateConsultation(ctx context.Context, consultationID string, req dto.UpdateConsultationRequest, requestingUserID string) (*domain.Consultation, error)

	// DeleteConsultation removes a consultation.
	DeleteConsultation(ctx context.Context, consultationID string, requestingUserID string) error
}
