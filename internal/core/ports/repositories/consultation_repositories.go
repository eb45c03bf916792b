package repositories

import (
	"context"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
)

// ConsultationReader defines read operations for consultation data.
type ConsultationReader interface {
	// FindConsultationByID retrieves a consultation by its unique identifier.
	FindConsultationByID(ctx context.Context, consultationID string) (*domain.Consultation, error)

	// ListConsultations retrieves a filtered, paginated list of consultations.
	ListConsultations(ctx context.Context, filter domain.ConsultationFilter, limit int, offset int) ([]domain.Consultation, error)
}

// ConsultationWriter defines write operations for consultation data.
type ConsultationWriter interface {
	// SaveConsultation persists a new consultation.
	SaveConsultation(ctx context.Context, consultation domain.Consultation) error

	// UpdateConsultation persists changes to an existing consultation.
	UpdateConsultation(ctx context.Context, consultation domain.Consultation) error

	// DeleteConsultation removes a consultation.
	DeleteConsultation(ctx context.Context, consultationID string) error
}

// ConsultationRepositoryFacade combines all consultation-related repository interfaces.
type ConsultationRepositoryFacade interface {
	ConsultationReader
	ConsultationWriter
}
