package mapping

import (
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	"github.com/MboaHealth/hospital_admin_app/internal/models"
)

// ToModelConsultation converts a domain Consultation to a model Consultation
func ToModelConsultation(d domain.Consultation) models.Consultation {
	return models.Consultation{
		ConsultationID:   d.ConsultationID,
		PatientName:      d.PatientName,
		Age:              d.Age,
		Phone:            d.Phone,
		Address:          d.Address,
		GestationalWeeks: d.GestationalWeeks,
		Diagnosis:        d.Diagnosis,
		Notes:            d.Notes,
		ConsultationDate: d.ConsultationDate,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainConsultation converts a model Consultation to a domain Consultation
func ToDomainConsultation(m models.Consultation) domain.Consultation {
	return domain.Consultation{
		ConsultationID:   m.ConsultationID,
		PatientName:      m.PatientName,
		Age:              m.Age,
		Phone:            m.Phone,
		Address:          m.Address,
		GestationalWeeks: m.GestationalWeeks,
		Diagnosis:        m.Diagnosis,
		Notes:            m.Notes,
		ConsultationDate: m.ConsultationDate,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainConsultationSlice converts a slice of model Consultations to domain Consultations
func ToDomainConsultationSlice(ms []models.Consultation) []domain.Consultation {
	ds := make([]domain.Consultation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainConsultation(m)
	}
	return ds
}
