package mapping

import (
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	"github.com/MboaHealth/hospital_admin_app/internal/models"
)

// ToModelVaccinationRecord converts a domain VaccinationRecord to a model VaccinationRecord
func ToModelVaccinationRecord(d domain.VaccinationRecord) models.VaccinationRecord {
	return models.VaccinationRecord{
		RecordID:       d.RecordID,
		Category:       string(d.Category),
		PatientName:    d.PatientName,
		BirthDate:      d.BirthDate,
		GuardianName:   d.GuardianName,
		VaccineName:    d.VaccineName,
		DoseNumber:     d.DoseNumber,
		AdministeredAt: d.AdministeredAt,
		NextDoseAt:     d.NextDoseAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVaccinationRecord converts a model VaccinationRecord to a domain VaccinationRecord
func ToDomainVaccinationRecord(m models.VaccinationRecord) domain.VaccinationRecord {
	return domain.VaccinationRecord{
		RecordID:       m.RecordID,
		Category:       domain.VaccinationCategory(m.Category),
		PatientName:    m.PatientName,
		BirthDate:      m.BirthDate,
		GuardianName:   m.GuardianName,
		VaccineName:    m.VaccineName,
		DoseNumber:     m.DoseNumber,
		AdministeredAt: m.AdministeredAt,
		NextDoseAt:     m.NextDoseAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVaccinationRecordSlice converts a slice of model VaccinationRecords to domain VaccinationRecords
func ToDomainVaccinationRecordSlice(ms []models.VaccinationRecord) []domain.VaccinationRecord {
	ds := make([]domain.VaccinationRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVaccinationRecord(m)
	}
	return ds
}
