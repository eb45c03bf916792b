package domain

import "time"

// VaccinationCategory distinguishes child and pregnant-woman records.
type VaccinationCategory string

const (
	ChildVaccination    VaccinationCategory = "CHILD"
	PregnantVaccination VaccinationCategory = "PREGNANT_WOMAN"
)

// VaccinationRecord tracks an administered vaccine dose.
type VaccinationRecord struct {
	RecordID       string              `json:"recordID"` // Primary Key (UUID)
	Category       VaccinationCategory `json:"category"`
	PatientName    string              `json:"patientName"`
	BirthDate      *time.Time          `json:"birthDate"`    // Nullable, child records
	GuardianName   *string             `json:"guardianName"` // Nullable, child records
	VaccineName    string              `json:"vaccineName"`
	DoseNumber     int                 `json:"doseNumber"`
	AdministeredAt time.Time           `json:"administeredAt"`
	NextDoseAt     *time.Time          `json:"nextDoseAt"` // Nullable
	AuditFields
}
