package models

import "time"

// VaccinationRecord represents a row of the vaccination_records table.
type VaccinationRecord struct {
	RecordID       string     `json:"recordID"`
	Category       string     `json:"category"` // CHILD or PREGNANT_WOMAN
	PatientName    string     `json:"patientName"`
	BirthDate      *time.Time `json:"birthDate"`
	GuardianName   *string    `json:"guardianName"`
	VaccineName    string     `json:"vaccineName"`
	DoseNumber     int        `json:"doseNumber"`
	AdministeredAt time.Time  `json:"administeredAt"`
	NextDoseAt     *time.Time `json:"nextDoseAt"`
	AuditFields
}
