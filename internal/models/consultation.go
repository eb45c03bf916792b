package models

import "time"

// Consultation represents a row of the consultations table.
type Consultation struct {
	ConsultationID   string    `json:"consultationID"`
	PatientName      string    `json:"patientName"`
	Age              int       `json:"age"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	GestationalWeeks *int      `json:"gestationalWeeks"`
	Diagnosis        string    `json:"diagnosis"`
	Notes            string    `json:"notes"`
	ConsultationDate time.Time `json:"consultationDate"`
	AuditFields
}
