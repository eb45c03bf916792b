package domain

import "time"

// Consultation is a maternity consultation record.
type Consultation struct {
	ConsultationID   string    `json:"consultationID"` // Primary Key (UUID)
	PatientName      string    `json:"patientName"`
	Age              int       `json:"age"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	GestationalWeeks *int      `json:"gestationalWeeks"` // Nullable
	Diagnosis        string    `json:"diagnosis"`
	Notes            string    `json:"notes"`
	ConsultationDate time.Time `json:"consultationDate"`
	AuditFields
}
