package dto

import (
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
)

// CreateConsultationRequest defines the data needed to record a consultation.
type CreateConsultationRequest struct {
	PatientName      string     `json:"patientName" binding:"required,notblank"`
	Age              int        `json:"age" binding:"required,min=10,max=60"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address"`
	GestationalWeeks *int       `json:"gestationalWeeks" binding:"omitempty,min=1,max=45"`
	Diagnosis        string     `json:"diagnosis"`
	Notes            string     `json:"notes"`
	ConsultationDate *time.Time `json:"consultationDate"`
}

// UpdateConsultationRequest defines the data allowed for updating a consultation.
type UpdateConsultationRequest struct {
	PatientName      *string    `json:"patientName"`
	Age              *int       `json:"age" binding:"omitempty,min=10,max=60"`
	Phone            *string    `json:"phone"`
	Address          *string    `json:"address"`
	GestationalWeeks *int       `json:"gestationalWeeks" binding:"omitempty,min=1,max=45"`
	Diagnosis        *string    `json:"diagnosis"`
	Notes            *string    `json:"notes"`
	ConsultationDate *time.Time `json:"consultationDate"`
}

// ListConsultationsParams defines query parameters for listing consultations.
type ListConsultationsParams struct {
	Search string     `form:"search"`
	From   *time.Time `form:"from" time_format:"2006-01-02"`
	To     *time.Time `form:"to" time_format:"2006-01-02"`
	Limit  int        `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int        `form:"offset,default=0" binding:"omitempty,min=0"`
}

// ConsultationResponse defines the data returned for a consultation.
type ConsultationResponse struct {
	ConsultationID   string    `json:"consultationID"`
	PatientName      string    `json:"patientName"`
	Age              int       `json:"age"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	GestationalWeeks *int      `json:"gestationalWeeks"`
	Diagnosis        string    `json:"diagnosis"`
	Notes            string    `json:"notes"`
	ConsultationDate time.Time `json:"consultationDate"`
	CreatedBy        string    `json:"createdBy"`
}

// ListConsultationsResponse wraps the list of consultations.
type ListConsultationsResponse struct {
	Consultations []ConsultationResponse `json:"consultations"`
}

// ToConsultationResponse converts a domain.Consultation to ConsultationResponse DTO.
func ToConsultationResponse(c *domain.Consultation) ConsultationResponse {
	return ConsultationResponse{
		ConsultationID:   c.ConsultationID,
		PatientName:      c.PatientName,
		Age:              c.Age,
		Phone:            c.Phone,
		Address:          c.Address,
		GestationalWeeks: c.GestationalWeeks,
		Diagnosis:        c.Diagnosis,
		Notes:            c.Notes,
		ConsultationDate: c.ConsultationDate,
		CreatedBy:        c.CreatedBy,
	}
}

// ToListConsultationsResponse converts a slice of domain.Consultation to ListConsultationsResponse.
func ToListConsultationsResponse(consultations []domain.Consultation) ListConsultationsResponse {
	responses := make([]ConsultationResponse, len(consultations))
	for i, c := range consultations {
		responses[i] = ToConsultationResponse(&c)
	}
	return ListConsultationsResponse{Consultations: responses}
}
