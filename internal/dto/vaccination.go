package dto

import (
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
)

// CreateVaccinationRequest defines the data needed to record a vaccination.
type CreateVaccinationRequest struct {
	Category       string     `json:"category" binding:"required,oneof=CHILD PREGNANT_WOMAN"`
	PatientName    string     `json:"patientName" binding:"required,notblank"`
	BirthDate      *time.Time `json:"birthDate"`
	GuardianName   *string    `json:"guardianName"`
	VaccineName    string     `json:"vaccineName" binding:"required"`
	DoseNumber     int        `json:"doseNumber" binding:"required,min=1"`
	AdministeredAt *time.Time `json:"administeredAt"`
	NextDoseAt     *time.Time `json:"nextDoseAt"`
}

// UpdateVaccinationRequest defines the data allowed for updating a record.
type UpdateVaccinationRequest struct {
	PatientName    *string    `json:"patientName"`
	BirthDate      *time.Time `json:"birthDate"`
	GuardianName   *string    `json:"guardianName"`
	VaccineName    *string    `json:"vaccineName"`
	DoseNumber     *int       `json:"doseNumber" binding:"omitempty,min=1"`
	AdministeredAt *time.Time `json:"administeredAt"`
	NextDoseAt     *time.Time `json:"nextDoseAt"`
}

// ListVaccinationsParams defines query parameters for listing vaccination records.
type ListVaccinationsParams struct {
	Category string     `form:"category" binding:"omitempty,oneof=CHILD PREGNANT_WOMAN"`
	Search   string     `form:"search"`
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
	Limit    int        `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset   int        `form:"offset,default=0" binding:"omitempty,min=0"`
}

// VaccinationResponse defines the data returned for a vaccination record.
type VaccinationResponse struct {
	RecordID       string     `json:"recordID"`
	Category       string     `json:"category"`
	PatientName    string     `json:"patientName"`
	BirthDate      *time.Time `json:"birthDate"`
	GuardianName   *string    `json:"guardianName"`
	VaccineName    string     `json:"vaccineName"`
	DoseNumber     int        `json:"doseNumber"`
	AdministeredAt time.Time  `json:"administeredAt"`
	NextDoseAt     *time.Time `json:"nextDoseAt"`
}

// ListVaccinationsResponse wraps the list of vaccination records.
type ListVaccinationsResponse struct {
	Records []VaccinationResponse `json:"records"`
}

// ToVaccinationResponse converts a domain.VaccinationRecord to VaccinationResponse DTO.
func ToVaccinationResponse(r *domain.VaccinationRecord) VaccinationResponse {
	return VaccinationResponse{
		RecordID:       r.RecordID,
		Category:       string(r.Category),
		PatientName:    r.PatientName,
		BirthDate:      r.BirthDate,
		GuardianName:   r.GuardianName,
		VaccineName:    r.VaccineName,
		DoseNumber:     r.DoseNumber,
		AdministeredAt: r.AdministeredAt,
		NextDoseAt:     r.NextDoseAt,
	}
}

// ToListVaccinationsResponse converts a slice of domain.VaccinationRecord to ListVaccinationsResponse.
func ToListVaccinationsResponse(records []domain.VaccinationRecord) ListVaccinationsResponse {
	responses := make([]VaccinationResponse, len(records))
	for i, r := range records {
		responses[i] = ToVaccinationResponse(&r)
	}
	return ListVaccinationsResponse{Records: responses}
}
