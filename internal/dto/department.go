package dto

import "github.com/MboaHealth/hospital_admin_app/internal/core/domain"

// CreateDepartmentRequest defines the data needed to create a department.
type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required,notblank"`
	Description string `json:"description"`
}

// UpdateDepartmentRequest defines the data allowed for updating a department.
type UpdateDepartmentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// DepartmentResponse defines the data returned for a department.
type DepartmentResponse struct {
	DepartmentID string `json:"departmentID"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}

// ListDepartmentsResponse wraps the list of departments.
type ListDepartmentsResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}

// ToDepartmentResponse converts a domain.Department to DepartmentResponse DTO.
func ToDepartmentResponse(d *domain.Department) DepartmentResponse {
	return DepartmentResponse{
		DepartmentID: d.DepartmentID,
		Name:         d.Name,
		Description:  d.Description,
	}
}

// ToListDepartmentsResponse converts a slice of domain.Department to ListDepartmentsResponse.
func ToListDepartmentsResponse(departments []domain.Department) ListDepartmentsResponse {
	responses := make([]DepartmentResponse, len(departments))
	for i, d := range departments {
		responses[i] = ToDepartmentResponse(&d)
	}
	return ListDepartmentsResponse{Departments: responses}
}
