package models

// Department represents a row of the departments table.
type Department struct {
	DepartmentID string `json:"departmentID"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	AuditFields
}
