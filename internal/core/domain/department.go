package domain

// Department is an organizational unit, used both as a data-scoping
// dimension and as the basis for permission elevation.
type Department struct {
	DepartmentID string `json:"departmentID"` // Primary Key (UUID)
	Name         string `json:"name"`         // Unique
	Description  string `json:"description"`
	AuditFields
}

// DepartmentMembership links a profile to a department.
type DepartmentMembership struct {
	ProfileID      string `json:"profileID"`
	DepartmentID   string `json:"departmentID"`
	DepartmentName string `json:"departmentName"`
}
