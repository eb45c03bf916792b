package mapping

import (
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	"github.com/MboaHealth/hospital_admin_app/internal/models"
)

// ToModelDepartment converts a domain Department to a model Department
func ToModelDepartment(d domain.Department) models.Department {
	return models.Department{
		DepartmentID: d.DepartmentID,
		Name:         d.Name,
		Description:  d.Description,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDepartment converts a model Department to a domain Department
func ToDomainDepartment(m models.Department) domain.Department {
	return domain.Department{
		DepartmentID: m.DepartmentID,
		Name:         m.Name,
		Description:  m.Description,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDepartmentSlice converts a slice of model Departments to domain Departments
func ToDomainDepartmentSlice(ms []models.Department) []domain.Department {
	ds := make([]domain.Department, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDepartment(m)
	}
	return ds
}
