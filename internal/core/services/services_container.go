package services

import (
	portsrepo "github.com/MboaHealth/hospital_admin_app/internal/core/ports/repositories"
	portssvc "github.com/MboaHealth/hospital_admin_app/internal/core/ports/services"
	"github.com/MboaHealth/hospital_admin_app/pkg/config"
)

// exportLetterhead is printed at the top of every generated PDF.
const exportLetterhead = "Hôpital - Administration"

// NewServiceContainer creates and wires all application services.
func NewServiceContainer(provider *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	profileSvc := NewProfileService(provider.ProfileRepo)
	tokenSvc := NewTokenService(cfg, provider.ProfileRepo)
	departmentSvc := NewDepartmentService(provider.DepartmentRepo, profileSvc)
	inventorySvc := NewInventoryService(provider.InventoryRepo)
	transactionSvc := NewTransactionService(provider.TransactionRepo, provider.ReceiptRepo, provider.DepartmentRepo, profileSvc)
	receiptSvc := NewReceiptService(provider.ReceiptRepo, profileSvc)
	consultationSvc := NewConsultationService(provider.ConsultationRepo)
	vaccinationSvc := NewVaccinationService(provider.VaccinationRepo)
	reportingSvc := NewReportingService(provider.ReportingRepo)
	exportSvc := NewExportService(exportLetterhead)

	return &portssvc.ServiceContainer{
		Profile:      profileSvc,
		Token:        tokenSvc,
		Department:   departmentSvc,
		Inventory:    inventorySvc,
		Transaction:  transactionSvc,
		Receipt:      receiptSvc,
		Consultation: consultationSvc,
		Vaccination:  vaccinationSvc,
		Reporting:    reportingSvc,
		Export:       exportSvc,
	}
}
