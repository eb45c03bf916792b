package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Profile      ProfileSvcFacade
	Token        TokenSvcFacade
	Department   DepartmentSvcFacade
	Inventory    InventorySvcFacade
	Transaction  TransactionSvcFacade
	Receipt      ReceiptSvcFacade
	Consultation ConsultationSvcFacade
	Vaccination  VaccinationSvcFacade
	Reporting    ReportingSvcFacade
	Export       ExportSvcFacade
}
