package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ProfileRepo      ProfileRepositoryFacade
	DepartmentRepo   DepartmentRepositoryFacade
	InventoryRepo    InventoryRepositoryFacade
	TransactionRepo  TransactionRepositoryFacade
	ReceiptRepo      ReceiptRepositoryFacade
	ConsultationRepo ConsultationRepositoryFacade
	VaccinationRepo  VaccinationRepositoryFacade
	ReportingRepo    ReportingRepositoryFacade
}
