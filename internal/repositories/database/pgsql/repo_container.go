package pgsql

import (
	portsrepo "github.com/MboaHealth/hospital_admin_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository onto a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		ProfileRepo:      newPgxProfileRepository(pool),
		DepartmentRepo:   newPgxDepartmentRepository(pool),
		InventoryRepo:    newPgxInventoryRepository(pool),
		TransactionRepo:  newPgxTransactionRepository(pool),
		ReceiptRepo:      newPgxReceiptRepository(pool),
		ConsultationRepo: newPgxConsultationRepository(pool),
		VaccinationRepo:  newPgxVaccinationRepository(pool),
		ReportingRepo:    newPgxReportingRepository(pool),
	}
}
