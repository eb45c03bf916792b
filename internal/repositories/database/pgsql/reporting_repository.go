package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	portsrepo "github.com/MboaHealth/hospital_admin_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for dashboard aggregates.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

// GetDashboardSummary computes all dashboard figures in one round trip.
func (r *PgxReportingRepository) GetDashboardSummary(ctx context.Context, monthStart time.Time, lowStockMax int64) (*domain.DashboardSummary, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(amount) FROM transactions WHERE type = 'INCOME'), 0)          AS total_income,
			COALESCE((SELECT SUM(amount) FROM transactions WHERE type = 'EXPENSE'), 0)         AS total_expense,
			(SELECT COUNT(*) FROM receipts)                                                    AS pending_receipts,
			(SELECT COUNT(*) FROM inventory_items WHERE quantity > 0 AND quantity <= $2)       AS low_stock,
			(SELECT COUNT(*) FROM inventory_items WHERE quantity = 0)                          AS out_of_stock,
			(SELECT COUNT(*) FROM consultations WHERE consultation_date >= $1)                 AS consultations_month,
			(SELECT COUNT(*) FROM vaccination_records WHERE administered_at >= $1)             AS vaccinations_month;
	`
	var (
		totalIncome  decimal.Decimal
		totalExpense decimal.Decimal
		summary      domain.DashboardSummary
	)
	err := r.Pool.QueryRow(ctx, query, monthStart, lowStockMax).Scan(
		&totalIncome,
		&totalExpense,
		&summary.PendingReceiptCount,
		&summary.LowStockItemCount,
		&summary.OutOfStockItemCount,
		&summary.ConsultationsThisMonth,
		&summary.VaccinationsThisMonth,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute dashboard summary: %w", err)
	}

	summary.TotalIncome = totalIncome
	summary.TotalExpense = totalExpense
	summary.Balance = totalIncome.Sub(totalExpense)
	return &summary, nil
}
