package repositories

import (
	"context"
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
)

// ReportingReader defines aggregate read operations for the dashboard.
type ReportingReader interface {
	// GetDashboardSummary computes the dashboard aggregates. monthStart
	// bounds the "this month" counters; lowStockMax is the quantity at or
	// below which an item still in stock counts as running low.
	GetDashboardSummary(ctx context.Context, monthStart time.Time, lowStockMax int64) (*domain.DashboardSummary, error)
}

// ReportingRepositoryFacade combines all reporting repository interfaces.
type ReportingRepositoryFacade interface {
	ReportingReader
}
