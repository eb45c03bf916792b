package services

import (
	"context"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
)

// ReportingSvcFacade computes dashboard aggregates.
type ReportingSvcFacade interface {
	// GetDashboardSummary computes the dashboard figures as of now.
	GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
