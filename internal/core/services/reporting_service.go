package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	portsrepo "github.com/MboaHealth/hospital_admin_app/internal/core/ports/repositories"
	portssvc "github.com/MboaHealth/hospital_admin_app/internal/core/ports/services"
	"github.com/MboaHealth/hospital_admin_app/internal/middleware"
)

// lowStockThreshold is the quantity at or below which an item still in stock
// counts as running low on the dashboard.
const lowStockThreshold = 10

// ReportingService computes the dashboard aggregates.
type ReportingService struct {
	reportingRepo portsrepo.ReportingRepositoryFacade
}

func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade) *ReportingService {
	return &ReportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

func (s *ReportingService) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	summary, err := s.reportingRepo.GetDashboardSummary(ctx, monthStart, lowStockThreshold)
	if err != nil {
		logger.Error("Failed to compute dashboard summary", slog.String("error", err.Error()))
		return nil, err
	}
	return summary, nil
}
