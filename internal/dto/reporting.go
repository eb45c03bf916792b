package dto

import (
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardResponse defines the dashboard aggregates returned to the client.
type DashboardResponse struct {
	TotalIncome            decimal.Decimal `json:"totalIncome"`
	TotalExpense           decimal.Decimal `json:"totalExpense"`
	Balance                decimal.Decimal `json:"balance"`
	PendingReceiptCount    int             `json:"pendingReceiptCount"`
	LowStockItemCount      int             `json:"lowStockItemCount"`
	OutOfStockItemCount    int             `json:"outOfStockItemCount"`
	ConsultationsThisMonth int             `json:"consultationsThisMonth"`
	VaccinationsThisMonth  int             `json:"vaccinationsThisMonth"`
}

// ToDashboardResponse converts a domain.DashboardSummary to DashboardResponse DTO.
func ToDashboardResponse(s *domain.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		TotalIncome:            s.TotalIncome,
		TotalExpense:           s.TotalExpense,
		Balance:                s.Balance,
		PendingReceiptCount:    s.PendingReceiptCount,
		LowStockItemCount:      s.LowStockItemCount,
		OutOfStockItemCount:    s.OutOfStockItemCount,
		ConsultationsThisMonth: s.ConsultationsThisMonth,
		VaccinationsThisMonth:  s.VaccinationsThisMonth,
	}
}
