package domain

import "github.com/shopspring/decimal"

// DashboardSummary aggregates the figures shown on the landing dashboard.
type DashboardSummary struct {
	TotalIncome            decimal.Decimal `json:"totalIncome"`
	TotalExpense           decimal.Decimal `json:"totalExpense"`
	Balance                decimal.Decimal `json:"balance"`
	PendingReceiptCount    int             `json:"pendingReceiptCount"`
	LowStockItemCount      int             `json:"lowStockItemCount"`
	OutOfStockItemCount    int             `json:"outOfStockItemCount"`
	ConsultationsThisMonth int             `json:"consultationsThisMonth"`
	VaccinationsThisMonth  int             `json:"vaccinationsThisMonth"`
}
