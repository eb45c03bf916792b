package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a row of the transactions table.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	Type            string          `json:"type"` // INCOME or EXPENSE
	Reason          string          `json:"reason"`
	Amount          decimal.Decimal `json:"amount"`
	DepartmentID    *string         `json:"departmentID"`
	TransactionDate time.Time       `json:"transactionDate"`
	AuditFields
}
