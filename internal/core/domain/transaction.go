package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is an income or an expense.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Transaction is a financial movement. When it references a department, a
// companion Receipt exists 1:1 until that receipt is executed.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	Type            TransactionType `json:"type"`
	Reason          string          `json:"reason"`
	Amount          decimal.Decimal `json:"amount"`       // Strictly positive
	DepartmentID    *string         `json:"departmentID"` // Nullable FK -> departments
	TransactionDate time.Time       `json:"transactionDate"`
	AuditFields
}

// HasDepartment reports whether the transaction references a department.
func (t Transaction) HasDepartment() bool {
	return t.DepartmentID != nil && *t.DepartmentID != ""
}
