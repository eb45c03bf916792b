package domain

import "time"

// Receipt is a pending execution obligation tied 1:1 to a transaction that
// references a department. Executing a receipt deletes the row; besides
// creation by the transaction write path, deletion is its only write path.
type Receipt struct {
	ReceiptID     string    `json:"receiptID"` // Primary Key (UUID)
	Reason        string    `json:"reason"`
	DepartmentID  string    `json:"departmentID"`  // FK -> departments
	TransactionID string    `json:"transactionID"` // FK -> transactions, unique
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
}
