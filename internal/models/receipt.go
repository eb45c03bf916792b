package models

import "time"

// Receipt represents a row of the receipts table.
type Receipt struct {
	ReceiptID     string    `json:"receiptID"`
	Reason        string    `json:"reason"`
	DepartmentID  string    `json:"departmentID"`
	TransactionID string    `json:"transactionID"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
}
