package domain

import "time"

// Filters below are conjunctive: every set predicate must match.

// InventoryFilter narrows inventory listings.
type InventoryFilter struct {
	Search      string // Case-insensitive pattern match on name
	OutOfStock  bool   // Only items with zero quantity
	LowStockMax *int64 // Only items with quantity <= this bound
}

// TransactionFilter narrows transaction listings.
type TransactionFilter struct {
	Type          *TransactionType
	Search        string // Pattern match on reason
	DepartmentIDs []string
	From          *time.Time
	To            *time.Time
}

// ReceiptFilter narrows receipt listings.
type ReceiptFilter struct {
	DepartmentIDs []string
	Search        string
}

// ConsultationFilter narrows consultation listings.
type ConsultationFilter struct {
	Search string // Pattern match on patient name
	From   *time.Time
	To     *time.Time
}

// VaccinationFilter narrows vaccination record listings.
type VaccinationFilter struct {
	Category *VaccinationCategory
	Search   string // Pattern match on patient name
	From     *time.Time
	To       *time.Time
}
