package services

import (
	"context"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
)

// ExportFormat selects the generated artifact type.
type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportPDF  ExportFormat = "pdf"
)

// ExportFile is a generated artifact ready to be streamed to the client.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportSvcFacade turns already-filtered record lists into spreadsheet
// workbooks or PDF documents. One output row per input record; no
// additional querying happens here.
type ExportSvcFacade interface {
	ExportTransactions(ctx context.Context, records []domain.Transaction, format ExportFormat) (*ExportFile, error)
	ExportInventory(ctx context.Context, records []domain.InventoryItem, format ExportFormat) (*ExportFile, error)
	ExportReceipts(ctx context.Context, records []domain.Receipt, format ExportFormat) (*ExportFile, error)
	ExportConsultations(ctx context.Context, records []domain.Consultation, format ExportFormat) (*ExportFile, error)
	ExportVaccinations(ctx context.Context, records []domain.VaccinationRecord, format ExportFormat) (*ExportFile, error)
}
