package services_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	portssvc "github.com/MboaHealth/hospital_admin_app/internal/core/ports/services"
	"github.com/MboaHealth/hospital_admin_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTransactions() []domain.Transaction {
	departmentID := "dep-maternite"
	return []domain.Transaction{
		{
			TransactionID:   "txn-1",
			Type:            domain.Income,
			Reason:          "Consultations du jour",
			Amount:          decimal.NewFromInt(45000),
			TransactionDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			AuditFields:     domain.AuditFields{CreatedBy: "user-1"},
		},
		{
			TransactionID:   "txn-2",
			Type:            domain.Expense,
			Reason:          "Achat de gants",
			Amount:          decimal.NewFromInt(15000),
			DepartmentID:    &departmentID,
			TransactionDate: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
			AuditFields:     domain.AuditFields{CreatedBy: "user-2"},
		},
	}
}

func TestExportTransactions_XLSX(t *testing.T) {
	svc := services.NewExportService("Hôpital - Administration")

	file, err := svc.ExportTransactions(context.Background(), sampleTransactions(), portssvc.ExportXLSX)
	require.NoError(t, err)
	require.NotNil(t, file)

	assert.True(t, strings.HasPrefix(file.Filename, "transactions_"))
	assert.True(t, strings.HasSuffix(file.Filename, ".xlsx"))
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file.ContentType)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Transactions financières")
	require.NoError(t, err)
	require.Len(t, rows, 3) // Header plus two records

	assert.Equal(t, []string{"Date", "Type", "Motif", "Montant", "Service", "Enregistré par"}, rows[0])
	assert.Equal(t, "10/03/2025", rows[1][0])
	assert.Equal(t, "Recette", rows[1][1])
	assert.Equal(t, "45000.00", rows[1][3])
	assert.Equal(t, "Dépense", rows[2][1])
	assert.Equal(t, "dep-maternite", rows[2][4])
}

func TestExportTransactions_PDF(t *testing.T) {
	svc := services.NewExportService("Hôpital - Administration")

	file, err := svc.ExportTransactions(context.Background(), sampleTransactions(), portssvc.ExportPDF)
	require.NoError(t, err)
	require.NotNil(t, file)

	assert.True(t, strings.HasSuffix(file.Filename, ".pdf"))
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))
}

func TestExportTransactions_UnknownFormat(t *testing.T) {
	svc := services.NewExportService("Hôpital - Administration")

	file, err := svc.ExportTransactions(context.Background(), nil, portssvc.ExportFormat("csv"))
	require.Error(t, err)
	assert.Nil(t, file)
}

func TestExportInventory_XLSX(t *testing.T) {
	svc := services.NewExportService("Hôpital - Administration")
	records := []domain.InventoryItem{
		{ItemID: "item-1", Name: "Gants stériles", Unit: "boîte", Quantity: 12, UsedQuantity: 3},
	}

	file, err := svc.ExportInventory(context.Background(), records, portssvc.ExportXLSX)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("État du stock")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Gants stériles", rows[1][0])
	assert.Equal(t, "12", rows[1][2])
}

func TestExportVaccinations_CategoryLabels(t *testing.T) {
	svc := services.NewExportService("Hôpital - Administration")
	birthDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	records := []domain.VaccinationRecord{
		{
			RecordID:       "rec-1",
			Category:       domain.ChildVaccination,
			PatientName:    "Bébé A",
			BirthDate:      &birthDate,
			VaccineName:    "BCG",
			DoseNumber:     1,
			AdministeredAt: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			RecordID:       "rec-2",
			Category:       domain.PregnantVaccination,
			PatientName:    "Mme B",
			VaccineName:    "VAT",
			DoseNumber:     2,
			AdministeredAt: time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC),
		},
	}

	file, err := svc.ExportVaccinations(context.Background(), records, portssvc.ExportXLSX)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Registre des vaccinations")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Enfant", rows[1][1])
	assert.Equal(t, "Femme enceinte", rows[2][1])
}
