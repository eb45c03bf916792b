package services

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/apperrors"
	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	portssvc "github.com/MboaHealth/hospital_admin_app/internal/core/ports/services"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"

	exportDateLayout = "02/01/2006"
)

// ExportService renders record lists as spreadsheet workbooks or PDF
// documents. It performs no querying of its own; callers pass the already
// filtered and permission-scoped records.
type ExportService struct {
	letterhead string
}

func NewExportService(letterhead string) *ExportService {
	return &ExportService{letterhead: letterhead}
}

var _ portssvc.ExportSvcFacade = (*ExportService)(nil)

// tableDoc is the common shape every export reduces to before rendering.
type tableDoc struct {
	name    string // Filename stem and sheet/document title
	title   string
	headers []string
	rows    [][]string
	summary []string // Optional lines under the PDF table
}

func (s *ExportService) render(doc tableDoc, format portssvc.ExportFormat) (*portssvc.ExportFile, error) {
	suffix := time.Now().Format("2006-01-02")
	switch format {
	case portssvc.ExportXLSX:
		data, err := renderWorkbook(doc)
		if err != nil {
			return nil, err
		}
		return &portssvc.ExportFile{
			Filename:    fmt.Sprintf("%s_%s.xlsx", doc.name, suffix),
			ContentType: xlsxContentType,
			Data:        data,
		}, nil
	case portssvc.ExportPDF:
		data, err := s.renderPDF(doc)
		if err != nil {
			return nil, err
		}
		return &portssvc.ExportFile{
			Filename:    fmt.Sprintf("%s_%s.pdf", doc.name, suffix),
			ContentType: pdfContentType,
			Data:        data,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported export format %q", apperrors.ErrValidation, format)
	}
}

func renderWorkbook(doc tableDoc) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, doc.title); err != nil {
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}
	sheet = doc.title

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	widths := make([]int, len(doc.headers))
	for col, header := range doc.headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
		widths[col] = len([]rune(header))
	}

	for rowIdx, row := range doc.rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
			if l := len([]rune(value)); l > widths[col] {
				widths[col] = l
			}
		}
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		w := float64(width) + 2
		if w > 60 {
			w = 60
		}
		if err := f.SetColWidth(sheet, name, name, w); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *ExportService) renderPDF(doc tableDoc) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	generatedAt := time.Now()

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 6,
			tr(fmt.Sprintf("Généré le %s - page %d", generatedAt.Format("02/01/2006 15:04"), pdf.PageNo())),
			"", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr(s.letterhead), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, tr(doc.title), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(doc.headers))

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(221, 235, 247)
	for _, header := range doc.headers {
		pdf.CellFormat(colWidth, 7, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range doc.rows {
		for _, value := range row {
			pdf.CellFormat(colWidth, 6, tr(value), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(doc.summary) > 0 {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 10)
		for _, line := range doc.summary {
			pdf.CellFormat(0, 6, tr(line), "", 1, "R", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func transactionTypeLabel(t domain.TransactionType) string {
	switch t {
	case domain.Income:
		return "Recette"
	case domain.Expense:
		return "Dépense"
	default:
		return string(t)
	}
}

func (s *ExportService) ExportTransactions(ctx context.Context, records []domain.Transaction, format portssvc.ExportFormat) (*portssvc.ExportFile, error) {
	rows := make([][]string, len(records))
	for i, t := range records {
		department := ""
		if t.DepartmentID != nil {
			department = *t.DepartmentID
		}
		rows[i] = []string{
			t.TransactionDate.Format(exportDateLayout),
			transactionTypeLabel(t.Type),
			t.Reason,
			t.Amount.StringFixed(2),
			department,
			t.CreatedBy,
		}
	}

	totalIn, totalOut := decimal.Zero, decimal.Zero
	for _, t := range records {
		if t.Type == domain.Income {
			totalIn = totalIn.Add(t.Amount)
		} else {
			totalOut = totalOut.Add(t.Amount)
		}
	}

	doc := tableDoc{
		name:    "transactions",
		title:   "Transactions financières",
		headers: []string{"Date", "Type", "Motif", "Montant", "Service", "Enregistré par"},
		rows:    rows,
		summary: []string{
			fmt.Sprintf("Total recettes: %s", totalIn.StringFixed(2)),
			fmt.Sprintf("Total dépenses: %s", totalOut.StringFixed(2)),
			fmt.Sprintf("Solde: %s", totalIn.Sub(totalOut).StringFixed(2)),
		},
	}
	return s.render(doc, format)
}

func (s *ExportService) ExportInventory(ctx context.Context, records []domain.InventoryItem, format portssvc.ExportFormat) (*portssvc.ExportFile, error) {
	rows := make([][]string, len(records))
	for i, item := range records {
		rows[i] = []string{
			item.Name,
			item.Unit,
			strconv.FormatInt(item.Quantity, 10),
			strconv.FormatInt(item.UsedQuantity, 10),
			item.LastUpdatedAt.Format(exportDateLayout),
		}
	}

	doc := tableDoc{
		name:    "inventaire",
		title:   "État du stock",
		headers: []string{"Article", "Unité", "Quantité", "Quantité utilisée", "Mis à jour le"},
		rows:    rows,
	}
	return s.render(doc, format)
}

func (s *ExportService) ExportReceipts(ctx context.Context, records []domain.Receipt, format portssvc.ExportFormat) (*portssvc.ExportFile, error) {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			r.CreatedAt.Format(exportDateLayout),
			r.Reason,
			r.DepartmentID,
			r.TransactionID,
			r.CreatedBy,
		}
	}

	doc := tableDoc{
		name:    "recus",
		title:   "Reçus en attente",
		headers: []string{"Créé le", "Motif", "Service", "Transaction", "Créé par"},
		rows:    rows,
	}
	return s.render(doc, format)
}

func (s *ExportService) ExportConsultations(ctx context.Context, records []domain.Consultation, format portssvc.ExportFormat) (*portssvc.ExportFile, error) {
	rows := make([][]string, len(records))
	for i, c := range records {
		weeks := ""
		if c.GestationalWeeks != nil {
			weeks = strconv.Itoa(*c.GestationalWeeks)
		}
		rows[i] = []string{
			c.ConsultationDate.Format(exportDateLayout),
			c.PatientName,
			strconv.Itoa(c.Age),
			c.Phone,
			weeks,
			c.Diagnosis,
		}
	}

	doc := tableDoc{
		name:    "consultations",
		title:   "Consultations de maternité",
		headers: []string{"Date", "Patiente", "Âge", "Téléphone", "Semaines", "Diagnostic"},
		rows:    rows,
	}
	return s.render(doc, format)
}

func (s *ExportService) ExportVaccinations(ctx context.Context, records []domain.VaccinationRecord, format portssvc.ExportFormat) (*portssvc.ExportFile, error) {
	rows := make([][]string, len(records))
	for i, r := range records {
		category := "Enfant"
		if r.Category == domain.PregnantVaccination {
			category = "Femme enceinte"
		}
		nextDose := ""
		if r.NextDoseAt != nil {
			nextDose = r.NextDoseAt.Format(exportDateLayout)
		}
		rows[i] = []string{
			r.AdministeredAt.Format(exportDateLayout),
			category,
			r.PatientName,
			r.VaccineName,
			strconv.Itoa(r.DoseNumber),
			nextDose,
		}
	}

	doc := tableDoc{
		name:    "vaccinations",
		title:   "Registre des vaccinations",
		headers: []string{"Administré le", "Catégorie", "Patient", "Vaccin", "Dose", "Prochaine dose"},
		rows:    rows,
	}
	return s.render(doc, format)
}
