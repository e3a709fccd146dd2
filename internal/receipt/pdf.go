package receipt

import (
	"bytes"
	"fmt"

	"tablepos/internal/models"

	"github.com/phpdave11/gofpdf"
)

// PDF renders the same receipt as an A4 PDF document.
func PDF(record models.HistoryRecord, opts Options) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, tr(opts.Header), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Transakce #%s", TransactionNumber(record.ID))), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Datum: %s", record.PaymentTimestamp.Format("2.1.2006 15:04:05"))), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, tr(record.TableName), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Číslo objednávky: %d", record.ID)), "", 1, "C", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, tr("Položky"), "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, item := range record.Items {
		pdf.CellFormat(130, 5, tr(item.Name), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("%g %s", item.Price, opts.CurrencySuffix)), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(130, 6, tr("Celkem"), "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%g %s", record.Total, opts.CurrencySuffix)), "T", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Platba: %s", methodLabel(record.PaymentMethod))), "", 1, "L", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 5, tr("Děkujeme za návštěvu!"), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, tr(opts.Footer), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt pdf: %w", err)
	}
	return &buf, nil
}
