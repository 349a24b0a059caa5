// Package export renders batches of parsed invoices into an XLSX workbook
// for bookkeeping handoff.
package export

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/invoice-parser/internal/entity"
)

// Service produces XLSX bytes for batches of parsed invoices.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

const sheet = "Invoices"

var headers = []string{
	"Invoice Date",
	"Invoice Number",
	"Vendor",
	"Vendor Tax ID",
	"Subtotal",
	"VAT",
	"Total",
	"Items",
	"Confidence",
}

// WriteXLSX returns an XLSX workbook (as bytes) with one row per invoice.
func (s *Service) WriteXLSX(invoices []*entity.Invoice) ([]byte, error) {
	f := excelize.NewFile()
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, inv := range invoices {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if !inv.InvoiceDate.IsZero() {
			write(1, inv.InvoiceDate.Format("2006-01-02"))
		} else {
			write(1, "")
		}
		write(2, inv.InvoiceNumber)
		write(3, inv.VendorName)
		write(4, inv.VendorTaxID)
		write(5, fmt.Sprintf("%.2f", inv.Subtotal))
		write(6, fmt.Sprintf("%.2f", inv.Tax))
		write(7, fmt.Sprintf("%.2f", inv.Total))
		write(8, len(inv.Items))
		write(9, fmt.Sprintf("%.2f", inv.Confidence))
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "B", 20) // invoice number
	_ = f.SetColWidth(sheet, "C", "C", 40) // vendor

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("export.ok", "invoices", len(invoices), "bytes", buf.Len())
	return buf.Bytes(), nil
}
