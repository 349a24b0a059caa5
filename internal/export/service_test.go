package export

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/invoice-parser/internal/entity"
)

func TestWriteXLSX(t *testing.T) {
	inv := entity.NewInvoice()
	inv.VendorName = "ABC FIRMA A.Ş."
	inv.VendorTaxID = "1234567890"
	inv.InvoiceNumber = "ABC2024000000001"
	inv.InvoiceDate = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	inv.Subtotal = 50
	inv.Tax = 9
	inv.Total = 59
	inv.Items = []entity.LineItem{{Name: "Kalem 1", Quantity: 1, UnitPrice: 50, Total: 50}}
	inv.Confidence = 0.8

	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
	data, err := svc.WriteXLSX([]*entity.Invoice{inv})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Invoice Date", get("A1"))
	assert.Equal(t, "2024-03-15", get("A2"))
	assert.Equal(t, "ABC2024000000001", get("B2"))
	assert.Equal(t, "ABC FIRMA A.Ş.", get("C2"))
	assert.Equal(t, "1234567890", get("D2"))
	assert.Equal(t, "50.00", get("E2"))
	assert.Equal(t, "9.00", get("F2"))
	assert.Equal(t, "59.00", get("G2"))
	assert.Equal(t, "1", get("H2"))
	assert.Equal(t, "0.80", get("I2"))
}

func TestWriteXLSXEmptyBatch(t *testing.T) {
	svc := NewService(nil)
	data, err := svc.WriteXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(sheet, "G1")
	require.NoError(t, err)
	assert.Equal(t, "Total", v)
}
