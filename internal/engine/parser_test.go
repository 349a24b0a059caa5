package engine

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-parser/internal/layout"
)

func testParser() *Parser {
	p := NewParser(slog.New(slog.NewTextHandler(io.Discard, nil)))
	p.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return p
}

func frag(text string, x, y, w, h float64) layout.Fragment {
	return layout.Fragment{Text: text, Rect: layout.Rect{X: x, Y: y, Width: w, Height: h}, Confidence: 0.9}
}

// A well-formed single-item invoice: vendor block top-left, item table in the
// body, anchored payable total in the footer.
func TestParseWellFormedInvoice(t *testing.T) {
	frags := []layout.Fragment{
		frag("ABC FIRMA A.Ş.", 0.05, 0.05, 0.30, 0.02),
		frag("VKN: 1234567890", 0.05, 0.10, 0.25, 0.02),
		frag("MAL HİZMET", 0.05, 0.40, 0.20, 0.02),
		frag("TUTAR", 0.70, 0.40, 0.10, 0.02),
		frag("Kalem 1", 0.05, 0.45, 0.15, 0.02),
		frag("50,00", 0.70, 0.45, 0.08, 0.02),
		frag("ÖDENECEK TUTAR", 0.50, 0.85, 0.20, 0.02),
		frag("59,00", 0.75, 0.85, 0.08, 0.02),
	}

	res, err := testParser().Parse(frags, "")
	require.NoError(t, err)
	inv := res.Invoice

	assert.Equal(t, "ABC FIRMA A.Ş.", inv.VendorName)
	assert.Equal(t, "1234567890", inv.VendorTaxID)
	assert.InDelta(t, 59, inv.Total, 1e-9)
	// tax and subtotal were absent on the page and get derived at the
	// default rate
	assert.InDelta(t, 9, inv.Tax, 0.01)
	assert.InDelta(t, 50, inv.Subtotal, 0.01)

	require.Len(t, inv.Items, 1)
	assert.Equal(t, "Kalem 1", inv.Items[0].Name)
	assert.InDelta(t, 50, inv.Items[0].Total, 1e-9)

	assert.Greater(t, inv.Confidence, 0.7)
	assert.NotEmpty(t, res.Regions)
}

func TestParseEmptyInput(t *testing.T) {
	p := testParser()

	_, err := p.Parse(nil, "")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = p.Parse(nil, "   \n\t ")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = p.Parse([]layout.Fragment{}, "")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

// No anchors anywhere: the engine falls back to the largest amount on the
// page and the score reflects the guesswork.
func TestParseUnanchoredAmounts(t *testing.T) {
	frags := []layout.Fragment{
		frag("Ürün bedeli", 0.05, 0.45, 0.15, 0.02),
		frag("12,00", 0.70, 0.45, 0.08, 0.02),
		frag("Kargo", 0.05, 0.50, 0.10, 0.02),
		frag("45,00", 0.70, 0.50, 0.08, 0.02),
	}

	res, err := testParser().Parse(frags, "")
	require.NoError(t, err)
	inv := res.Invoice

	assert.InDelta(t, 45, inv.Total, 1e-9)
	assert.InDelta(t, 0.5, inv.FieldScores["total"], 1e-9)
	assert.Empty(t, inv.Items)
	assert.InDelta(t, 0.5, inv.Confidence, 1e-9)
}

// Degraded path: no geometry at all, only a text blob. Anchored labels still
// resolve the tax id and the payable total.
func TestParseRawTextOnly(t *testing.T) {
	raw := "ABC FIRMA A.Ş.\nVKN: 1234567890\nÖDENECEK TUTAR 59,00"

	res, err := testParser().Parse(nil, raw)
	require.NoError(t, err)
	inv := res.Invoice

	assert.Equal(t, "1234567890", inv.VendorTaxID)
	assert.InDelta(t, 59, inv.Total, 1e-9)
	assert.InDelta(t, 0.9, inv.FieldScores["total"], 1e-9)
}

// A known-issuer tax id on the page resolves the vendor without any
// header-zone geometry.
func TestParseKnownIssuer(t *testing.T) {
	raw := "e-Arşiv Fatura\nVKN: 3130557669\nGENEL TOPLAM 120,50"

	res, err := testParser().Parse(nil, raw)
	require.NoError(t, err)
	inv := res.Invoice

	assert.Equal(t, "3130557669", inv.VendorTaxID)
	assert.Contains(t, inv.VendorName, "DSM Grup")
	assert.InDelta(t, 120.5, inv.Total, 1e-9)
}

// An issuer with a known total block: the amount inside the priority
// rectangle wins over an anchored total line printed elsewhere on the page.
func TestParsePriorityRegionOverridesAnchor(t *testing.T) {
	frags := []layout.Fragment{
		frag("Trendyol Pazaryeri", 0.05, 0.05, 0.30, 0.02),
		frag("ÖDENECEK TUTAR", 0.05, 0.85, 0.20, 0.02),
		frag("59,00", 0.28, 0.85, 0.08, 0.02),
		frag("999,99", 0.70, 0.90, 0.08, 0.02),
	}

	res, err := testParser().Parse(frags, "")
	require.NoError(t, err)
	inv := res.Invoice

	assert.InDelta(t, 999.99, inv.Total, 1e-9)
	assert.InDelta(t, 0.95, inv.FieldScores["total"], 1e-9)
	assert.Equal(t, "trendyol", inv.Metadata["marketplace"])
}

func TestParseDetailsFromHeaderRight(t *testing.T) {
	frags := []layout.Fragment{
		frag("ABC FIRMA A.Ş.", 0.05, 0.05, 0.30, 0.02),
		frag("Fatura No: ABC2024000000001", 0.55, 0.05, 0.40, 0.02),
		frag("Fatura Tarihi: 15.03.2024", 0.55, 0.10, 0.35, 0.02),
		frag("ETTN: a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d", 0.55, 0.15, 0.40, 0.02),
		frag("ÖDENECEK TUTAR", 0.50, 0.85, 0.20, 0.02),
		frag("59,00", 0.75, 0.85, 0.08, 0.02),
	}

	res, err := testParser().Parse(frags, "")
	require.NoError(t, err)
	inv := res.Invoice

	assert.Equal(t, "ABC2024000000001", inv.InvoiceNumber)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), inv.InvoiceDate)
	assert.Equal(t, "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d", inv.ETTN)
}
