package entity

import (
	"time"

	"github.com/google/uuid"
)

// LineItem is one row of the invoice item table. Quantity and tax rate fall
// back to defaults when the table does not carry them.
type LineItem struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
	TaxRate   float64 `json:"tax_rate"`
}

// Invoice is the accumulator the extraction strategies write into. One is
// created empty per parse call, mutated in strategy order by the
// orchestrator, and never shared across concurrent parses.
type Invoice struct {
	ParseID       uuid.UUID          `json:"parse_id"`
	VendorName    string             `json:"vendor_name"`
	VendorTaxID   string             `json:"vendor_tax_id"`
	InvoiceNumber string             `json:"invoice_number"`
	InvoiceDate   time.Time          `json:"invoice_date"`
	ETTN          string             `json:"ettn"` // unique transaction identifier
	Total         float64            `json:"total"`
	Tax           float64            `json:"tax"`
	Subtotal      float64            `json:"subtotal"`
	Items         []LineItem         `json:"items"`
	FieldScores   map[string]float64 `json:"field_scores"`
	Metadata      map[string]string  `json:"metadata,omitempty"`
	Confidence    float64            `json:"confidence"`
}

// NewInvoice returns an empty record with initialized maps and a fresh
// parse id for log correlation.
func NewInvoice() *Invoice {
	return &Invoice{
		ParseID:     uuid.New(),
		FieldScores: make(map[string]float64),
		Metadata:    make(map[string]string),
	}
}

// SetFieldScore records per-field extraction confidence.
func (inv *Invoice) SetFieldScore(field string, score float64) {
	inv.FieldScores[field] = score
}
