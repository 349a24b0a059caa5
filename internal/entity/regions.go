package entity

import "github.com/joseph-ayodele/invoice-parser/internal/layout"

// Region labels a page area the engine treated as a particular field source.
// Purely annotative: consumed by a review UI, never read back by the engine.
type Region struct {
	Label string      `json:"label"`
	Rect  layout.Rect `json:"rect"`
}

// Region labels.
const (
	RegionVendorBlock = "vendor_block"
	RegionItemTable   = "item_table"
	RegionTotal       = "total"
	RegionDate        = "date"
	RegionTax         = "tax"
	RegionSubtotal    = "subtotal"
)
