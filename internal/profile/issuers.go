package profile

import (
	"strings"

	"github.com/joseph-ayodele/invoice-parser/constants"
	"github.com/joseph-ayodele/invoice-parser/internal/entity"
	"github.com/joseph-ayodele/invoice-parser/internal/layout"
)

// trendyolProfile covers marketplace invoices issued by DSM Grup (Trendyol).
// The payable total sits in a fixed block at the bottom right of the page.
type trendyolProfile struct{}

func (trendyolProfile) Name() string { return "trendyol" }

func (trendyolProfile) Matches(lowered string) bool {
	return strings.Contains(lowered, "trendyol") ||
		strings.Contains(lowered, "dsm grup") ||
		strings.Contains(lowered, "3130557669")
}

func (trendyolProfile) PriorityRegion() (layout.Rect, bool) {
	return layout.Rect{X: 0.55, Y: 0.72, Width: 0.45, Height: 0.28}, true
}

func (trendyolProfile) Apply(inv *entity.Invoice, lowered string, _ []layout.Fragment) {
	if inv.VendorName == "" {
		inv.VendorName = constants.KnownIssuerTaxIDs["3130557669"]
	}
	if inv.VendorTaxID == "" {
		inv.VendorTaxID = "3130557669"
	}
	inv.Metadata[constants.MetadataKeyMarketplace] = "trendyol"
}

// hepsiburadaProfile covers marketplace invoices issued by D-Market
// (Hepsiburada). No fixed total block: their templates move it between
// revisions, so only identity and metadata are overridden.
type hepsiburadaProfile struct{}

func (hepsiburadaProfile) Name() string { return "hepsiburada" }

func (hepsiburadaProfile) Matches(lowered string) bool {
	return strings.Contains(lowered, "hepsiburada") ||
		strings.Contains(lowered, "d-market") ||
		strings.Contains(lowered, "2910131190")
}

func (hepsiburadaProfile) PriorityRegion() (layout.Rect, bool) {
	return layout.Rect{}, false
}

func (hepsiburadaProfile) Apply(inv *entity.Invoice, lowered string, _ []layout.Fragment) {
	if inv.VendorName == "" {
		inv.VendorName = constants.KnownIssuerTaxIDs["2910131190"]
	}
	if inv.VendorTaxID == "" {
		inv.VendorTaxID = "2910131190"
	}
	inv.Metadata[constants.MetadataKeyMarketplace] = "hepsiburada"
}
