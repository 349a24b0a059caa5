package extract

import (
	"strings"

	"github.com/joseph-ayodele/invoice-parser/constants"
	"github.com/joseph-ayodele/invoice-parser/internal/entity"
	"github.com/joseph-ayodele/invoice-parser/internal/normalize"
)

// minVendorLineLength filters out trivial header-left lines (page numbers,
// stray punctuation) from the vendor-name scan.
const minVendorLineLength = 5

// VendorStrategy extracts the issuer identity from the header-left zone.
//
// Reads: Lowered, header-left lines/fragments. Writes: VendorName,
// VendorTaxID, marketplace metadata.
type VendorStrategy struct{}

func (VendorStrategy) Name() string { return "vendor" }

func (s VendorStrategy) Extract(ctx *Context) {
	inv := ctx.Invoice

	// 1) hard-coded high-confidence issuer tax ids bypass the generic scan
	known := false
	for vkn, name := range constants.KnownIssuerTaxIDs {
		if strings.Contains(ctx.Lowered, vkn) {
			inv.VendorName = name
			inv.VendorTaxID = vkn
			inv.SetFieldScore("vendor_name", constants.PriorityRegionConfidence)
			known = true
			break
		}
	}

	if !known {
		s.scanHeaderLeft(ctx)
		s.extractTaxID(ctx)
	}

	// 4) marketplace phrasing annotates metadata, never the vendor name
	if containsAny(ctx.Lowered, constants.MarketplacePhrases) {
		if _, set := inv.Metadata[constants.MetadataKeyMarketplace]; !set {
			inv.Metadata[constants.MetadataKeyMarketplace] = "true"
		}
	}
}

// scanHeaderLeft takes the first header-left line that is not a buyer label,
// phone number, or date, and that either carries a company-suffix token or
// sits in the top page band with non-trivial length.
func (VendorStrategy) scanHeaderLeft(ctx *Context) {
	for _, ln := range ctx.ZoneLines(constants.ZoneHeaderLeft) {
		text := strings.TrimSpace(ln.Text)
		lowered := normalize.Lower(text)

		if containsAny(lowered, constants.BuyerKeywords) {
			continue
		}
		if normalize.IsPhoneNumber(text) {
			continue
		}
		if _, isDate := normalize.ParseDate(text, ctx.Now); isDate {
			continue
		}

		suffix := containsAny(lowered, constants.CompanySuffixes)
		topBand := ln.Rect.CenterY() < constants.VendorTopBandMaxY && len([]rune(text)) >= minVendorLineLength
		if suffix || topBand {
			ctx.Invoice.VendorName = text
			ctx.Invoice.SetFieldScore("vendor_name", vendorNameScore(suffix))
			ctx.MarkRegion(entity.RegionVendorBlock, ln.Rect)
			return
		}
	}
}

func vendorNameScore(hasSuffix bool) float64 {
	if hasSuffix {
		return 0.85
	}
	return 0.65
}

// extractTaxID prefers an explicitly labeled VKN anywhere on the page, then
// falls back to a standalone 10/11-digit sequence in header-left fragments.
func (VendorStrategy) extractTaxID(ctx *Context) {
	if id := normalize.LabeledTaxID(ctx.Lowered); id != "" {
		ctx.Invoice.VendorTaxID = id
		ctx.Invoice.SetFieldScore("vendor_tax_id", 0.9)
		return
	}
	frags := ctx.ZoneFragments(constants.ZoneHeaderLeft)
	if len(frags) == 0 {
		// degraded path: no geometry, scan the whole text
		if id := normalize.StandaloneID(ctx.Text); id != "" {
			ctx.Invoice.VendorTaxID = id
			ctx.Invoice.SetFieldScore("vendor_tax_id", 0.5)
		}
		return
	}
	for _, f := range frags {
		if id := normalize.StandaloneID(f.Text); id != "" {
			ctx.Invoice.VendorTaxID = id
			ctx.Invoice.SetFieldScore("vendor_tax_id", 0.7)
			return
		}
	}
}
