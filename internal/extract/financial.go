package extract

import (
	"github.com/joseph-ayodele/invoice-parser/constants"
	"github.com/joseph-ayodele/invoice-parser/internal/entity"
	"github.com/joseph-ayodele/invoice-parser/internal/layout"
	"github.com/joseph-ayodele/invoice-parser/internal/normalize"
)

// FinancialStrategy extracts total, tax, and subtotal from the footer zone,
// in three ordered passes: the profile's priority region, the anchored zone
// scan, and the full-text / max-amount fallback. Whichever pass runs, the
// idempotent reconciliation finishes the tuple.
//
// Reads: footer lines, Fragments, Profile (set by the orchestrator before
// strategies run), Lowered. Writes: Total, Tax, Subtotal.
type FinancialStrategy struct{}

func (FinancialStrategy) Name() string { return "financial" }

func (s FinancialStrategy) Extract(ctx *Context) {
	inv := ctx.Invoice
	rate, found := normalize.DetectTaxRate(ctx.Lowered)
	if !found {
		rate = constants.DefaultVATRate
	}

	if !s.priorityRegionPass(ctx, rate) {
		footer := ctx.ZoneLines(constants.ZoneFooter)
		if !s.zoneTotalPass(ctx, footer) {
			s.fallbackTotalPass(ctx, footer)
		}
		s.zoneSubtotalTaxPass(ctx, footer, rate)
	}

	inv.Total, inv.Tax, inv.Subtotal = Reconcile(inv.Total, inv.Tax, inv.Subtotal, rate)
}

// priorityRegionPass trusts issuer-specific ground truth about where the
// payable total is printed: the maximum amount among fragments mostly inside
// the profile's priority rectangle wins at the highest confidence.
func (FinancialStrategy) priorityRegionPass(ctx *Context, rate float64) bool {
	if ctx.Profile == nil {
		return false
	}
	region, ok := ctx.Profile.PriorityRegion()
	if !ok {
		return false
	}

	var best float64
	found := false
	for _, f := range ctx.Fragments {
		if f.Rect.OverlapRatio(region) <= constants.PriorityRegionMinOverlap {
			continue
		}
		if v, ok := normalize.MaxAmount(f.Text); ok && v > best {
			best = v
			found = true
		}
	}
	if !found {
		return false
	}

	ctx.Invoice.Total = best
	ctx.Invoice.SetFieldScore("total", constants.PriorityRegionConfidence)
	ctx.MarkRegion(entity.RegionTotal, region)
	return true
}

// zoneTotalPass scans footer lines bottom-to-top. The first strict-anchor
// line wins immediately: the canonical label is authoritative over position,
// so "first found wins", never "largest found wins". Absent a strict anchor,
// a looser total line (without subtotal/tax wording) is accepted.
func (FinancialStrategy) zoneTotalPass(ctx *Context, footer []layout.Line) bool {
	for i := len(footer) - 1; i >= 0; i-- {
		ln := footer[i]
		if !containsAny(normalize.Lower(ln.Text), constants.StrictTotalAnchors) {
			continue
		}
		if v, ok := normalize.RightmostAmount(ln.Text); ok {
			ctx.Invoice.Total = v
			ctx.Invoice.SetFieldScore("total", constants.AnchorTotalConfidence)
			ctx.MarkRegion(entity.RegionTotal, ln.Rect)
			return true
		}
	}
	for i := len(footer) - 1; i >= 0; i-- {
		ln := footer[i]
		lowered := normalize.Lower(ln.Text)
		if !containsAny(lowered, constants.LooseTotalKeywords) || containsAny(lowered, constants.LooseTotalExclusions) {
			continue
		}
		if v, ok := normalize.RightmostAmount(ln.Text); ok {
			ctx.Invoice.Total = v
			ctx.Invoice.SetFieldScore("total", constants.AnchorTotalConfidence*0.8)
			ctx.MarkRegion(entity.RegionTotal, ln.Rect)
			return true
		}
	}
	return false
}

// fallbackTotalPass repeats the anchor scan over the unsegmented full text,
// then takes the maximum amount found anywhere as a last resort.
func (FinancialStrategy) fallbackTotalPass(ctx *Context, footer []layout.Line) {
	for _, ln := range ctx.TextLines() {
		if !containsAny(normalize.Lower(ln), constants.StrictTotalAnchors) {
			continue
		}
		if v, ok := normalize.RightmostAmount(ln); ok {
			ctx.Invoice.Total = v
			ctx.Invoice.SetFieldScore("total", constants.AnchorTotalConfidence)
			return
		}
	}

	// last resort: largest amount in the footer, or in the whole text when
	// the degraded path left us without zones
	var source string
	for _, ln := range footer {
		source += ln.Text + "\n"
	}
	if source == "" {
		source = ctx.Text
	}
	if v, ok := normalize.MaxAmount(source); ok {
		ctx.Invoice.Total = v
		ctx.Invoice.SetFieldScore("total", constants.FallbackTotalConfidence)
	}
}

// zoneSubtotalTaxPass searches subtotal and tax via their own label sets,
// validating each candidate against the other figures: subtotal must stay
// below the total, tax must approximate subtotal × rate within the slack.
func (FinancialStrategy) zoneSubtotalTaxPass(ctx *Context, footer []layout.Line, rate float64) {
	inv := ctx.Invoice
	for i := len(footer) - 1; i >= 0; i-- {
		ln := footer[i]
		lowered := normalize.Lower(ln.Text)

		if inv.Subtotal == 0 && containsAny(lowered, constants.SubtotalAnchors) {
			if v, ok := normalize.RightmostAmount(ln.Text); ok {
				if inv.Total == 0 || v < inv.Total {
					inv.Subtotal = v
					inv.SetFieldScore("subtotal", constants.AnchorTotalConfidence)
					ctx.MarkRegion(entity.RegionSubtotal, ln.Rect)
				}
			}
			continue
		}
		if inv.Tax == 0 && containsAny(lowered, constants.TaxAnchors) {
			if v, ok := normalize.RightmostAmount(ln.Text); ok && taxPlausible(v, inv.Subtotal, inv.Total, rate) {
				inv.Tax = v
				inv.SetFieldScore("tax", constants.AnchorTotalConfidence)
				ctx.MarkRegion(entity.RegionTax, ln.Rect)
			}
		}
	}
}

func taxPlausible(tax, subtotal, total, rate float64) bool {
	if subtotal > 0 {
		expected := subtotal * rate
		return tax >= expected*(1-constants.TaxRateSlack) && tax <= expected*(1+constants.TaxRateSlack)
	}
	return total == 0 || tax < total
}
