package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/joseph-ayodele/invoice-parser/constants"
	"github.com/joseph-ayodele/invoice-parser/internal/entity"
	"github.com/joseph-ayodele/invoice-parser/internal/layout"
	"github.com/joseph-ayodele/invoice-parser/internal/normalize"
)

var (
	// issuer-format patterns in priority order: GIB e-invoice first, then
	// the fixed-length alternate
	invoiceNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(constants.PatternInvoiceNoEFatura),
		regexp.MustCompile(constants.PatternInvoiceNoAlternate),
	}
)

// DetailsStrategy extracts invoice number, date, and the unique transaction
// identifier (ETTN) from the header-right zone, falling back to the whole
// document when the zone yields nothing.
//
// Reads: header-right lines, Text/Lowered, Now. Writes: InvoiceNumber,
// InvoiceDate, ETTN.
type DetailsStrategy struct{}

func (DetailsStrategy) Name() string { return "details" }

func (s DetailsStrategy) Extract(ctx *Context) {
	headerRight := ctx.ZoneLines(constants.ZoneHeaderRight)
	s.extractInvoiceNumber(ctx, headerRight)
	s.extractDate(ctx, headerRight)
	s.extractETTN(ctx)
}

func (DetailsStrategy) extractInvoiceNumber(ctx *Context, zone []layout.Line) {
	// in-zone: a label phrase plus an issuer-format match on the same line
	for _, ln := range zone {
		lowered := normalize.Lower(ln.Text)
		if !containsAny(lowered, constants.InvoiceNumberLabels) {
			continue
		}
		for _, re := range invoiceNumberPatterns {
			if m := re.FindStringSubmatch(strings.ToUpper(ln.Text)); m != nil {
				ctx.Invoice.InvoiceNumber = m[1]
				ctx.Invoice.SetFieldScore("invoice_number", 0.9)
				return
			}
		}
	}
	// out-of-zone: the formats are distinctive enough to trust label-free
	upper := strings.ToUpper(ctx.Text)
	for _, re := range invoiceNumberPatterns {
		if m := re.FindStringSubmatch(upper); m != nil {
			ctx.Invoice.InvoiceNumber = m[1]
			ctx.Invoice.SetFieldScore("invoice_number", 0.6)
			return
		}
	}
}

func (DetailsStrategy) extractDate(ctx *Context, zone []layout.Line) {
	try := func(text string, rect layout.Rect, mark bool) bool {
		lowered := normalize.Lower(text)
		if !containsAny(lowered, constants.DateLabels) || containsAny(lowered, constants.DateBlacklist) {
			return false
		}
		d, ok := normalize.ParseDate(text, ctx.Now)
		if !ok {
			return false
		}
		ctx.Invoice.InvoiceDate = d
		ctx.Invoice.SetFieldScore("invoice_date", 0.85)
		if mark {
			ctx.MarkRegion(entity.RegionDate, rect)
		}
		return true
	}

	for _, ln := range zone {
		if try(ln.Text, ln.Rect, true) {
			return
		}
	}
	for _, ln := range ctx.TextLines() {
		if try(ln, layout.Rect{}, false) {
			return
		}
	}
	// nothing parsed: default to today rather than fail
	now := ctx.Now
	ctx.Invoice.InvoiceDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	ctx.Invoice.SetFieldScore("invoice_date", 0.2)
}

func (DetailsStrategy) extractETTN(ctx *Context) {
	// labeled: take what follows the label on the same (lowered) line
	for _, ln := range ctx.TextLines() {
		lowered := normalize.Lower(ln)
		idx := strings.Index(lowered, "ettn")
		if idx < 0 {
			continue
		}
		rest := strings.TrimLeft(lowered[idx+len("ettn"):], " :.-")
		if ettn, ok := normalize.NormalizeETTN(rest); ok {
			ctx.Invoice.ETTN = ettn
			ctx.Invoice.SetFieldScore("ettn", 0.9)
			return
		}
		// recognizer may have split the id into adjacent groups
		if ettn, ok := normalize.ReassembleETTN(strings.Fields(rest)); ok {
			ctx.Invoice.ETTN = ettn
			ctx.Invoice.SetFieldScore("ettn", 0.75)
			return
		}
	}
	// unlabeled: a well-formed grouped id anywhere in the text
	if ettn, ok := normalize.FindETTN(ctx.Lowered); ok {
		ctx.Invoice.ETTN = ettn
		ctx.Invoice.SetFieldScore("ettn", 0.6)
	}
}
