// Package extract holds the parse context shared by the field-extraction
// strategies, the four strategies themselves, and the arithmetic
// self-healing pass. Strategies mutate the invoice record in place, in a
// fixed order, and never read each other's output except where documented.
package extract

import (
	"strings"
	"time"

	"github.com/joseph-ayodele/invoice-parser/constants"
	"github.com/joseph-ayodele/invoice-parser/internal/entity"
	"github.com/joseph-ayodele/invoice-parser/internal/layout"
	"github.com/joseph-ayodele/invoice-parser/internal/normalize"
	"github.com/joseph-ayodele/invoice-parser/internal/profile"
)

// Context is built once per parse call and shared by every strategy.
// It owns the record being populated; nothing in it survives the call.
type Context struct {
	Fragments []layout.Fragment
	Lines     []layout.Line
	Text      string // full recognized text, newline-joined rows
	Lowered   string // Text with Turkish-aware lowercasing
	Profile   profile.Profile
	Now       time.Time
	Invoice   *entity.Invoice
	Regions   []entity.Region

	textLines []string // lazy: trimmed, non-empty lines of Text
}

// NewContext clusters the fragments into rows and derives the text views.
// rawText is the degraded path: used only when no fragments are available.
func NewContext(frags []layout.Fragment, rawText string, now time.Time) *Context {
	lines := layout.ClusterRows(frags)

	text := rawText
	if len(lines) > 0 {
		parts := make([]string, 0, len(lines))
		for _, ln := range lines {
			parts = append(parts, ln.Text)
		}
		text = strings.Join(parts, "\n")
	}

	return &Context{
		Fragments: frags,
		Lines:     lines,
		Text:      text,
		Lowered:   normalize.Lower(text),
		Now:       now,
		Invoice:   entity.NewInvoice(),
	}
}

// ZoneLines returns the rows whose bounding rectangle classifies into z,
// preserving top-to-bottom order.
func (c *Context) ZoneLines(z constants.Zone) []layout.Line {
	var out []layout.Line
	for _, ln := range c.Lines {
		if layout.ZoneOf(ln.Rect) == z {
			out = append(out, ln)
		}
	}
	return out
}

// ZoneFragments returns the fragments whose own rectangle classifies into z.
func (c *Context) ZoneFragments(z constants.Zone) []layout.Fragment {
	var out []layout.Fragment
	for _, f := range c.Fragments {
		if layout.ZoneOf(f.Rect) == z {
			out = append(out, f)
		}
	}
	return out
}

// TextLines returns the trimmed non-empty lines of the full text, computed
// once on first use.
func (c *Context) TextLines() []string {
	if c.textLines == nil {
		for _, ln := range strings.Split(c.Text, "\n") {
			if t := strings.TrimSpace(ln); t != "" {
				c.textLines = append(c.textLines, t)
			}
		}
		if c.textLines == nil {
			c.textLines = []string{}
		}
	}
	return c.textLines
}

// MarkRegion records a labeled debug rectangle for the review UI.
func (c *Context) MarkRegion(label string, r layout.Rect) {
	c.Regions = append(c.Regions, entity.Region{Label: label, Rect: r})
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
