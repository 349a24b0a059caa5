// Package engine wires the layout engine, extraction strategies, and vendor
// profiles into one synchronous, re-entrant parse function. A parse call
// owns all of its state; concurrent parses on independent inputs need no
// coordination.
package engine

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/joseph-ayodele/invoice-parser/internal/entity"
	"github.com/joseph-ayodele/invoice-parser/internal/extract"
	"github.com/joseph-ayodele/invoice-parser/internal/layout"
	"github.com/joseph-ayodele/invoice-parser/internal/profile"
)

// ErrEmptyInput is the engine's single failure mode: both the fragment list
// and the raw-text fallback are empty. Every other condition degrades to
// defaults, with the confidence score as the caller's quality signal.
var ErrEmptyInput = errors.New("empty input: no fragments and no raw text")

// parseState names the orchestrator's stages for log correlation.
type parseState string

const (
	stateClustered  parseState = "CLUSTERED"
	stateProfiled   parseState = "PROFILED"
	stateExtracted  parseState = "EXTRACTED"
	stateOverridden parseState = "OVERRIDDEN"
	stateScored     parseState = "SCORED"
	stateRejected   parseState = "REJECTED"
)

// Result carries the populated record plus the labeled debug regions
// identifying which page areas fed which fields (annotative only, for a
// review UI).
type Result struct {
	Invoice *entity.Invoice `json:"invoice"`
	Regions []entity.Region `json:"regions,omitempty"`
}

// Parser is the pipeline orchestrator. It is stateless across calls and
// safe for concurrent use.
type Parser struct {
	logger     *slog.Logger
	registry   *profile.Registry
	strategies []extract.FieldStrategy
	now        func() time.Time
}

// NewParser builds a parser with the default strategy order and profile
// registry.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{
		logger:     logger,
		registry:   profile.NewRegistry(),
		strategies: extract.DefaultStrategies(),
		now:        time.Now,
	}
}

// Parse converts positioned OCR fragments (or, degraded, a raw text blob)
// into a populated invoice record: cluster rows, select a vendor profile,
// run the four strategies in order, apply profile overrides, score.
func (p *Parser) Parse(frags []layout.Fragment, rawText string) (*Result, error) {
	if len(frags) == 0 && strings.TrimSpace(rawText) == "" {
		p.logger.Warn("parse.rejected", "state", stateRejected)
		return nil, ErrEmptyInput
	}

	now := p.now()
	ctx := extract.NewContext(frags, rawText, now)
	inv := ctx.Invoice
	p.logger.Debug("parse.start",
		"parse_id", inv.ParseID,
		"state", stateClustered,
		"fragments", len(frags),
		"rows", len(ctx.Lines),
	)

	prof := p.registry.Select(ctx.Lowered)
	ctx.Profile = prof
	p.logger.Debug("parse.profile", "parse_id", inv.ParseID, "state", stateProfiled, "profile", prof.Name())

	for _, s := range p.strategies {
		s.Extract(ctx)
	}
	p.logger.Debug("parse.extracted", "parse_id", inv.ParseID, "state", stateExtracted)

	// profiles refine or override generic extraction, they never replace it
	prof.Apply(inv, ctx.Lowered, ctx.Fragments)
	// an override may have touched the totals; the repair is idempotent
	inv.Total, inv.Tax, inv.Subtotal = extract.Reconcile(inv.Total, inv.Tax, inv.Subtotal, 0)
	p.logger.Debug("parse.overridden", "parse_id", inv.ParseID, "state", stateOverridden)

	inv.Confidence = Score(inv, now)
	p.logger.Info("parse.ok",
		"parse_id", inv.ParseID,
		"state", stateScored,
		"vendor", inv.VendorName,
		"total", inv.Total,
		"items", len(inv.Items),
		"confidence", inv.Confidence,
	)

	return &Result{Invoice: inv, Regions: ctx.Regions}, nil
}
