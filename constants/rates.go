package constants

// Tax rates and arithmetic tolerances used by the financial extraction and
// the self-healing reconciliation.
const (
	// DefaultVATRate applies when no explicit rate is detected.
	DefaultVATRate = 0.18
	// MaxPlausibleVATRate caps tax/subtotal; above it the tax figure is
	// treated as misread and recomputed at the default rate.
	MaxPlausibleVATRate = 0.20
	// ReconcileTolerance is the absolute disagreement (currency units)
	// allowed between total and subtotal+tax before a correction is forced.
	ReconcileTolerance = 0.05
	// TaxRateSlack is the relative slack when validating a candidate tax
	// figure against subtotal×rate.
	TaxRateSlack = 0.10
	// ConsistencyTolerance is the relative slack for the confidence score's
	// total ≈ subtotal+tax check.
	ConsistencyTolerance = 0.01
)

// PriorityRegionMinOverlap is the fraction of a fragment's own area that must
// fall inside a profile's priority rectangle for the fragment to count.
const PriorityRegionMinOverlap = 0.50

// Field-confidence levels recorded for the total, by extraction path.
const (
	PriorityRegionConfidence = 0.95
	AnchorTotalConfidence    = 0.90
	FallbackTotalConfidence  = 0.50
)

// Confidence score weights. The basic-field share is halved when the total
// is exactly zero: a zero total invalidates most other extracted context.
const (
	WeightBasicFields  = 0.40
	WeightConsistency  = 0.30
	WeightPlausibility = 0.20
	WeightLineItems    = 0.10
)

// YearMisreadOffset is subtracted from an implausibly future year (more than
// one year ahead of now), modeling a systematic tens-digit misread.
const YearMisreadOffset = 10

// Line-item defaults when the table columns do not carry them.
const (
	DefaultItemQuantity = 1.0
	DefaultItemTaxRate  = DefaultVATRate
)
