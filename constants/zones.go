package constants

// Zone is the coarse page region a fragment or line belongs to.
type Zone string

// Stable values (these exact strings appear in logs and debug regions).
const (
	ZoneHeaderLeft  Zone = "HEADER_LEFT"  // vendor block
	ZoneHeaderRight Zone = "HEADER_RIGHT" // invoice no / date / ETTN block
	ZoneBody        Zone = "BODY"         // line-item table
	ZoneFooter      Zone = "FOOTER"       // totals block
)

// Vertical and horizontal zone splits, in normalized page coordinates
// (origin top-left, y increasing downward). The four-zone model assumes a
// single-page, top-to-bottom invoice layout; that assumption holds for the
// target document class and is not re-derived per document.
const (
	// HeaderBandMaxY is the exclusive lower edge of the header band.
	HeaderBandMaxY = 0.30
	// FooterBandMinY is the exclusive upper edge of the footer band.
	FooterBandMinY = 0.70
	// HeaderSplitX divides the header into left (vendor) and right (details).
	HeaderSplitX = 0.50
)

// Row clustering tolerances. The tolerance scales with recognized text size
// so small dense invoices and large sparse receipts both cluster correctly.
const (
	// RowToleranceFloor is the minimum vertical-center distance tolerance.
	RowToleranceFloor = 0.01
	// RowToleranceHeightRatio multiplies the average fragment height.
	RowToleranceHeightRatio = 0.3
)

// Column detection tolerances (fractions of page width).
const (
	// ColumnMergeTolerance merges horizontal centers into one anchor.
	ColumnMergeTolerance = 0.05
	// ColumnAssignTolerance rejects a fragment whose distance to the nearest
	// anchor exceeds it.
	ColumnAssignTolerance = 0.10
)

// VendorTopBandMaxY marks the page band where a non-trivial header-left line
// is accepted as the vendor name even without a company-suffix token.
const VendorTopBandMaxY = 0.15
