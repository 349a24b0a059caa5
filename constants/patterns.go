package constants

// Regular expression sources for the extraction heuristics. They are compiled
// once, at package init, in internal/normalize; a malformed pattern is a
// programming defect and panics at startup, never per parse.
const (
	// PatternAmount matches Turkish-notation amounts: thousand dots,
	// decimal comma ("1.234,56", "809,96") or a plain integer/decimal.
	PatternAmount = `\d{1,3}(?:\.\d{3})+(?:,\d{1,2})?|\d+,\d{1,2}|\d+`

	// PatternDate matches day/month/year with ./-/ separators.
	PatternDate = `\b(\d{1,2})[./-](\d{1,2})[./-](\d{2,4})\b`

	// PatternLabeledTaxID captures the 10-digit VKN after a tax-id label.
	PatternLabeledTaxID = `(?:vkn|vergi no|vergi numarası|vergi kimlik no)\s*[:.]?\s*(\d{10})\b`

	// PatternStandaloneID matches a bare 10- or 11-digit sequence.
	PatternStandaloneID = `\b(\d{10,11})\b`

	// PatternPhone matches Turkish phone shapes (leading 0 5xx / +90 ...).
	PatternPhone = `(?:\+\s*9\s*0|0)\s*\(?\s*\d{3}\s*\)?[\s.-]*\d{3}[\s.-]*\d{2}[\s.-]*\d{2}`

	// PatternInvoiceNoEFatura is the GIB e-invoice format: a 3-letter unit
	// prefix, a 4-digit year, and a 9-digit sequence (16 chars total).
	PatternInvoiceNoEFatura = `\b([A-Z]{3}20\d{2}\d{9})\b`

	// PatternInvoiceNoAlternate is the fixed-length fallback: 16
	// alphanumerics starting with a letter.
	PatternInvoiceNoAlternate = `\b([A-Z][A-Z0-9]{15})\b`

	// PatternETTN matches the canonical grouped-hexadecimal transaction id.
	PatternETTN = `\b([0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12})\b`

	// PatternTaxRate captures an explicit VAT percentage ("kdv %18", "%8").
	PatternTaxRate = `(?:kdv\s*)?%\s*(\d{1,2})\b`
)

// ETTNGroupLengths are the whitespace-delimited group sizes used when an
// identifier must be reassembled from adjacent fragments.
var ETTNGroupLengths = []int{8, 4, 4, 4, 12}
