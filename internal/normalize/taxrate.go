package normalize

import (
	"regexp"
	"strconv"

	"github.com/joseph-ayodele/invoice-parser/constants"
)

var reTaxRate = regexp.MustCompile(constants.PatternTaxRate)

// DetectTaxRate finds an explicit VAT percentage in lowered text ("kdv %18",
// "%8"). Percentages above the plausible VAT cap are skipped; absent any
// usable match the caller falls back to the default rate.
func DetectTaxRate(lowered string) (float64, bool) {
	for _, m := range reTaxRate.FindAllStringSubmatch(lowered, -1) {
		pct, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		rate := float64(pct) / 100
		if rate > 0 && rate <= constants.MaxPlausibleVATRate {
			return rate, true
		}
	}
	return 0, false
}
