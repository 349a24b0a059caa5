package engine

import (
	"time"

	"github.com/joseph-ayodele/invoice-parser/constants"
	"github.com/joseph-ayodele/invoice-parser/internal/entity"
)

// ettnCanonicalLength is the grouped-hexadecimal form's length (8-4-4-4-12
// plus separators).
const ettnCanonicalLength = 36

// Score computes the weighted overall confidence:
//
//	40% basic-field presence (vendor name, tax id, total, ETTN length),
//	    halved when the total is exactly zero;
//	30% financial self-consistency (total ≈ subtotal+tax within 1%);
//	20% derived-field plausibility (invoice-number length, date not future);
//	10% presence of at least one line item.
func Score(inv *entity.Invoice, now time.Time) float64 {
	basic := 0.0
	if inv.VendorName != "" {
		basic++
	}
	if n := len(inv.VendorTaxID); n == 10 || n == 11 {
		basic++
	}
	if inv.Total > 0 {
		basic++
	}
	if len(inv.ETTN) == ettnCanonicalLength {
		basic++
	}
	basicScore := basic / 4 * constants.WeightBasicFields
	if inv.Total == 0 {
		basicScore /= 2
	}

	consistency := 0.0
	if inv.Total > 0 {
		diff := inv.Subtotal + inv.Tax - inv.Total
		if diff < 0 {
			diff = -diff
		}
		if diff <= inv.Total*constants.ConsistencyTolerance {
			consistency = constants.WeightConsistency
		}
	}

	plausible := 0.0
	if n := len(inv.InvoiceNumber); n >= 13 && n <= 16 {
		plausible++
	}
	if !inv.InvoiceDate.IsZero() && !inv.InvoiceDate.After(now.AddDate(0, 0, 1)) {
		plausible++
	}
	plausibility := plausible / 2 * constants.WeightPlausibility

	items := 0.0
	if len(inv.Items) > 0 {
		items = constants.WeightLineItems
	}

	return basicScore + consistency + plausibility + items
}
