package extract

import "github.com/joseph-ayodele/invoice-parser/constants"

// Reconcile is the arithmetic self-healing pass over the
// (total, tax, subtotal) tuple. Any single footer figure may be missing or
// misread while the other two remain computable from it, so the repair runs
// unconditionally after whichever extraction pass produced the figures.
//
// Rules, in order:
//  1. exactly one figure zero, other two known: derive it by addition or
//     subtraction;
//  2. only total known: derive subtotal and tax at the given rate;
//  3. all three known but subtotal+tax disagrees with total beyond the
//     absolute tolerance: prefer total and correct whichever of subtotal/tax
//     the rate relation marks as the misread figure;
//  4. tax exceeding the maximum plausible rate of subtotal: trust subtotal,
//     recompute tax at the given rate and realign total.
//
// The function is a pure repair over the tuple and is idempotent: applying
// it to its own output changes nothing.
func Reconcile(total, tax, subtotal, rate float64) (float64, float64, float64) {
	if rate <= 0 || rate > constants.MaxPlausibleVATRate {
		rate = constants.DefaultVATRate
	}

	switch {
	case total == 0 && tax > 0 && subtotal > 0:
		total = subtotal + tax
	case tax == 0 && total > 0 && subtotal > 0 && total >= subtotal:
		tax = total - subtotal
	case subtotal == 0 && total > 0 && tax > 0 && total >= tax:
		subtotal = total - tax
	}

	if total > 0 && tax == 0 && subtotal == 0 {
		subtotal = total / (1 + rate)
		tax = total - subtotal
	}

	if total > 0 && tax > 0 && subtotal > 0 && abs(subtotal+tax-total) > constants.ReconcileTolerance {
		// prefer total; the rate relation decides which of the other two is
		// the misread figure: correcting tax must land it closer to
		// subtotal×rate than it already is, otherwise subtotal moves
		fixedTax := total - subtotal
		fixedSubtotal := total - tax
		switch {
		case fixedTax >= 0 && abs(fixedTax-subtotal*rate) <= abs(tax-subtotal*rate):
			tax = fixedTax
		case fixedSubtotal >= 0:
			subtotal = fixedSubtotal
		default:
			subtotal = total / (1 + rate)
			tax = total - subtotal
		}
	}

	if subtotal > 0 && tax > subtotal*constants.MaxPlausibleVATRate {
		tax = subtotal * rate
		total = subtotal + tax
	}

	return total, tax, subtotal
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
