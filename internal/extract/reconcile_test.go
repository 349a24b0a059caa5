package extract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcile(t *testing.T) {
	tests := []struct {
		name                        string
		total, tax, subtotal, rate  float64
		wantTotal, wantTax, wantSub float64
	}{
		{"nothing to do", 59, 9, 50, 0, 59, 9, 50},
		{"derive tax", 59, 0, 50, 0, 59, 9, 50},
		{"derive subtotal", 59, 9, 0, 0, 59, 9, 50},
		{"derive total", 0, 9, 50, 0, 59, 9, 50},
		{"only total known", 59, 0, 0, 0, 59, 9, 50},
		{"misread tax", 59, 12, 50, 0, 59, 9, 50},
		{"misread subtotal", 59, 9, 55, 0, 59, 9, 50},
		{"implausible tax trusts subtotal", 0, 20, 50, 0, 59, 9, 50},
		{"invalid rate falls back to default", 118, 0, 0, 0.99, 118, 18, 100},
		{"all zero stays zero", 0, 0, 0, 0, 0, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			total, tax, sub := Reconcile(tc.total, tc.tax, tc.subtotal, tc.rate)
			assert.InDelta(t, tc.wantTotal, total, 1e-6)
			assert.InDelta(t, tc.wantTax, tax, 1e-6)
			assert.InDelta(t, tc.wantSub, sub, 1e-6)
		})
	}
}

// Applying the repair to its own output must change nothing.
func TestReconcileIdempotent(t *testing.T) {
	tuples := [][3]float64{
		{59, 0, 50},
		{59, 9, 0},
		{0, 9, 50},
		{59, 0, 0},
		{59, 12, 50},
		{59, 9, 55},
		{0, 20, 50},
		{1250.75, 0, 0},
		{0, 0, 0},
	}
	for i, tp := range tuples {
		t.Run(fmt.Sprintf("tuple_%d", i), func(t *testing.T) {
			t1, x1, s1 := Reconcile(tp[0], tp[1], tp[2], 0)
			t2, x2, s2 := Reconcile(t1, x1, s1, 0)
			assert.InDelta(t, t1, t2, 1e-9)
			assert.InDelta(t, x1, x2, 1e-9)
			assert.InDelta(t, s1, s2, 1e-9)
		})
	}
}
