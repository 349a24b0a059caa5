package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
		ok   bool
	}{
		{"dotted", "Fatura Tarihi: 15.03.2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"slashed", "15/03/2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"two digit year", "15.03.24", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"no date", "toplam 59,00", time.Time{}, false},
		{"impossible day", "45.03.2024", time.Time{}, false},
		{"impossible month", "15.13.2024", time.Time{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseDate(tc.in, testNow)
			require.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestParseDateRepairsMisreadFutureYear(t *testing.T) {
	// 2034 is more than a year out: assume a tens-digit misread
	got, ok := ParseDate("15.03.2034", testNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)

	// still implausible after the shift: give up
	_, ok = ParseDate("15.03.2099", testNow)
	assert.False(t, ok)
}
