package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectColumnsClustersCenters(t *testing.T) {
	lines := []Line{
		NewLine([]Fragment{
			frag("name", 0.10, 0.4, 0, 0.02),
			frag("qty", 0.50, 0.4, 0, 0.02),
			frag("price", 0.90, 0.4, 0, 0.02),
		}),
		NewLine([]Fragment{
			frag("name2", 0.12, 0.5, 0, 0.02),
			frag("qty2", 0.52, 0.5, 0, 0.02),
			frag("price2", 0.90, 0.5, 0, 0.02),
		}),
	}
	anchors := DetectColumns(lines)
	require.Len(t, anchors, 3)
	assert.InDelta(t, 0.11, anchors[0], 1e-9)
	assert.InDelta(t, 0.51, anchors[1], 1e-9)
	assert.InDelta(t, 0.90, anchors[2], 1e-9)
}

func TestDetectColumnsEmpty(t *testing.T) {
	assert.Nil(t, DetectColumns(nil))
}

func TestColumnIndexNearestAnchor(t *testing.T) {
	anchors := []float64{0.1, 0.5, 0.9}

	tests := []struct {
		name    string
		centerX float64
		want    int
	}{
		{"close to last column", 0.88, 2},
		{"between anchors, too far from all", 0.3, NoColumn},
		{"exactly on an anchor", 0.5, 1},
		{"within tolerance of first", 0.15, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := frag("x", tc.centerX, 0.4, 0, 0.02)
			assert.Equal(t, tc.want, ColumnIndex(f, anchors))
		})
	}
}
