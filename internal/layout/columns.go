package layout

import (
	"sort"

	"github.com/joseph-ayodele/invoice-parser/constants"
)

// NoColumn is returned when a fragment sits too far from every anchor.
const NoColumn = -1

// DetectColumns infers horizontal column anchors for a table region: every
// fragment's horizontal center is collected, sorted, and greedily clustered;
// centers within the merge tolerance of the running cluster collapse into
// one anchor at the cluster mean. Anchors come back sorted left to right.
func DetectColumns(lines []Line) []float64 {
	var centers []float64
	for _, ln := range lines {
		for _, f := range ln.Fragments {
			centers = append(centers, f.Rect.CenterX())
		}
	}
	if len(centers) == 0 {
		return nil
	}
	sort.Float64s(centers)

	var anchors []float64
	clusterStart := 0
	for i := 1; i <= len(centers); i++ {
		if i < len(centers) && centers[i]-centers[i-1] < constants.ColumnMergeTolerance {
			continue
		}
		anchors = append(anchors, mean(centers[clusterStart:i]))
		clusterStart = i
	}
	return anchors
}

// ColumnIndex assigns a fragment to the nearest anchor by absolute distance,
// or NoColumn when that distance exceeds the assignment tolerance. Used to
// tell a genuine price column from stray trailing text.
func ColumnIndex(f Fragment, anchors []float64) int {
	best := NoColumn
	bestDist := constants.ColumnAssignTolerance
	cx := f.Rect.CenterX()
	for i, a := range anchors {
		if d := abs(cx - a); d <= bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
