package layout

import (
	"sort"

	"github.com/joseph-ayodele/invoice-parser/constants"
)

// RowTolerance computes the vertical clustering tolerance for a fragment
// set: max(floor, averageFragmentHeight × ratio). A dynamic tolerance keeps
// small dense invoices and large sparse receipts clustering correctly with
// the same code.
func RowTolerance(frags []Fragment) float64 {
	if len(frags) == 0 {
		return constants.RowToleranceFloor
	}
	var sum float64
	for _, f := range frags {
		sum += f.Rect.Height
	}
	tol := sum / float64(len(frags)) * constants.RowToleranceHeightRatio
	return max(tol, constants.RowToleranceFloor)
}

// ClusterRows groups fragments into visual rows, top to bottom. Fragments
// are sorted by vertical position; a fragment joins the current row while
// its vertical-center distance to the row's last member stays below the
// tolerance, otherwise it starts a new row.
func ClusterRows(frags []Fragment) []Line {
	if len(frags) == 0 {
		return nil
	}

	sorted := make([]Fragment, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rect.CenterY() < sorted[j].Rect.CenterY()
	})

	tol := RowTolerance(sorted)

	var lines []Line
	current := []Fragment{sorted[0]}
	for _, f := range sorted[1:] {
		last := current[len(current)-1]
		if abs(f.Rect.CenterY()-last.Rect.CenterY()) < tol {
			current = append(current, f)
			continue
		}
		lines = append(lines, NewLine(current))
		current = []Fragment{f}
	}
	lines = append(lines, NewLine(current))
	return lines
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
