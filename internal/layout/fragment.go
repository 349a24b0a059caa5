// Package layout models positioned OCR text and groups it geometrically:
// fragments into visual rows, rows into page zones, and table fragments into
// columns. All coordinates are normalized to [0,1] with the origin at the
// top-left and y increasing downward; the conversion from the OCR
// collaborator's native convention happens once, at the input boundary,
// never here.
package layout

import (
	"sort"
	"strings"
)

// Rect is a normalized rectangle on the page.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) CenterX() float64 { return r.X + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }
func (r Rect) Area() float64    { return r.Width * r.Height }

// Intersection returns the overlapping area of r and o.
func (r Rect) Intersection(o Rect) float64 {
	w := min(r.X+r.Width, o.X+o.Width) - max(r.X, o.X)
	h := min(r.Y+r.Height, o.Y+o.Height) - max(r.Y, o.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// OverlapRatio returns the fraction of r's own area covered by o.
func (r Rect) OverlapRatio(o Rect) float64 {
	a := r.Area()
	if a == 0 {
		return 0
	}
	return r.Intersection(o) / a
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	x := min(r.X, o.X)
	y := min(r.Y, o.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  max(r.X+r.Width, o.X+o.Width) - x,
		Height: max(r.Y+r.Height, o.Y+o.Height) - y,
	}
}

// Fragment is one recognized text span. Immutable once produced.
type Fragment struct {
	Text       string  `json:"text"`
	Rect       Rect    `json:"rect"`
	Confidence float64 `json:"confidence"`
}

// Line is an ordered group of fragments forming one visual row. Text and
// Rect are derived on construction.
type Line struct {
	Fragments []Fragment `json:"fragments"`
	Text      string     `json:"text"`
	Rect      Rect       `json:"rect"`
}

// NewLine builds a Line from fragments of one row, sorting them
// left-to-right and deriving the joined text and union rectangle.
func NewLine(frags []Fragment) Line {
	sorted := make([]Fragment, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rect.X < sorted[j].Rect.X
	})

	texts := make([]string, 0, len(sorted))
	rect := Rect{}
	for i, f := range sorted {
		texts = append(texts, f.Text)
		if i == 0 {
			rect = f.Rect
		} else {
			rect = rect.Union(f.Rect)
		}
	}
	return Line{Fragments: sorted, Text: strings.Join(texts, " "), Rect: rect}
}
