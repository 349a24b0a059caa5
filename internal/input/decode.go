package input

import (
	"encoding/json"
	"fmt"

	"github.com/joseph-ayodele/invoice-parser/internal/layout"
)

// Origin conventions the OCR collaborator may declare. Absent a declaration
// the payload is assumed to already be top-left/y-down.
const (
	OriginTopLeft    = "top-left"
	OriginBottomLeft = "bottom-left"
)

// Payload is the OCR collaborator's wire shape.
type Payload struct {
	Origin    string            `json:"origin,omitempty"`
	RawText   string            `json:"raw_text,omitempty"`
	Fragments []PayloadFragment `json:"fragments,omitempty"`
}

// PayloadFragment mirrors layout.Fragment with flattened geometry.
type PayloadFragment struct {
	Text       string  `json:"text"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Confidence float64 `json:"confidence"`
}

// Decode validates and decodes a payload, converting geometry into the
// engine convention exactly once, here. Downstream code never re-derives
// orientation.
func Decode(data []byte) ([]layout.Fragment, string, error) {
	if err := validatePayload(data); err != nil {
		return nil, "", fmt.Errorf("payload: %w", err)
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, "", fmt.Errorf("payload: decode: %w", err)
	}

	frags := make([]layout.Fragment, 0, len(p.Fragments))
	for _, f := range p.Fragments {
		y := f.Y
		if p.Origin == OriginBottomLeft {
			// flip into y-down; the payload y marks the box bottom there
			y = 1 - f.Y - f.Height
		}
		frags = append(frags, layout.Fragment{
			Text:       f.Text,
			Rect:       layout.Rect{X: f.X, Y: y, Width: f.Width, Height: f.Height},
			Confidence: f.Confidence,
		})
	}
	return frags, p.RawText, nil
}
