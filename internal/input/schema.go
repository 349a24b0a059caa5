// Package input decodes the OCR collaborator's payload at the engine
// boundary: JSON schema validation and the one-time conversion of fragment
// rectangles into the engine's fixed coordinate convention (origin top-left,
// y-down, axes in [0,1]). No downstream code re-derives orientation.
package input

// BuildPayloadJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the inbound OCR payload. It is also what we
// validate against locally before decoding.
func BuildPayloadJSONSchema() map[string]any {
	fragment := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"text":       map[string]any{"type": "string", "minLength": 1},
			"x":          unitProp(),
			"y":          unitProp(),
			"width":      unitProp(),
			"height":     unitProp(),
			"confidence": unitProp(),
		},
		"required": []string{"text", "x", "y", "width", "height"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"origin": map[string]any{
				"type": "string",
				"enum": []string{OriginTopLeft, OriginBottomLeft},
			},
			"raw_text": map[string]any{"type": "string"},
			"fragments": map[string]any{
				"type":  "array",
				"items": fragment,
			},
		},
	}
}

func unitProp() map[string]any {
	return map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0}
}
