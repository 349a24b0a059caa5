package input

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// payloadSchema is compiled once at package init. The schema map is a
// constant of this package, so a compilation failure is a programming error.
var payloadSchema = mustCompilePayloadSchema()

func mustCompilePayloadSchema() *jsonschema.Schema {
	b, err := json.Marshal(BuildPayloadJSONSchema())
	if err != nil {
		panic(fmt.Sprintf("input: marshal payload schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("payload.json", bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("input: add payload schema: %v", err))
	}
	schema, err := compiler.Compile("payload.json")
	if err != nil {
		panic(fmt.Sprintf("input: compile payload schema: %v", err))
	}
	return schema
}

// validatePayload checks data against the precompiled payload schema.
func validatePayload(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if err := payloadSchema.Validate(v); err != nil {
		return fmt.Errorf("payload does not match schema: %w", err)
	}
	return nil
}
