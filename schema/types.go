package schema

import (
	"context"

	js "github.com/reoring/trunkconf/jsonschema"
)

// UnknownPolicy controls how unknown keys are handled.
type UnknownPolicy int

const (
	UnknownStrict      UnknownPolicy = iota // Reject unknown keys with an error.
	UnknownStrip                            // Drop unknown keys.
	UnknownPassthrough                      // Capture unknown keys, undecoded, into a target field.
)

// Schema is the contract every DSL node implements.
type Schema[T any] interface {
	// Parse converts a raw value (as produced by the source parsers:
	// map[string]any, []any, string, bool and numbers) into T, applying
	// defaults and validation. Failures are reported as Issues.
	Parse(ctx context.Context, v any) (T, error)

	// ValidateValue verifies a value already typed as T without any conversion.
	ValidateValue(ctx context.Context, v T) error

	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}
