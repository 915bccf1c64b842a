// Package jsonschema is the minimal JSON Schema document produced by schema
// export. It models only what the DSL can express.
package jsonschema

// Draft is the dialect URI written into exported root documents.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Schema is a minimal JSON Schema representation used for export.
type Schema struct {
	// Root document metadata
	Dialect     string `json:"$schema,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// Core
	Type       string `json:"type,omitempty"`
	Format     string `json:"format,omitempty"`
	Default    any    `json:"default,omitempty"`
	Enum       []any  `json:"enum,omitempty"`
	Deprecated bool   `json:"deprecated,omitempty"`

	// Number
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`
}

// Clone returns a shallow copy of s with its own Properties map, so callers
// can merge or annotate properties without touching the original.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	out := *s
	if s.Properties != nil {
		out.Properties = make(map[string]*Schema, len(s.Properties))
		for k, v := range s.Properties {
			out.Properties[k] = v
		}
	}
	if s.Required != nil {
		out.Required = append([]string(nil), s.Required...)
	}
	return &out
}
