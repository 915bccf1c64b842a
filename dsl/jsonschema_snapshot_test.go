package dsl_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	g "github.com/reoring/trunkconf/dsl"
)

// normalize marshals v to JSON and unmarshals back into interface{} to remove ordering effects.
func normalize(t *testing.T, v any) any {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

func TestJSONSchema_Primitives(t *testing.T) {
	cases := []struct {
		name string
		got  func() (any, error)
		want map[string]any
	}{
		{"string", func() (any, error) { return g.String().JSONSchema() }, map[string]any{"type": "string"}},
		{"bool", func() (any, error) { return g.Bool().JSONSchema() }, map[string]any{"type": "boolean"}},
		{"uint8", func() (any, error) { return g.Integer[uint8]().JSONSchema() }, map[string]any{"type": "integer", "minimum": 0, "maximum": 255}},
		{"enum", func() (any, error) { return g.Enum[string]("ws", "wss").JSONSchema() }, map[string]any{"type": "string", "enum": []any{"ws", "wss"}}},
		{"url", func() (any, error) { return g.URL().JSONSchema() }, map[string]any{"type": "string", "format": "uri"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.got()
			if err != nil {
				t.Fatalf("JSONSchema err: %v", err)
			}
			if diff := cmp.Diff(normalize(t, tc.want), normalize(t, s)); diff != "" {
				t.Fatalf("schema mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJSONSchema_Object(t *testing.T) {
	s, err := g.Object().
		Describe("server").
		Field("port", g.IntOf[uint16]()).Default(8080).
		Field("address", g.StringOf[string]().Deprecated()).
		Field("backend", g.SchemaOf[string](g.URL()).Describe("proxy target")).Required().
		Field("tags", g.ArrayOf[string](g.String())).Alias("tag").
		MustBuild().
		JSONSchema()
	if err != nil {
		t.Fatalf("JSONSchema err: %v", err)
	}
	want := map[string]any{
		"type":                 "object",
		"description":          "server",
		"additionalProperties": false,
		"required":             []any{"backend"},
		"properties": map[string]any{
			"port":    map[string]any{"type": "integer", "minimum": 0, "maximum": 65535, "default": 8080},
			"address": map[string]any{"type": "string", "deprecated": true},
			"backend": map[string]any{"type": "string", "format": "uri", "description": "proxy target"},
			"tags":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
	}
	if diff := cmp.Diff(normalize(t, want), normalize(t, s)); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONSchema_PassthroughHidesTarget(t *testing.T) {
	s, err := g.Object().
		Field("build", g.SchemaOf[map[string]any](g.MapAny())).
		Field("extras", g.SchemaOf[map[string]any](g.MapAny())).
		UnknownPassthrough("extras").
		MustBuild().
		JSONSchema()
	if err != nil {
		t.Fatalf("JSONSchema err: %v", err)
	}
	if _, ok := s.Properties["extras"]; ok {
		t.Fatalf("passthrough target must not be exported")
	}
	if s.AdditionalProperties != true {
		t.Fatalf("passthrough should allow additional properties, got %v", s.AdditionalProperties)
	}
}
