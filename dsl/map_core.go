package dsl

import (
	"context"
	"sort"

	js "github.com/reoring/trunkconf/jsonschema"
	"github.com/reoring/trunkconf/schema"
)

// MapAny returns a minimal Schema[map[string]any] useful for passthrough targets or loose maps.
func MapAny() schema.Schema[map[string]any] { return mapAnySchema{} }

type mapAnySchema struct{}

func (mapAnySchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, schema.Issues{schema.TypeMismatch("object", v)}
	}
	return m, nil
}
func (mapAnySchema) ValidateValue(ctx context.Context, v map[string]any) error { return nil }
func (mapAnySchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "object", AdditionalProperties: true}, nil
}

// Map returns a schema for objects where all properties are validated by elem.
// It decodes into map[string]V.
func Map[V any](elem schema.Schema[V]) schema.Schema[map[string]V] { return mapSchema[V]{val: elem} }

// MapOf adapts Map[V] to AnyAdapter for use in typed object builders.
func MapOf[V any](elem schema.Schema[V]) AnyAdapter {
	return anyAdapterFromSchema[map[string]V](Map[V](elem))
}

type mapSchema[V any] struct{ val schema.Schema[V] }

func (m mapSchema[V]) Parse(ctx context.Context, v any) (map[string]V, error) {
	switch src := v.(type) {
	case map[string]V:
		if err := m.ValidateValue(ctx, src); err != nil {
			return nil, err
		}
		return src, nil
	case map[string]any:
		out := make(map[string]V, len(src))
		var iss schema.Issues
		for _, k := range sortedKeys(src) {
			vv, err := m.val.Parse(ctx, src[k])
			if err != nil {
				iss = schema.AppendIssues(iss, schema.Rebase(schema.Key(k), schema.FromError("/", err))...)
				continue
			}
			out[k] = vv
		}
		if len(iss) > 0 {
			return nil, iss
		}
		return out, nil
	default:
		return nil, schema.Issues{schema.TypeMismatch("object", v)}
	}
}

func (m mapSchema[V]) ValidateValue(ctx context.Context, v map[string]V) error {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := m.val.ValidateValue(ctx, v[k]); err != nil {
			return schema.Rebase(schema.Key(k), schema.FromError("/", err))
		}
	}
	return nil
}

func (m mapSchema[V]) JSONSchema() (*js.Schema, error) {
	vs, err := m.val.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "object", AdditionalProperties: vs}, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
