package dsl

import (
	"context"
	"reflect"

	js "github.com/reoring/trunkconf/jsonschema"
	"github.com/reoring/trunkconf/schema"
)

// AnyAdapter adapts Schema[T] to an any-typed DSL wrapper so that fields of
// different types can live in one object builder. It keeps the original
// schema for JSON Schema augmentation.
type AnyAdapter struct {
	parse         func(context.Context, any) (any, error)
	validateValue func(context.Context, any) error
	applyDefault  func(context.Context) (any, error)
	jsonSchema    func() (*js.Schema, error)
	orig          any
}

// anyAdapterFromSchema wraps a strongly typed Schema[T] as AnyAdapter for Field builders.
func anyAdapterFromSchema[T any](s schema.Schema[T]) AnyAdapter {
	return AnyAdapter{
		parse: func(ctx context.Context, v any) (any, error) { return s.Parse(ctx, v) },
		validateValue: func(ctx context.Context, v any) error {
			tv, ok := convertTo[T](v)
			if !ok {
				return schema.Issues{schema.TypeMismatch(reflect.TypeOf((*T)(nil)).Elem().String(), v)}
			}
			return s.ValidateValue(ctx, tv)
		},
		jsonSchema: s.JSONSchema,
		orig:       s,
	}
}

// convertTo asserts v to T, falling back to a reflect conversion so that
// named types (type Proxies []Proxy) validate against their underlying schema.
func convertTo[T any](v any) (T, bool) {
	if tv, ok := v.(T); ok {
		return tv, true
	}
	var zero T
	if v == nil {
		return zero, false
	}
	rv := reflect.ValueOf(v)
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if !rv.Type().ConvertibleTo(rt) {
		return zero, false
	}
	tv, ok := rv.Convert(rt).Interface().(T)
	return tv, ok
}

// Orig returns the original underlying Schema[T] used to create this adapter.
func (ad AnyAdapter) Orig() any { return ad.orig }

// Parse runs the adapted schema on a raw value.
func (ad AnyAdapter) Parse(ctx context.Context, v any) (any, error) { return ad.parse(ctx, v) }

// ValidateValue validates an already typed value.
func (ad AnyAdapter) ValidateValue(ctx context.Context, v any) error {
	if ad.validateValue == nil {
		return nil
	}
	return ad.validateValue(ctx, v)
}

// JSONSchema returns the JSON Schema of the adapted schema.
func (ad AnyAdapter) JSONSchema() (*js.Schema, error) {
	if ad.jsonSchema == nil {
		return &js.Schema{}, nil
	}
	return ad.jsonSchema()
}

// Describe attaches a description to the exported JSON Schema.
func (ad AnyAdapter) Describe(desc string) AnyAdapter {
	return ad.annotate(func(s *js.Schema) { s.Description = desc })
}

// Deprecated marks the field as deprecated in the exported JSON Schema. The
// value is still accepted at runtime; migrations decide what to do with it.
func (ad AnyAdapter) Deprecated() AnyAdapter {
	return ad.annotate(func(s *js.Schema) { s.Deprecated = true })
}

func (ad AnyAdapter) annotate(fn func(*js.Schema)) AnyAdapter {
	prev := ad.jsonSchema
	out := ad
	out.jsonSchema = func() (*js.Schema, error) {
		s := &js.Schema{}
		if prev != nil {
			ps, err := prev()
			if err != nil {
				return nil, err
			}
			if ps != nil {
				s = ps.Clone()
			}
		}
		fn(s)
		return s, nil
	}
	return out
}

// withDefault returns a copy of ad whose missing value is produced by parsing v.
func (ad AnyAdapter) withDefault(v any) AnyAdapter {
	out := ad.annotate(func(s *js.Schema) { s.Default = v })
	parse := ad.parse
	out.applyDefault = func(ctx context.Context) (any, error) { return parse(ctx, v) }
	return out
}
