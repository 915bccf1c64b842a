package dsl

import (
	"context"
	"fmt"
	"reflect"

	js "github.com/reoring/trunkconf/jsonschema"
	"github.com/reoring/trunkconf/schema"
)

// Bind builds an object schema and binds it to struct type T (free function for Go version compatibility).
// Every DSL field must resolve to an exported struct field (see schema.ResolveStructKey).
func Bind[T any](b *objectBuilder) (schema.Schema[T], error) {
	os, err := b.build()
	if err != nil {
		return nil, err
	}
	return newTypedObjectSchema[T](os)
}

// MustBind is like Bind but panics on error (free function for Go version compatibility).
func MustBind[T any](b *objectBuilder) schema.Schema[T] {
	s, err := Bind[T](b)
	if err != nil {
		panic(err)
	}
	return s
}

// typedObjectSchema adapts an objectSchema to a typed struct T using key resolution.
type typedObjectSchema[T any] struct {
	inner      *objectSchema
	t          reflect.Type
	fieldByKey map[string][]int // DSL key -> struct field index path
}

func newTypedObjectSchema[T any](os *objectSchema) (schema.Schema[T], error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("dsl: Bind[%s] requires a struct type", rt)
	}
	idxByName := make(map[string][]int)
	for _, sf := range reflect.VisibleFields(rt) {
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		name := schema.ResolveStructKey(sf)
		if name == "-" || name == "" {
			continue
		}
		if _, dup := idxByName[name]; !dup {
			idxByName[name] = sf.Index
		}
	}
	fm := make(map[string][]int, len(os.fields))
	for k := range os.fields {
		idx, ok := idxByName[k]
		if !ok {
			return nil, fmt.Errorf("dsl: field %q has no matching field in %s", k, rt)
		}
		fm[k] = idx
	}
	return &typedObjectSchema[T]{inner: os, t: rt, fieldByKey: fm}, nil
}

// Parse maps wire -> map via inner, then into struct fields by mapping.
func (s *typedObjectSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	var zero T
	m, err := s.inner.Parse(ctx, v)
	if err != nil {
		return zero, err
	}
	rv := reflect.New(s.t).Elem()
	for _, key := range s.inner.sortedKeys {
		val, ok := m[key]
		if !ok || val == nil {
			continue
		}
		if err := assign(rv.FieldByIndex(s.fieldByKey[key]), reflect.ValueOf(val)); err != nil {
			return zero, schema.Issues{{Path: schema.Key(key), Code: schema.CodeInvalidType, Message: err.Error()}}
		}
	}
	return rv.Interface().(T), nil
}

func assign(fv, vv reflect.Value) error {
	switch {
	case vv.Type().AssignableTo(fv.Type()):
		fv.Set(vv)
	case vv.Type().ConvertibleTo(fv.Type()):
		fv.Set(vv.Convert(fv.Type()))
	case fv.Kind() == reflect.Pointer && vv.Type().ConvertibleTo(fv.Type().Elem()):
		p := reflect.New(fv.Type().Elem())
		p.Elem().Set(vv.Convert(fv.Type().Elem()))
		fv.Set(p)
	default:
		return fmt.Errorf("cannot bind %s to %s", vv.Type(), fv.Type())
	}
	return nil
}

func (s *typedObjectSchema[T]) ValidateValue(ctx context.Context, v T) error {
	rv := reflect.ValueOf(v)
	m := make(map[string]any, len(s.fieldByKey))
	for key, idx := range s.fieldByKey {
		fv := rv.FieldByIndex(idx)
		if fv.Kind() == reflect.Pointer && fv.IsNil() {
			continue
		}
		m[key] = fv.Interface()
	}
	return s.inner.ValidateValue(ctx, m)
}

func (s *typedObjectSchema[T]) JSONSchema() (*js.Schema, error) { return s.inner.JSONSchema() }
