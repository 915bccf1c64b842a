package dsl

import (
	"context"

	js "github.com/reoring/trunkconf/jsonschema"
	"github.com/reoring/trunkconf/schema"
)

// Optional wraps a schema so that it produces *T: absent and null values
// decode to nil, present values to a pointer to the parsed value.
func Optional[T any](s schema.Schema[T]) schema.Schema[*T] { return optionalSchema[T]{inner: s} }

// OptionalOf adapts Optional[T] to AnyAdapter for use in object builders.
func OptionalOf[T any](s schema.Schema[T]) AnyAdapter {
	return anyAdapterFromSchema[*T](Optional[T](s))
}

type optionalSchema[T any] struct{ inner schema.Schema[T] }

func (o optionalSchema[T]) Parse(ctx context.Context, v any) (*T, error) {
	if v == nil {
		return nil, nil
	}
	if p, ok := v.(*T); ok {
		if p == nil {
			return nil, nil
		}
		v = *p
	}
	tv, err := o.inner.Parse(ctx, v)
	if err != nil {
		return nil, err
	}
	return &tv, nil
}

func (o optionalSchema[T]) ValidateValue(ctx context.Context, v *T) error {
	if v == nil {
		return nil
	}
	return o.inner.ValidateValue(ctx, *v)
}

func (o optionalSchema[T]) JSONSchema() (*js.Schema, error) { return o.inner.JSONSchema() }
