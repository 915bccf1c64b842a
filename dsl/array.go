package dsl

import (
	"context"

	"github.com/reoring/trunkconf/i18n"
	js "github.com/reoring/trunkconf/jsonschema"
	"github.com/reoring/trunkconf/schema"
)

// ArrayBuilder exposes chaining methods for array schemas while implementing Schema[[]E].
type ArrayBuilder[E any] interface {
	schema.Schema[[]E]
	Min(n int) ArrayBuilder[E]
	Max(n int) ArrayBuilder[E]
}

// Array returns an array schema with the given element schema.
func Array[E any](elem schema.Schema[E]) ArrayBuilder[E] {
	return &ArraySchema[E]{elem: elem, minLen: -1, maxLen: -1}
}

type ArraySchema[E any] struct {
	elem   schema.Schema[E]
	minLen int
	maxLen int
}

// ArrayOf adapts Array[E] to AnyAdapter for use in typed object builders.
// Example: Field("features", dsl.ArrayOf[string](dsl.String()))
func ArrayOf[E any](elem schema.Schema[E]) AnyAdapter {
	return anyAdapterFromSchema[[]E](Array[E](elem))
}

// ArrayOfSchema converts a constrained ArrayBuilder[E] into an AnyAdapter.
func ArrayOfSchema[E any](ab ArrayBuilder[E]) AnyAdapter { return anyAdapterFromSchema[[]E](ab) }

// Min sets the minimum length.
func (a *ArraySchema[E]) Min(n int) ArrayBuilder[E] { a.minLen = n; return a }

// Max sets the maximum length.
func (a *ArraySchema[E]) Max(n int) ArrayBuilder[E] { a.maxLen = n; return a }

func (a *ArraySchema[E]) Parse(ctx context.Context, v any) ([]E, error) {
	switch src := v.(type) {
	case []E:
		if err := a.ValidateValue(ctx, src); err != nil {
			return nil, err
		}
		return src, nil
	case []any:
		res := make([]E, 0, len(src))
		var iss schema.Issues
		for i := range src {
			ev, err := a.elem.Parse(ctx, src[i])
			if err != nil {
				iss = schema.AppendIssues(iss, schema.Rebase(schema.Index(i), schema.FromError("/", err))...)
				continue
			}
			res = append(res, ev)
		}
		if len(iss) > 0 {
			return nil, iss
		}
		if err := a.checkLen(len(res)); err != nil {
			return nil, err
		}
		return res, nil
	default:
		return nil, schema.Issues{schema.TypeMismatch("array", v)}
	}
}

func (a *ArraySchema[E]) checkLen(n int) error {
	if a.minLen >= 0 && n < a.minLen {
		return schema.Issues{{Path: "/", Code: schema.CodeTooSmall, Message: i18n.T(schema.CodeTooSmall, nil), Hint: "array is shorter than min"}}
	}
	if a.maxLen >= 0 && n > a.maxLen {
		return schema.Issues{{Path: "/", Code: schema.CodeTooBig, Message: i18n.T(schema.CodeTooBig, nil), Hint: "array is longer than max"}}
	}
	return nil
}

func (a *ArraySchema[E]) ValidateValue(ctx context.Context, v []E) error {
	if err := a.checkLen(len(v)); err != nil {
		return err
	}
	for i := range v {
		if err := a.elem.ValidateValue(ctx, v[i]); err != nil {
			return schema.Rebase(schema.Index(i), schema.FromError("/", err))
		}
	}
	return nil
}

func (a *ArraySchema[E]) JSONSchema() (*js.Schema, error) {
	es, err := a.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	s := &js.Schema{Type: "array", Items: es}
	if a.minLen >= 0 {
		n := a.minLen
		s.MinItems = &n
	}
	if a.maxLen >= 0 {
		n := a.maxLen
		s.MaxItems = &n
	}
	return s, nil
}
