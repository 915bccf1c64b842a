package dsl

import (
	"github.com/reoring/trunkconf/schema"
)

// ObjectOf returns a typed object builder that supports fluent Bind()/MustBind().
// This achieves chain-style API without method type parameters by parameterizing the builder type itself.
func ObjectOf[T any]() *objectBuilderT[T] { return &objectBuilderT[T]{inner: Object()} }

type objectBuilderT[T any] struct{ inner *objectBuilder }

// fieldStepT is a typed variant of fieldStep that enables
// chain-friendly APIs like Field(...).Required().
type fieldStepT[T any] struct {
	tb   *objectBuilderT[T]
	name string
}

// Field registers a field and returns a typed field step for chaining.
func (tb *objectBuilderT[T]) Field(name string, ad AnyAdapter) *fieldStepT[T] {
	tb.inner.Field(name, ad)
	return &fieldStepT[T]{tb: tb, name: name}
}
func (tb *objectBuilderT[T]) UnknownStrict() *objectBuilderT[T] { tb.inner.UnknownStrict(); return tb }
func (tb *objectBuilderT[T]) UnknownStrip() *objectBuilderT[T]  { tb.inner.UnknownStrip(); return tb }
func (tb *objectBuilderT[T]) UnknownPassthrough(target string) *objectBuilderT[T] {
	tb.inner.UnknownPassthrough(target)
	return tb
}
func (tb *objectBuilderT[T]) Describe(desc string) *objectBuilderT[T] {
	tb.inner.Describe(desc)
	return tb
}

// Bind builds and binds to T.
func (tb *objectBuilderT[T]) Bind() (schema.Schema[T], error) { return Bind[T](tb.inner) }

// MustBind builds and binds to T, panicking on error.
func (tb *objectBuilderT[T]) MustBind() schema.Schema[T] { return MustBind[T](tb.inner) }

// Required marks the current field as required.
func (f *fieldStepT[T]) Required() *fieldStepT[T] {
	(&fieldStep{b: f.tb.inner, name: f.name}).Required()
	return f
}

// Optional marks the current field as optional.
func (f *fieldStepT[T]) Optional() *fieldStepT[T] {
	(&fieldStep{b: f.tb.inner, name: f.name}).Optional()
	return f
}

// Default sets a default for the current field and exports it to JSON Schema.
func (f *fieldStepT[T]) Default(v any) *fieldStepT[T] {
	(&fieldStep{b: f.tb.inner, name: f.name}).Default(v)
	return f
}

// Alias registers alternative input keys for the current field.
func (f *fieldStepT[T]) Alias(names ...string) *fieldStepT[T] {
	(&fieldStep{b: f.tb.inner, name: f.name}).Alias(names...)
	return f
}

// Forward helpers to keep chaining ergonomics.
func (f *fieldStepT[T]) Field(name string, ad AnyAdapter) *fieldStepT[T] { return f.tb.Field(name, ad) }
func (f *fieldStepT[T]) Describe(desc string) *objectBuilderT[T]      { return f.tb.Describe(desc) }
func (f *fieldStepT[T]) UnknownStrict() *objectBuilderT[T]              { return f.tb.UnknownStrict() }
func (f *fieldStepT[T]) UnknownStrip() *objectBuilderT[T]               { return f.tb.UnknownStrip() }
func (f *fieldStepT[T]) Bind() (schema.Schema[T], error)                { return f.tb.Bind() }
func (f *fieldStepT[T]) MustBind() schema.Schema[T]                     { return f.tb.MustBind() }
