package dsl

import (
	"context"
	"fmt"
	"sort"

	"github.com/reoring/trunkconf/schema"
)

type objectBuilder struct {
	fields        map[string]AnyAdapter
	required      map[string]struct{}
	aliases       map[string]string
	unknownPolicy schema.UnknownPolicy
	unknownTarget string
	description   string
}

type fieldStep struct {
	b    *objectBuilder
	name string
}

// Object creates a new object builder with safe defaults (UnknownStrict).
func Object() *objectBuilder {
	return &objectBuilder{
		fields:        map[string]AnyAdapter{},
		required:      map[string]struct{}{},
		aliases:       map[string]string{},
		unknownPolicy: schema.UnknownStrict,
	}
}

// Field registers a field with its adapter.
func (b *objectBuilder) Field(name string, ad AnyAdapter) *fieldStep {
	b.fields[name] = ad
	return &fieldStep{b: b, name: name}
}

// Required marks the field as required.
func (f *fieldStep) Required() *fieldStep {
	f.b.required[f.name] = struct{}{}
	return f
}

// Optional marks the field as optional (default).
func (f *fieldStep) Optional() *fieldStep {
	delete(f.b.required, f.name)
	return f
}

// Default sets a default for the current field and exports it to JSON Schema.
// The default is parsed through the field schema when applied.
func (f *fieldStep) Default(v any) *fieldStep {
	f.b.fields[f.name] = f.b.fields[f.name].withDefault(v)
	return f
}

// Alias registers alternative input keys for the current field.
func (f *fieldStep) Alias(names ...string) *fieldStep {
	for _, n := range names {
		f.b.aliases[n] = f.name
	}
	return f
}

// Forward helpers to keep chaining ergonomics.
func (f *fieldStep) Field(name string, ad AnyAdapter) *fieldStep     { return f.b.Field(name, ad) }
func (f *fieldStep) Describe(desc string) *objectBuilder             { return f.b.Describe(desc) }
func (f *fieldStep) UnknownStrict() *objectBuilder                   { return f.b.UnknownStrict() }
func (f *fieldStep) UnknownStrip() *objectBuilder                    { return f.b.UnknownStrip() }
func (f *fieldStep) UnknownPassthrough(target string) *objectBuilder { return f.b.UnknownPassthrough(target) }
func (f *fieldStep) Build() (schema.Schema[map[string]any], error)   { return f.b.Build() }
func (f *fieldStep) MustBuild() schema.Schema[map[string]any]        { return f.b.MustBuild() }

// Describe sets the object description exported to JSON Schema.
func (b *objectBuilder) Describe(desc string) *objectBuilder {
	b.description = desc
	return b
}

// UnknownStrict sets unknown policy to Strict.
func (b *objectBuilder) UnknownStrict() *objectBuilder {
	b.unknownPolicy = schema.UnknownStrict
	b.unknownTarget = ""
	return b
}

// UnknownStrip sets unknown policy to Strip.
func (b *objectBuilder) UnknownStrip() *objectBuilder {
	b.unknownPolicy = schema.UnknownStrip
	b.unknownTarget = ""
	return b
}

// UnknownPassthrough captures unknown keys, undecoded, into the target field.
// The target must be registered with a map adapter (MapAny).
func (b *objectBuilder) UnknownPassthrough(target string) *objectBuilder {
	b.unknownPolicy = schema.UnknownPassthrough
	b.unknownTarget = target
	return b
}

// Build validates the builder and returns a Schema.
func (b *objectBuilder) Build() (schema.Schema[map[string]any], error) {
	return b.build()
}

func (b *objectBuilder) build() (*objectSchema, error) {
	if b.unknownPolicy == schema.UnknownPassthrough {
		ad, ok := b.fields[b.unknownTarget]
		if !ok || b.unknownTarget == "" {
			return nil, fmt.Errorf("dsl: passthrough target %q is not a registered field", b.unknownTarget)
		}
		if err := ad.ValidateValue(context.Background(), map[string]any{}); err != nil {
			return nil, fmt.Errorf("dsl: passthrough target %q must accept map[string]any: %w", b.unknownTarget, err)
		}
	}
	for alias, canon := range b.aliases {
		if _, clash := b.fields[alias]; clash {
			return nil, fmt.Errorf("dsl: alias %q of %q collides with a field", alias, canon)
		}
	}
	kfs := make([]string, 0, len(b.fields))
	for k := range b.fields {
		kfs = append(kfs, k)
	}
	sort.Strings(kfs)
	return &objectSchema{
		fields:        b.fields,
		sortedKeys:    kfs,
		required:      b.required,
		aliases:       b.aliases,
		unknownPolicy: b.unknownPolicy,
		unknownTarget: b.unknownTarget,
		description:   b.description,
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *objectBuilder) MustBuild() schema.Schema[map[string]any] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
