package dsl

import (
	"context"
	"encoding/json"
	"math"
	"net/netip"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/reoring/trunkconf/i18n"
	js "github.com/reoring/trunkconf/jsonschema"
	"github.com/reoring/trunkconf/schema"
)

// String returns the minimal string schema implementation.
func String() schema.Schema[string] { return stringSchema{} }

// Bool returns the minimal bool schema implementation.
func Bool() schema.Schema[bool] { return boolSchema{} }

type stringSchema struct{}

func (stringSchema) Parse(ctx context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", schema.Issues{schema.TypeMismatch("string", v)}
	}
	return s, nil
}

func (stringSchema) ValidateValue(ctx context.Context, v string) error { return nil }

func (stringSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "string"}, nil }

type boolSchema struct{}

func (boolSchema) Parse(ctx context.Context, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, schema.Issues{schema.TypeMismatch("boolean", v)}
	}
	return b, nil
}

func (boolSchema) ValidateValue(ctx context.Context, v bool) error { return nil }

func (boolSchema) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "boolean"}, nil }

// stringAsSchema projects the string schema to a domain type with underlying string.
type stringAsSchema[T ~string] struct{}

func (stringAsSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	s, err := (stringSchema{}).Parse(ctx, v)
	return T(s), err
}
func (stringAsSchema[T]) ValidateValue(ctx context.Context, v T) error { return nil }
func (stringAsSchema[T]) JSONSchema() (*js.Schema, error)            { return (stringSchema{}).JSONSchema() }

// StringOf returns an AnyAdapter for a string wire schema projected to domain type T.
func StringOf[T ~string]() AnyAdapter {
	ad := anyAdapterFromSchema[T](stringAsSchema[T]{})
	ad.orig = stringSchema{}
	return ad
}

type boolAsSchema[T ~bool] struct{}

func (boolAsSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	b, err := (boolSchema{}).Parse(ctx, v)
	return T(b), err
}
func (boolAsSchema[T]) ValidateValue(ctx context.Context, v T) error { return nil }
func (boolAsSchema[T]) JSONSchema() (*js.Schema, error)            { return (boolSchema{}).JSONSchema() }

// BoolOf returns an AnyAdapter for a bool wire schema projected to domain type T.
func BoolOf[T ~bool]() AnyAdapter {
	ad := anyAdapterFromSchema[T](boolAsSchema[T]{})
	ad.orig = boolSchema{}
	return ad
}

// ---------------- Integer[T] ----------------

// Integral is the set of integer types Integer can project to.
type Integral interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer returns a schema accepting integral numbers within the range of T.
// TOML and YAML sources produce int64, JSON sources json.Number; whole float64
// values are accepted as well.
func Integer[T Integral]() schema.Schema[T] {
	s := integerSchema[T]{}
	s.lo, s.hi = integerBounds(reflect.TypeOf((*T)(nil)).Elem())
	return s
}

// IntOf adapts Integer[T] to AnyAdapter.
func IntOf[T Integral]() AnyAdapter { return anyAdapterFromSchema[T](Integer[T]()) }

type integerSchema[T Integral] struct{ lo, hi float64 }

func integerBounds(t reflect.Type) (float64, float64) {
	bits := t.Bits()
	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return 0, math.Ldexp(1, bits) - 1
	default:
		return -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1) - 1
	}
}

func (s integerSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	var f float64
	switch n := v.(type) {
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		pf, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0, schema.Issues{schema.TypeMismatch("integer", v)}
		}
		f = pf
	default:
		return 0, schema.Issues{schema.TypeMismatch("integer", v)}
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, schema.Issues{schema.TypeMismatch("integer", v)}
	}
	if f < s.lo {
		return 0, schema.Issues{{Path: "/", Code: schema.CodeTooSmall, Message: i18n.T(schema.CodeTooSmall, nil), Params: map[string]any{"min": s.lo, "got": f}}}
	}
	if f > s.hi {
		return 0, schema.Issues{{Path: "/", Code: schema.CodeTooBig, Message: i18n.T(schema.CodeTooBig, nil), Params: map[string]any{"max": s.hi, "got": f}}}
	}
	return T(f), nil
}

func (s integerSchema[T]) ValidateValue(ctx context.Context, v T) error { return nil }

func (s integerSchema[T]) JSONSchema() (*js.Schema, error) {
	lo, hi := s.lo, s.hi
	return &js.Schema{Type: "integer", Minimum: &lo, Maximum: &hi}, nil
}

// ---------------- Enum[T] ----------------

// Enum returns a string schema restricted to the given variants.
func Enum[T ~string](variants ...T) schema.Schema[T] {
	return enumSchema[T]{variants: variants}
}

// EnumOf adapts Enum[T] to AnyAdapter.
func EnumOf[T ~string](variants ...T) AnyAdapter {
	return anyAdapterFromSchema[T](Enum[T](variants...))
}

type enumSchema[T ~string] struct{ variants []T }

func (e enumSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	s, ok := v.(string)
	if !ok {
		return "", schema.Issues{schema.TypeMismatch("string", v)}
	}
	if err := e.ValidateValue(ctx, T(s)); err != nil {
		return "", err
	}
	return T(s), nil
}

func (e enumSchema[T]) ValidateValue(ctx context.Context, v T) error {
	for _, want := range e.variants {
		if v == want {
			return nil
		}
	}
	names := make([]string, len(e.variants))
	for i, want := range e.variants {
		names[i] = string(want)
	}
	sort.Strings(names)
	return schema.Issues{{
		Path:    "/",
		Code:    schema.CodeInvalidEnum,
		Message: i18n.T(schema.CodeInvalidEnum, nil),
		Hint:    "expected one of: " + strings.Join(names, ", "),
		Params:  map[string]any{"got": string(v), "allowed": names},
	}}
}

func (e enumSchema[T]) JSONSchema() (*js.Schema, error) {
	vals := make([]any, len(e.variants))
	for i, v := range e.variants {
		vals[i] = string(v)
	}
	return &js.Schema{Type: "string", Enum: vals}, nil
}

// ---------------- formatted strings ----------------

// URL returns a string schema that requires an absolute URL (scheme and host).
func URL() schema.Schema[string] {
	return formatSchema{format: "uri", check: func(s string) bool {
		u, err := url.Parse(s)
		return err == nil && u.Scheme != "" && u.Host != ""
	}}
}

// IP returns a string schema that requires an IPv4 or IPv6 literal.
func IP() schema.Schema[string] {
	return formatSchema{format: "ip", check: func(s string) bool {
		_, err := netip.ParseAddr(s)
		return err == nil
	}}
}

type formatSchema struct {
	format string
	check  func(string) bool
}

func (f formatSchema) Parse(ctx context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", schema.Issues{schema.TypeMismatch("string", v)}
	}
	if err := f.ValidateValue(ctx, s); err != nil {
		return "", err
	}
	return s, nil
}

func (f formatSchema) ValidateValue(ctx context.Context, v string) error {
	if f.check(v) {
		return nil
	}
	return schema.Issues{{
		Path:    "/",
		Code:    schema.CodeInvalidFormat,
		Message: i18n.T(schema.CodeInvalidFormat, nil),
		Hint:    "expected " + f.format,
		Params:  map[string]any{"format": f.format, "got": v},
	}}
}

func (f formatSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "string", Format: f.format}, nil
}
