package dsl_test

import (
	"context"
	"encoding/json"
	"testing"

	g "github.com/reoring/trunkconf/dsl"
	"github.com/reoring/trunkconf/schema"
)

func firstIssue(t *testing.T, err error) schema.Issue {
	t.Helper()
	iss, ok := schema.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected issues, got %v", err)
	}
	return iss[0]
}

func TestPrimitives_StringBool(t *testing.T) {
	ctx := context.Background()
	if v, err := g.String().Parse(ctx, "hello"); err != nil || v != "hello" {
		t.Fatalf("string parse ok expected, got v=%v err=%v", v, err)
	}
	it := firstIssue(t, func() error { _, err := g.String().Parse(ctx, int64(1)); return err }())
	if it.Code != schema.CodeInvalidType || it.Params["found"] != "integer" {
		t.Fatalf("unexpected issue %+v", it)
	}
	if v, err := g.Bool().Parse(ctx, true); err != nil || !v {
		t.Fatalf("bool parse ok expected, got v=%v err=%v", v, err)
	}
	if _, err := g.Bool().Parse(ctx, "yes"); err == nil {
		t.Fatalf("expected invalid_type for non-bool")
	}
}

func TestPrimitives_Integer(t *testing.T) {
	ctx := context.Background()
	port := g.Integer[uint16]()

	cases := []struct {
		name string
		in   any
		want uint16
		code string
	}{
		{name: "int64 from toml", in: int64(8080), want: 8080},
		{name: "json number", in: json.Number("443"), want: 443},
		{name: "whole float", in: float64(80), want: 80},
		{name: "fraction", in: 1.5, code: schema.CodeInvalidType},
		{name: "negative", in: int64(-1), code: schema.CodeTooSmall},
		{name: "overflow", in: int64(70000), code: schema.CodeTooBig},
		{name: "string", in: "80", code: schema.CodeInvalidType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := port.Parse(ctx, tc.in)
			if tc.code == "" {
				if err != nil || got != tc.want {
					t.Fatalf("got %v err=%v, want %v", got, err, tc.want)
				}
				return
			}
			if it := firstIssue(t, err); it.Code != tc.code {
				t.Fatalf("got code %s, want %s", it.Code, tc.code)
			}
		})
	}
}

type stage string

func TestPrimitives_Enum(t *testing.T) {
	e := g.Enum[stage]("pre_build", "build", "post_build")
	ctx := context.Background()
	if v, err := e.Parse(ctx, "build"); err != nil || v != "build" {
		t.Fatalf("enum parse: %v %v", v, err)
	}
	it := firstIssue(t, func() error { _, err := e.Parse(ctx, "deploy"); return err }())
	if it.Code != schema.CodeInvalidEnum || it.Hint != "expected one of: build, post_build, pre_build" {
		t.Fatalf("unexpected issue %+v", it)
	}
}

func TestPrimitives_Formats(t *testing.T) {
	ctx := context.Background()
	if _, err := g.URL().Parse(ctx, "http://localhost:8000/api"); err != nil {
		t.Fatalf("url: %v", err)
	}
	if it := firstIssue(t, func() error { _, err := g.URL().Parse(ctx, "/api"); return err }()); it.Code != schema.CodeInvalidFormat {
		t.Fatalf("expected invalid_format, got %+v", it)
	}
	for _, ip := range []string{"127.0.0.1", "::1"} {
		if _, err := g.IP().Parse(ctx, ip); err != nil {
			t.Fatalf("ip %s: %v", ip, err)
		}
	}
	if _, err := g.IP().Parse(ctx, "localhost"); err == nil {
		t.Fatalf("expected invalid_format for hostname")
	}
}

func TestPrimitives_Optional(t *testing.T) {
	ctx := context.Background()
	o := g.Optional[string](g.String())
	if v, err := o.Parse(ctx, nil); err != nil || v != nil {
		t.Fatalf("nil should decode to nil pointer: %v %v", v, err)
	}
	v, err := o.Parse(ctx, "dist")
	if err != nil || v == nil || *v != "dist" {
		t.Fatalf("unexpected optional parse: %v %v", v, err)
	}
}
