package dsl_test

import (
	"context"
	"testing"

	g "github.com/reoring/trunkconf/dsl"
	"github.com/reoring/trunkconf/schema"
)

func TestObject_UnknownPassthrough_CapturesUndecoded(t *testing.T) {
	s := g.Object().
		Field("build", g.SchemaOf[map[string]any](g.MapAny())).
		Field("extras", g.SchemaOf[map[string]any](g.MapAny())).
		UnknownPassthrough("extras").
		MustBuild()

	out, err := s.Parse(context.Background(), map[string]any{
		"build":  map[string]any{"release": true},
		"dist":   "out",
		"extras": 42,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	extras := out["extras"].(map[string]any)
	if extras["dist"] != "out" {
		t.Fatalf("dist not captured: %v", extras)
	}
	if extras["extras"] != 42 {
		t.Fatalf("an input key named like the target must be captured, got %v", extras)
	}
	if _, ok := extras["build"]; ok {
		t.Fatalf("known field leaked into extras: %v", extras)
	}
}

func TestObject_UnknownPassthrough_TargetMustExist(t *testing.T) {
	if _, err := g.Object().Field("a", g.SchemaOf[map[string]any](g.MapAny())).UnknownPassthrough("missing").Build(); err == nil {
		t.Fatalf("expected build error for missing passthrough target")
	}
}

func TestObject_UnknownStrip(t *testing.T) {
	out, err := g.Object().Field("a", g.StringOf[string]()).UnknownStrip().MustBuild().
		Parse(context.Background(), map[string]any{"a": "x", "b": "y"})
	if err != nil || len(out) != 1 || out["a"] != "x" {
		t.Fatalf("unexpected strip result: %v %v", out, err)
	}
}

func TestObject_Alias(t *testing.T) {
	s := g.Object().
		Field("proxies", g.ArrayOf[string](g.String())).Alias("proxy").
		MustBuild()
	ctx := context.Background()

	a, err := s.Parse(ctx, map[string]any{"proxies": []any{"x"}})
	if err != nil {
		t.Fatalf("canonical: %v", err)
	}
	b, err := s.Parse(ctx, map[string]any{"proxy": []any{"x"}})
	if err != nil {
		t.Fatalf("alias: %v", err)
	}
	if len(a["proxies"].([]string)) != 1 || len(b["proxies"].([]string)) != 1 {
		t.Fatalf("alias must decode identically: %v vs %v", a, b)
	}

	_, err = s.Parse(ctx, map[string]any{"proxy": []any{}, "proxies": []any{}})
	iss, ok := schema.AsIssues(err)
	if !ok || iss[0].Code != schema.CodeDuplicateKey || iss[0].Path != "/proxy" {
		t.Fatalf("expected duplicate_key at /proxy, got %v", err)
	}
}

func TestObject_AliasCollidingWithField(t *testing.T) {
	_, err := g.Object().
		Field("a", g.StringOf[string]()).
		Field("b", g.StringOf[string]()).Alias("a").
		Build()
	if err == nil {
		t.Fatalf("expected alias collision error")
	}
}

func TestObject_UnknownStrict_HintListsFields(t *testing.T) {
	_, err := g.Object().
		Field("port", g.IntOf[int]()).
		Field("open", g.BoolOf[bool]()).
		MustBuild().
		Parse(context.Background(), map[string]any{"prot": 1})
	iss, ok := schema.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", err)
	}
	if iss[0].Hint != "expected one of: open, port" || iss[0].Field() != "prot" {
		t.Fatalf("unexpected issue %+v", iss[0])
	}
}
