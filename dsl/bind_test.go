package dsl_test

import (
	"context"
	"testing"

	g "github.com/reoring/trunkconf/dsl"
	"github.com/reoring/trunkconf/schema"
)

type endpoint struct {
	Host    string            `json:"host"`
	Port    uint16            `json:"port"`
	Alias   string            `schema:"name=nickname"`
	Note    *string           `json:"note,omitempty"`
	Tags    []string          `json:"tags"`
	Headers map[string]string `json:"headers"`
}

func endpointSchema() schema.Schema[endpoint] {
	return g.ObjectOf[endpoint]().
		Field("host", g.StringOf[string]()).Required().
		Field("port", g.IntOf[uint16]()).Default(8080).
		Field("nickname", g.StringOf[string]()).
		Field("note", g.OptionalOf[string](g.String())).
		Field("tags", g.ArrayOf[string](g.String())).Default([]any{}).
		Field("headers", g.MapOf[string](g.String())).
		MustBind()
}

func TestBind_KeyResolutionAndDefaults(t *testing.T) {
	ctx := context.Background()
	v, err := endpointSchema().Parse(ctx, map[string]any{"host": "localhost", "nickname": "dev", "note": "hi"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if v.Host != "localhost" || v.Alias != "dev" || v.Port != 8080 {
		t.Fatalf("unexpected value: %+v", v)
	}
	if v.Note == nil || *v.Note != "hi" {
		t.Fatalf("optional field not bound: %+v", v.Note)
	}
	if v.Tags == nil || len(v.Tags) != 0 {
		t.Fatalf("expected empty default tags, got %#v", v.Tags)
	}
	if v.Headers != nil {
		t.Fatalf("absent map without default should stay nil, got %#v", v.Headers)
	}
}

func TestBind_OptionalAbsentIsNil(t *testing.T) {
	v, err := endpointSchema().Parse(context.Background(), map[string]any{"host": "h"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if v.Note != nil {
		t.Fatalf("expected nil note, got %q", *v.Note)
	}
}

func TestBind_RequiredAndUnknown(t *testing.T) {
	_, err := endpointSchema().Parse(context.Background(), map[string]any{"port": int64(1), "bogus": true})
	iss, ok := schema.AsIssues(err)
	if !ok {
		t.Fatalf("expected issues, got %v", err)
	}
	if !iss.HasCode(schema.CodeRequired) || !iss.HasCode(schema.CodeUnknownKey) {
		t.Fatalf("expected required and unknown_key, got %v", iss)
	}
	for _, it := range iss {
		if it.Code == schema.CodeUnknownKey && it.Path != "/bogus" {
			t.Fatalf("unknown key reported at %q", it.Path)
		}
	}
}

func TestBind_MissingStructField(t *testing.T) {
	_, err := g.ObjectOf[endpoint]().
		Field("host", g.StringOf[string]()).
		Field("nope", g.StringOf[string]()).
		Bind()
	if err == nil {
		t.Fatalf("expected bind error for a DSL field without struct field")
	}
}

func TestBind_ValidateValue(t *testing.T) {
	s := g.ObjectOf[struct {
		Backend string `json:"backend"`
	}]().
		Field("backend", g.SchemaOf[string](g.URL())).Required().
		MustBind()
	ctx := context.Background()
	if err := s.ValidateValue(ctx, struct {
		Backend string `json:"backend"`
	}{Backend: "http://localhost:9000"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := s.ValidateValue(ctx, struct {
		Backend string `json:"backend"`
	}{Backend: "not a url"})
	iss, _ := schema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != schema.CodeInvalidFormat || iss[0].Path != "/backend" {
		t.Fatalf("expected invalid_format at /backend, got %v", err)
	}
}
