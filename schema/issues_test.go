package schema_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/reoring/trunkconf/schema"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := schema.Issues{
		{Path: "/a", Code: schema.CodeRequired},
		{Path: "/b", Code: schema.CodeUnknownKey, Message: "unknown field 'b'", Hint: "expected one of: a"},
		{Path: "", Code: schema.CodeInvalidType},
		{Path: "/d", Code: schema.CodeTooBig},
	}
	msg := iss.Error()
	if !strings.Contains(msg, "unknown_key at /b: unknown field 'b' (expected one of: a)") {
		t.Fatalf("unexpected summary: %s", msg)
	}
	if !strings.Contains(msg, "invalid_type at /") || !strings.HasSuffix(msg, "(total 4)") {
		t.Fatalf("expected root path and truncation: %s", msg)
	}
}

func TestIssue_Field(t *testing.T) {
	cases := map[string]string{
		"/serve/port":  "port",
		"/proxies/0":   "0",
		"/a~1b":        "a/b",
		"/tilde~0name": "tilde~name",
		"/":            "",
	}
	for path, want := range cases {
		if got := (schema.Issue{Path: path}).Field(); got != want {
			t.Fatalf("Field(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestRebase(t *testing.T) {
	got := schema.Rebase(schema.Key("serve"), schema.Issues{{Path: "/"}, {Path: "/port"}, {Path: "headers/x"}})
	want := []string{"/serve", "/serve/port", "/serve/headers/x"}
	for i, w := range want {
		if got[i].Path != w {
			t.Fatalf("issue %d path = %q, want %q", i, got[i].Path, w)
		}
	}
}

type positioned struct{ line int }

func (p *positioned) Error() string { return fmt.Sprintf("at line %d", p.line) }

func TestAsIssues_ThroughWrapping(t *testing.T) {
	cause := &positioned{line: 3}
	err := fmt.Errorf("Trunk.yaml: %w", schema.Issues{{Path: "/dist", Code: schema.CodeDuplicateKey, Cause: cause}})

	iss, ok := schema.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != schema.CodeDuplicateKey {
		t.Fatalf("AsIssues failed: %v", err)
	}
	var pe *positioned
	if !errors.As(err, &pe) || pe.line != 3 {
		t.Fatalf("issue cause not reachable through errors.As")
	}
	if _, ok := schema.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain error must not convert")
	}
}

func TestFromError(t *testing.T) {
	iss := schema.FromError("/x", errors.New("boom"))
	if len(iss) != 1 || iss[0].Code != schema.CodeParseError || iss[0].Path != "/x" {
		t.Fatalf("unexpected conversion: %v", iss)
	}
	if schema.FromError("/x", nil) != nil {
		t.Fatalf("nil error must convert to nil")
	}
}

func TestTypeMismatch(t *testing.T) {
	it := schema.TypeMismatch("string", 1.5)
	if it.Code != schema.CodeInvalidType || it.Params["found"] != "number" || it.Params["expected"] != "string" {
		t.Fatalf("unexpected issue: %+v", it)
	}
	if schema.KindOf(map[string]any{}) != "object" || schema.KindOf(nil) != "null" || schema.KindOf(int64(1)) != "integer" {
		t.Fatalf("unexpected kinds")
	}
}
