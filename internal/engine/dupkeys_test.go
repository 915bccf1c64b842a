package engine_test

import (
	"testing"

	"github.com/reoring/trunkconf/internal/engine"
	"github.com/reoring/trunkconf/schema"
)

func TestScanJSONDuplicates(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		paths []string
	}{
		{name: "clean", in: `{"serve":{"port":8080},"dist":"out"}`},
		{name: "root", in: `{"dist":"a","dist":"b"}`, paths: []string{"/dist"}},
		{name: "nested", in: `{"serve":{"port":1,"open":true,"port":2}}`, paths: []string{"/serve/port"}},
		{name: "inside array", in: `{"proxies":[{"backend":"x"},{"backend":"y","ws":true,"ws":false}]}`, paths: []string{"/proxies/1/ws"}},
		{name: "after nested array", in: `{"a":[1,[2,3]],"b":{"c":1},"a":0}`, paths: []string{"/a"}},
		{name: "escaped key", in: `{"x/y":1,"x/y":2}`, paths: []string{"/x~1y"}},
		{name: "same key different objects", in: `{"build":{"release":true},"serve":{"release":true}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			iss := engine.ScanJSONDuplicates([]byte(tc.in), engine.DefaultScanOptions)
			if len(iss) != len(tc.paths) {
				t.Fatalf("got %d issues (%v), want %d", len(iss), iss, len(tc.paths))
			}
			for i, p := range tc.paths {
				if iss[i].Code != schema.CodeDuplicateKey || iss[i].Path != p {
					t.Fatalf("issue %d = %s %s, want duplicate_key at %s", i, iss[i].Code, iss[i].Path, p)
				}
			}
		})
	}
}

func TestScanJSONDuplicates_Truncated(t *testing.T) {
	iss := engine.ScanJSONDuplicates([]byte(`{"a":1,"a":2,"a":3,"a":4}`), engine.ScanOptions{MaxIssues: 2})
	if len(iss) != 3 || iss[2].Code != schema.CodeTruncated {
		t.Fatalf("expected 2 duplicates plus truncated, got %v", iss)
	}
}

func TestScanJSONDuplicates_SyntaxAndDepth(t *testing.T) {
	iss := engine.ScanJSONDuplicates([]byte(`{"a":`), engine.DefaultScanOptions)
	if len(iss) != 1 || iss[0].Code != schema.CodeParseError {
		t.Fatalf("expected parse_error, got %v", iss)
	}
	iss = engine.ScanJSONDuplicates([]byte(`[[[[1]]]]`), engine.ScanOptions{MaxIssues: -1, MaxDepth: 3})
	if len(iss) != 1 || iss[0].Code != schema.CodeParseError {
		t.Fatalf("expected depth parse_error, got %v", iss)
	}
}
