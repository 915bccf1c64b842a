// Package engine holds token-level helpers shared by the source parsers.
package engine

import (
	"bytes"
	"errors"
	"io"

	json "github.com/goccy/go-json"

	"github.com/reoring/trunkconf/i18n"
	"github.com/reoring/trunkconf/schema"
)

// ScanOptions bounds a duplicate-key scan.
type ScanOptions struct {
	// MaxIssues < 0 means unlimited, 0 disables reporting, >0 caps the result
	// and appends a "truncated" issue.
	MaxIssues int
	// MaxDepth > 0 rejects documents nested deeper than the limit.
	MaxDepth int
}

// DefaultScanOptions reports every duplicate and allows 512 levels of nesting.
var DefaultScanOptions = ScanOptions{MaxIssues: -1, MaxDepth: 512}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type dupFrame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	key          string
	nextIndex    int
}

// valueDone advances the frame past one complete member value.
func (f *dupFrame) valueDone() {
	switch f.kind {
	case kindObject:
		f.expectingKey = true
	case kindArray:
		f.nextIndex++
	}
}

func pointer(stack []dupFrame) string {
	var b bytes.Buffer
	for i := range stack {
		switch stack[i].kind {
		case kindObject:
			b.WriteString(schema.Key(stack[i].key))
		case kindArray:
			b.WriteString(schema.Index(stack[i].nextIndex))
		}
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

// ScanJSONDuplicates walks the JSON token stream of data and returns a
// duplicate_key issue for every repeated object key, located by JSON Pointer.
// Syntax errors come back as a single parse_error issue.
func ScanJSONDuplicates(data []byte, opt ScanOptions) schema.Issues {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var iss schema.Issues
	truncated := false
	appendIssue := func(it schema.Issue) {
		if opt.MaxIssues == 0 || truncated {
			return
		}
		iss = append(iss, it)
		if opt.MaxIssues > 0 && len(iss) >= opt.MaxIssues {
			iss = append(iss, schema.Issue{Path: "/", Code: schema.CodeTruncated, Message: i18n.T(schema.CodeTruncated, nil)})
			truncated = true
		}
	}

	var stack []dupFrame
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			if len(stack) > 0 {
				return schema.Issues{{Path: pointer(stack), Code: schema.CodeParseError, Message: i18n.T(schema.CodeParseError, nil), Cause: io.ErrUnexpectedEOF}}
			}
			break
		}
		if err != nil {
			return schema.Issues{{Path: pointer(stack), Code: schema.CodeParseError, Message: i18n.T(schema.CodeParseError, nil), Cause: err}}
		}

		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{', '[':
				if opt.MaxDepth > 0 && len(stack) >= opt.MaxDepth {
					return schema.Issues{{Path: pointer(stack), Code: schema.CodeParseError, Message: "max depth exceeded"}}
				}
				fr := dupFrame{kind: kindArray}
				if v == '{' {
					fr = dupFrame{kind: kindObject, keys: map[string]struct{}{}, expectingKey: true}
				}
				stack = append(stack, fr)
			case '}', ']':
				if n := len(stack); n > 0 {
					stack = stack[:n-1]
				}
				if n := len(stack); n > 0 {
					stack[n-1].valueDone()
				}
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].kind == kindObject && stack[n-1].expectingKey {
				top := &stack[n-1]
				top.key = v
				top.expectingKey = false
				if _, seen := top.keys[v]; seen {
					appendIssue(schema.Issue{
						Path:    pointer(stack),
						Code:    schema.CodeDuplicateKey,
						Message: i18n.T(schema.CodeDuplicateKey, map[string]string{"key": v}),
						Params:  map[string]any{"field": v},
					})
				}
				top.keys[v] = struct{}{}
				continue
			}
			if n := len(stack); n > 0 {
				stack[n-1].valueDone()
			}
		default:
			if n := len(stack); n > 0 {
				stack[n-1].valueDone()
			}
		}
	}
	return iss
}
