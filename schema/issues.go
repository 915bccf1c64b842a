// Package schema holds the contract shared by the DSL, the source parsers and
// the configuration pipeline: the Schema interface, the unknown-key policy and
// the Issue error model.
//
// Every validation failure is reported as an Issue carrying a JSON Pointer to
// the offending value and a stable code. Issues collect into Issues, which
// implements error, so callers can either print the summary or recover the
// individual entries with AsIssues.
package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeUnknownKey    = "unknown_key"
	CodeDuplicateKey  = "duplicate_key"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
	CodeParseError    = "parse_error"
	CodeTruncated     = "truncated"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /serve/port).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected shapes, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"expected":"string", "found":"integer"}).
	Params map[string]any
}

// Field returns the last segment of the issue path, which is the key the
// issue is about. It returns "" for root issues.
func (it Issue) Field() string {
	p := strings.TrimSuffix(it.Path, "/")
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return unescapePointer(p[i+1:])
	}
	return unescapePointer(p)
}

func (it Issue) String() string {
	path := it.Path
	if path == "" {
		path = "/"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s at %s", it.Code, path)
	if it.Message != "" && it.Message != it.Code {
		b.WriteString(": ")
		b.WriteString(it.Message)
	}
	if it.Hint != "" {
		b.WriteString(" (")
		b.WriteString(it.Hint)
		b.WriteString(")")
	}
	return b.String()
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].String())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the underlying causes to errors.Is and errors.As.
func (iss Issues) Unwrap() []error {
	var errs []error
	for _, it := range iss {
		if it.Cause != nil {
			errs = append(errs, it.Cause)
		}
	}
	return errs
}

// HasCode reports whether any issue carries the given code.
func (iss Issues) HasCode(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// FromError converts err into Issues, wrapping anything that is not already
// Issues as a parse_error at path.
func FromError(path string, err error) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	return Issues{{Path: path, Code: CodeParseError, Message: err.Error(), Cause: err}}
}
