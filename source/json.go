package source

import (
	"bytes"
	"errors"
	"io"

	json "github.com/goccy/go-json"

	"github.com/reoring/trunkconf/i18n"
	"github.com/reoring/trunkconf/internal/engine"
	"github.com/reoring/trunkconf/schema"
)

// parseJSON runs the duplicate-key scan first, since a map decode keeps only
// the last occurrence, then decodes with json.Number for numbers.
func parseJSON(data []byte) (map[string]any, error) {
	if iss := engine.ScanJSONDuplicates(data, engine.DefaultScanOptions); len(iss) > 0 {
		return nil, iss
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, schema.Issues{{Path: "/", Code: schema.CodeParseError, Message: i18n.T(schema.CodeParseError, nil), Hint: err.Error(), Cause: err}}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, schema.Issues{{Path: "/", Code: schema.CodeParseError, Message: i18n.T(schema.CodeParseError, nil), Hint: "unexpected content after the top-level value"}}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, schema.Issues{schema.TypeMismatch("object", v)}
	}
	return m, nil
}
