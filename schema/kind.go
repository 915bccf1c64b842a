package schema

import (
	"encoding/json"
	"math"
	"time"
)

// KindOf names the JSON-ish shape of a raw value for invalid_type reports.
func KindOf(v any) string {
	switch n := v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case float32:
		return floatKind(float64(n))
	case float64:
		return floatKind(n)
	case json.Number:
		if _, err := n.Int64(); err == nil {
			return "integer"
		}
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case time.Time:
		return "datetime"
	default:
		return "unknown"
	}
}

func floatKind(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return "integer"
	}
	return "number"
}

// TypeMismatch builds the invalid_type issue at the root of the current value.
func TypeMismatch(expected string, found any) Issue {
	return Issue{
		Path:    "/",
		Code:    CodeInvalidType,
		Message: "expected " + expected + ", found " + KindOf(found),
		Params:  map[string]any{"expected": expected, "found": KindOf(found)},
	}
}
