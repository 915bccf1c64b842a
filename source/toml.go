package source

import (
	"errors"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/reoring/trunkconf/i18n"
	"github.com/reoring/trunkconf/schema"
)

func parseTOML(data []byte) (map[string]any, error) {
	out := map[string]any{}
	if err := toml.Unmarshal(data, &out); err != nil {
		return nil, tomlIssues(err)
	}
	return out, nil
}

// tomlIssues converts a go-toml decode error into Issues. Redefined keys and
// tables become duplicate_key, everything else parse_error; both carry the
// row and column.
func tomlIssues(err error) schema.Issues {
	it := schema.Issue{Path: "/", Code: schema.CodeParseError, Message: i18n.T(schema.CodeParseError, nil), Hint: err.Error(), Cause: err}
	var de *toml.DecodeError
	if errors.As(err, &de) {
		row, col := de.Position()
		it.Params = map[string]any{"line": row, "column": col}
		if key := de.Key(); len(key) > 0 {
			p := ""
			for _, k := range key {
				p += schema.Key(k)
			}
			it.Path = p
		}
	}
	if isRedefinition(err) {
		it.Code = schema.CodeDuplicateKey
		it.Message = i18n.T(schema.CodeDuplicateKey, nil)
	}
	return schema.Issues{it}
}

// isRedefinition matches go-toml v2's wording for redefined keys ("key a is
// already defined") and tables ("table build already exists").
func isRedefinition(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "is already defined") || strings.Contains(msg, "already exists")
}
