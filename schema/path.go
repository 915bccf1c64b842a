package schema

import (
	"strconv"
	"strings"
)

var (
	pointerEscaper   = strings.NewReplacer("~", "~0", "/", "~1")
	pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// Key returns the JSON Pointer segment for an object key.
func Key(name string) string { return "/" + pointerEscaper.Replace(name) }

// Index returns the JSON Pointer segment for an array index.
func Index(i int) string { return "/" + strconv.Itoa(i) }

func unescapePointer(s string) string { return pointerUnescaper.Replace(s) }

// Rebase prefixes every issue path with base. Root-relative paths ("" or "/")
// become base itself.
func Rebase(base string, iss Issues) Issues {
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}
