package schema

import (
	"reflect"
	"strings"
)

// ResolveStructKey resolves the external key of a struct field used by typed
// binding. Priority: schema:"name=..." > json tag name > field name; "-"
// disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if gt := sf.Tag.Get("schema"); gt != "" {
		for _, p := range strings.Split(gt, ",") {
			p = strings.TrimSpace(p)
			if name, ok := strings.CutPrefix(p, "name="); ok {
				return name
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}
