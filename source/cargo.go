package source

import (
	"github.com/reoring/trunkconf/schema"
)

// parseCargo extracts [package.metadata.trunk] from a Cargo manifest. A
// manifest without the table yields an empty tree.
func parseCargo(data []byte) (map[string]any, error) {
	manifest, err := parseTOML(data)
	if err != nil {
		return nil, err
	}
	cur := any(manifest)
	path := ""
	for _, seg := range []string{"package", "metadata", "trunk"} {
		m, ok := cur.(map[string]any)
		if !ok {
			iss := schema.TypeMismatch("table", cur)
			iss.Path = path
			return nil, schema.Issues{iss}
		}
		next, ok := m[seg]
		if !ok {
			return map[string]any{}, nil
		}
		path += schema.Key(seg)
		cur = next
	}
	trunk, ok := cur.(map[string]any)
	if !ok {
		iss := schema.TypeMismatch("table", cur)
		iss.Path = path
		return nil, schema.Issues{iss}
	}
	return trunk, nil
}
