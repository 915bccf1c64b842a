// Package trunkconf loads, validates and migrates the configuration of a
// web-asset build tool (Trunk.toml and its YAML, JSON and Cargo.toml
// variants).
//
// The pipeline has three stages:
//
//   - Decode turns the raw document tree into a Configuration. The document
//     root mixes fixed sections ([build], [serve], ...) with loose core keys
//     (dist, trunk-version). Decode captures every root key that is not a
//     section into a temporary extras bag and decodes that bag against the
//     closed core schema, so a key unknown everywhere is still rejected.
//   - Migrate rewrites deprecated fields into their current form on a copy,
//     logging one warning per rewrite. Running it twice is a no-op.
//   - Load ties both to file discovery (see package source).
//
// Typical usage:
//
//	cfg, dir, err := trunkconf.Load(ctx, "")
//	if iss, ok := schema.AsIssues(err); ok {
//	    for _, it := range iss {
//	        fmt.Println(it.Path, it.Code)
//	    }
//	}
//
// Warnings are written to the slog.Logger carried by ctx, or slog.Default().
package trunkconf
