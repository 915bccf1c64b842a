package trunkconf

import (
	"context"
)

// Decode turns a raw document tree into a Configuration.
//
// The first pass decodes the fixed sections, each closed to unknown keys,
// and captures every other root key in the extras bag. The second pass
// decodes the bag against the closed core schema. A key unknown to both
// passes fails with an unknown_key issue; issues from the second pass carry
// only the root key as path.
//
// Errors are schema.Issues.
func Decode(ctx context.Context, raw any) (Configuration, error) {
	root, err := decodeSchema.Parse(ctx, raw)
	if err != nil {
		return Configuration{}, err
	}
	extras, _ := root[extrasKey].(map[string]any)
	core, err := coreSchema.Parse(ctx, extras)
	if err != nil {
		return Configuration{}, err
	}
	cfg := Configuration{Core: core}
	for _, sec := range fixedSections {
		sec.set(&cfg, root[sec.name])
	}
	return cfg, nil
}
