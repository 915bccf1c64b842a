package trunkconf

import (
	"context"
	"fmt"

	"github.com/reoring/trunkconf/internal/ctxlog"
	"github.com/reoring/trunkconf/source"
)

// Load locates the configuration for path (a file, a directory to search, or
// "" for the working directory), then decodes and migrates it. It returns the
// configuration and the directory relative paths in it resolve against.
//
// Errors keep their type under wrapping: *source.PathResolutionError,
// schema.Issues and *MigrationError are all reachable with errors.As.
func Load(ctx context.Context, path string) (Configuration, string, error) {
	src, dir, err := source.Resolve(path)
	if err != nil {
		return Configuration{}, "", err
	}
	ctxlog.FromContext(ctx).Debug("loading configuration", "path", src.Path, "format", src.Format, "dir", dir)

	raw, err := src.Load(ctx)
	if err != nil {
		return Configuration{}, "", fmt.Errorf("%s: %w", src.Path, err)
	}
	cfg, err := Decode(ctx, raw)
	if err != nil {
		return Configuration{}, "", fmt.Errorf("%s: %w", src.Path, err)
	}
	cfg, err = Migrate(ctx, cfg)
	if err != nil {
		return Configuration{}, "", fmt.Errorf("%s: %w", src.Path, err)
	}
	return cfg, dir, nil
}
