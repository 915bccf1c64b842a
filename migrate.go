package trunkconf

import (
	"context"
	"errors"

	"github.com/reoring/trunkconf/internal/ctxlog"
)

// sectionMigrator is implemented by sections that carry legacy fields of
// their own.
type sectionMigrator interface {
	Migrate(ctx context.Context) error
}

type migrationStep struct {
	name string
	run  func(ctx context.Context, c *Configuration) error
}

func perSection(name string, get func(*Configuration) any) migrationStep {
	return migrationStep{name: name, run: func(ctx context.Context, c *Configuration) error {
		if m, ok := get(c).(sectionMigrator); ok {
			return m.Migrate(ctx)
		}
		return nil
	}}
}

// migrationSteps run in order. Section-local steps come first, then the
// steps that move values between sections.
var migrationSteps = []migrationStep{
	perSection("core", func(c *Configuration) any { return &c.Core }),
	perSection("tools", func(c *Configuration) any { return &c.Tools }),
	perSection("hooks", func(c *Configuration) any { return &c.Hooks }),
	perSection("proxies", func(c *Configuration) any { return &c.Proxies }),
	perSection("clean", func(c *Configuration) any { return &c.Clean }),
	perSection("build", func(c *Configuration) any { return &c.Build }),
	perSection("watch", func(c *Configuration) any { return &c.Watch }),
	perSection("serve", func(c *Configuration) any { return &c.Serve }),
	{name: "clean.dist", run: migrateCleanDist},
	{name: "serve.proxy", run: migrateServeProxy},
}

// Migrate rewrites deprecated fields into their current form and returns the
// result. cfg itself is not modified. Every rewrite logs one warning; a
// migrated configuration migrates to itself without warnings.
//
// A failing step aborts the chain with a *MigrationError.
func Migrate(ctx context.Context, cfg Configuration) (Configuration, error) {
	out := cfg.Clone()
	for _, step := range migrationSteps {
		if err := step.run(ctx, &out); err != nil {
			return Configuration{}, &MigrationError{Step: step.name, Err: err}
		}
	}
	return out, nil
}

// migrateCleanDist moves clean.dist to the top-level dist. An explicit
// top-level dist wins and the legacy value is dropped.
func migrateCleanDist(ctx context.Context, c *Configuration) error {
	if c.Clean.Dist == nil {
		return nil
	}
	legacy := *c.Clean.Dist
	c.Clean.Dist = nil
	log := ctxlog.FromContext(ctx)
	if c.Dist != nil && *c.Dist != legacy {
		log.Warn("'clean.dist' is deprecated and conflicts with 'dist'; keeping 'dist'",
			"field", "clean.dist", "value", legacy, "dist", *c.Dist)
		return nil
	}
	log.Warn("'clean.dist' is deprecated, use the top-level 'dist' field instead", "field", "clean.dist", "value", legacy)
	c.Dist = &legacy
	return nil
}

// migrateServeProxy turns the legacy serve.proxy_* fields into a new entry
// appended to proxies. It never merges with existing entries.
func migrateServeProxy(ctx context.Context, c *Configuration) error {
	s := &c.Serve
	if s.ProxyBackend == nil {
		return nil
	}
	p := Proxy{
		Backend:       *s.ProxyBackend,
		Rewrite:       s.ProxyRewrite,
		WS:            deref(s.ProxyWS),
		Insecure:      deref(s.ProxyInsecure),
		NoSystemProxy: deref(s.ProxyNoSystemProxy),
	}
	if err := proxySchema.ValidateValue(ctx, p); err != nil {
		return errors.Join(errors.New("serve.proxy_backend cannot be migrated"), err)
	}
	ctxlog.FromContext(ctx).Warn("the 'serve.proxy_*' fields are deprecated, migrate them into an entry of 'proxies'",
		"field", "serve.proxy_backend", "value", p.Backend)
	c.Proxies = append(c.Proxies, p)
	s.ProxyBackend, s.ProxyRewrite, s.ProxyWS, s.ProxyInsecure, s.ProxyNoSystemProxy = nil, nil, nil, nil, nil
	return nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
