package trunkconf_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/reoring/trunkconf"
	"github.com/reoring/trunkconf/schema"
	"github.com/reoring/trunkconf/source"
)

func errorsAs(err error, target any) bool { return errors.As(err, target) }

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	doc := "dist = \"out\"\n[clean]\ncargo = true\n[serve]\nproxy_backend = \"http://localhost:9000\"\n"
	if err := os.WriteFile(filepath.Join(dir, "Trunk.toml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, wd, err := trunkconf.Load(context.Background(), dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if wd != dir || *cfg.Dist != "out" || !cfg.Clean.Cargo || len(cfg.Proxies) != 1 {
		t.Fatalf("unexpected result: dir=%s cfg=%+v", wd, cfg)
	}

	cfg2, wd2, err := trunkconf.Load(context.Background(), filepath.Join(dir, "Trunk.toml"))
	if err != nil || wd2 != dir || *cfg2.Dist != "out" {
		t.Fatalf("load by file: %v %s", err, wd2)
	}
}

func TestLoad_Formats(t *testing.T) {
	docs := map[string]string{
		"Trunk.yaml": "dist: out\nserve:\n  port: 9000\n",
		"Trunk.json": `{"dist":"out","serve":{"port":9000}}`,
		"Cargo.toml": "[package]\nname = \"app\"\n[package.metadata.trunk]\ndist = \"out\"\nserve = { port = 9000 }\n",
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), name)
			if err := os.WriteFile(p, []byte(doc), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg, _, err := trunkconf.Load(context.Background(), p)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if *cfg.Dist != "out" || cfg.Serve.Port != 9000 {
				t.Fatalf("unexpected config: %+v", cfg)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	var pre *source.PathResolutionError
	if _, _, err := trunkconf.Load(context.Background(), t.TempDir()); !errors.As(err, &pre) {
		t.Fatalf("expected PathResolutionError, got %v", err)
	}

	dir := t.TempDir()
	p := filepath.Join(dir, "Trunk.toml")
	if err := os.WriteFile(p, []byte("[serve]\nprot = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err := trunkconf.Load(context.Background(), p)
	iss, ok := schema.AsIssues(err)
	if !ok || iss[0].Path != "/serve/prot" {
		t.Fatalf("wrapped issues not reachable: %v", err)
	}

	if err := os.WriteFile(p, []byte("[serve]\naddress = \"nope\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err = trunkconf.Load(context.Background(), p)
	var me *trunkconf.MigrationError
	if !errors.As(err, &me) {
		t.Fatalf("wrapped MigrationError not reachable: %v", err)
	}
}
