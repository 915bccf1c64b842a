// Package source locates a configuration file and parses it into the raw
// tree (map[string]any) that the decoder consumes.
//
// Supported inputs are Trunk.toml, Trunk.yaml and Trunk.json (each also as a
// dot-file) and the [package.metadata.trunk] table of a Cargo.toml. Every
// parser rejects duplicate keys and reports them as duplicate_key issues.
package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies the syntax of a configuration file.
type Format string

const (
	FormatTOML  Format = "toml"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatCargo Format = "cargo"
)

// Candidates lists the file names Find looks for, in order.
var Candidates = []string{
	"Trunk.toml",
	".trunk.toml",
	"Trunk.yaml",
	".trunk.yaml",
	"Trunk.json",
	".trunk.json",
	"Cargo.toml",
}

// Source is a configuration file together with its detected format.
type Source struct {
	Path   string
	Format Format
}

// PathResolutionError reports that no configuration could be located.
type PathResolutionError struct {
	Path   string
	Reason string
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("unable to resolve configuration at %q: %s", e.Path, e.Reason)
}

// DetectFormat derives the format from the file name.
func DetectFormat(path string) (Format, bool) {
	base := filepath.Base(path)
	if base == "Cargo.toml" {
		return FormatCargo, true
	}
	switch strings.ToLower(filepath.Ext(base)) {
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".json":
		return FormatJSON, true
	}
	return "", false
}

// File returns the Source for an explicitly named file.
func File(path string) (Source, error) {
	f, ok := DetectFormat(path)
	if !ok {
		return Source{}, &PathResolutionError{Path: path, Reason: "unsupported file extension " + filepath.Ext(path)}
	}
	return Source{Path: path, Format: f}, nil
}

// Find searches dir for the first existing candidate file.
func Find(dir string) (Source, error) {
	for _, name := range Candidates {
		p := filepath.Join(dir, name)
		if st, err := os.Stat(p); err == nil && st.Mode().IsRegular() {
			return File(p)
		}
	}
	return Source{}, &PathResolutionError{Path: dir, Reason: "no configuration file found (looked for " + strings.Join(Candidates, ", ") + ")"}
}

// Resolve maps a user supplied path to a Source and the working directory
// the configuration is relative to. A file resolves to itself and its parent
// directory, a directory is searched, and an empty path searches the current
// working directory.
func Resolve(path string) (Source, string, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Source{}, "", &PathResolutionError{Path: path, Reason: "unable to get current directory: " + err.Error()}
		}
		src, err := Find(cwd)
		return src, cwd, err
	}
	st, err := os.Stat(path)
	switch {
	case err != nil:
		return Source{}, "", &PathResolutionError{Path: path, Reason: "neither a file nor a directory"}
	case st.IsDir():
		src, err := Find(path)
		return src, path, err
	case st.Mode().IsRegular():
		src, err := File(path)
		return src, filepath.Dir(path), err
	default:
		return Source{}, "", &PathResolutionError{Path: path, Reason: "neither a file nor a directory"}
	}
}

// Load reads the file and parses it into the raw tree.
func (s Source) Load(ctx context.Context) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse(s.Format, data)
}

// Parse converts data of the given format into the raw tree. The document
// root must be a table/mapping/object.
func Parse(f Format, data []byte) (map[string]any, error) {
	switch f {
	case FormatTOML:
		return parseTOML(data)
	case FormatYAML:
		return parseYAML(data)
	case FormatJSON:
		return parseJSON(data)
	case FormatCargo:
		return parseCargo(data)
	}
	return nil, fmt.Errorf("source: unsupported format %q", f)
}
