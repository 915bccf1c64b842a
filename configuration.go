package trunkconf

import (
	"bytes"
	"maps"
	"slices"

	json "github.com/goccy/go-json"
)

// Configuration is the decoded document: the loose core keys (flattened to
// the root) plus the fixed sections.
type Configuration struct {
	Core
	Build   Build   `json:"build"`
	Tools   Tools   `json:"tools"`
	Hooks   Hooks   `json:"hooks"`
	Watch   Watch   `json:"watch"`
	Serve   Serve   `json:"serve"`
	Clean   Clean   `json:"clean"`
	Proxies Proxies `json:"proxies"`
}

// Clone returns a deep copy of c. Pointer fields share their target, which
// no pipeline stage writes through.
func (c Configuration) Clone() Configuration {
	out := c
	out.Build.Features = slices.Clone(c.Build.Features)
	out.Build.PatternParams = maps.Clone(c.Build.PatternParams)
	out.Hooks = slices.Clone(c.Hooks)
	for i := range out.Hooks {
		out.Hooks[i].CommandArguments = slices.Clone(out.Hooks[i].CommandArguments)
	}
	out.Watch.Watch = slices.Clone(c.Watch.Watch)
	out.Watch.Ignore = slices.Clone(c.Watch.Ignore)
	out.Serve.Addresses = slices.Clone(c.Serve.Addresses)
	out.Serve.Headers = maps.Clone(c.Serve.Headers)
	out.Serve.Aliases = slices.Clone(c.Serve.Aliases)
	out.Proxies = slices.Clone(c.Proxies)
	return out
}

// Tree renders c as a raw document tree. For a configuration produced by
// Decode or Migrate the tree decodes back to an equal value; a hand-built
// value with nil sequences or an empty enum renders nulls and "" that Decode
// rejects. Integers come out as int64, like a parsed TOML document.
func (c Configuration) Tree() (map[string]any, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return numbersToNative(out).(map[string]any), nil
}

func numbersToNative(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = numbersToNative(e)
		}
	case []any:
		for i, e := range t {
			t[i] = numbersToNative(e)
		}
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
	}
	return v
}
