package trunkconf

import (
	"fmt"

	"github.com/reoring/trunkconf/dsl"
	js "github.com/reoring/trunkconf/jsonschema"
	"github.com/reoring/trunkconf/schema"
)

// extrasKey is the decode-time field that collects every root key which is
// not a fixed section. No configuration key can start with '$', and input
// using this name is captured like any other loose key.
const extrasKey = "$extras"

// section is one fixed section of the document root.
type section struct {
	name    string
	aliases []string
	adapter dsl.AnyAdapter
	// empty is the raw value used when the section is absent.
	empty any
	set   func(*Configuration, any)
}

// fixedSections is the single description of the document root. Both the
// decode-time object and the exported JSON Schema are built from it.
var fixedSections = []section{
	{name: "build", adapter: dsl.SchemaOf(buildSchema), empty: map[string]any{},
		set: func(c *Configuration, v any) { c.Build = v.(Build) }},
	{name: "tools", adapter: dsl.SchemaOf(toolsSchema), empty: map[string]any{},
		set: func(c *Configuration, v any) { c.Tools = v.(Tools) }},
	{name: "hooks", adapter: dsl.ArrayOf(hookSchema), empty: []any{},
		set: func(c *Configuration, v any) { c.Hooks = Hooks(v.([]Hook)) }},
	{name: "watch", adapter: dsl.SchemaOf(watchSchema), empty: map[string]any{},
		set: func(c *Configuration, v any) { c.Watch = v.(Watch) }},
	{name: "serve", adapter: dsl.SchemaOf(serveSchema), empty: map[string]any{},
		set: func(c *Configuration, v any) { c.Serve = v.(Serve) }},
	{name: "clean", adapter: dsl.SchemaOf(cleanSchema), empty: map[string]any{},
		set: func(c *Configuration, v any) { c.Clean = v.(Clean) }},
	{name: "proxies", aliases: []string{"proxy"}, adapter: dsl.ArrayOf(proxySchema), empty: []any{},
		set: func(c *Configuration, v any) { c.Proxies = Proxies(v.([]Proxy)) }},
}

var decodeSchema = buildDecodeSchema()

// buildDecodeSchema returns the first-pass object: fixed sections are decoded
// strictly, all other root keys land undecoded in extrasKey.
func buildDecodeSchema() schema.Schema[map[string]any] {
	b := dsl.Object()
	for _, sec := range fixedSections {
		b.Field(sec.name, sec.adapter).Default(sec.empty).Alias(sec.aliases...)
	}
	b.Field(extrasKey, dsl.SchemaOf(dsl.MapAny()))
	return b.UnknownPassthrough(extrasKey).MustBuild()
}

// ConfigurationSchema exports the public JSON Schema of a configuration
// document: core keys at the root, one property per section (aliases
// included), and no additional properties.
func ConfigurationSchema() (*js.Schema, error) {
	core, err := coreSchema.JSONSchema()
	if err != nil {
		return nil, fmt.Errorf("core schema: %w", err)
	}
	root := core.Clone()
	root.Dialect = js.Draft
	root.Title = "Trunk configuration"
	root.AdditionalProperties = false
	if root.Properties == nil {
		root.Properties = map[string]*js.Schema{}
	}
	for _, sec := range fixedSections {
		s, err := sec.adapter.JSONSchema()
		if err != nil {
			return nil, fmt.Errorf("section %s schema: %w", sec.name, err)
		}
		root.Properties[sec.name] = s
		for _, alias := range sec.aliases {
			as := s.Clone()
			as.Description = "Alias of '" + sec.name + "'"
			root.Properties[alias] = as
		}
	}
	return root, nil
}
