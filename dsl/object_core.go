package dsl

import (
	"context"
	"sort"
	"strings"

	"github.com/reoring/trunkconf/i18n"
	js "github.com/reoring/trunkconf/jsonschema"
	"github.com/reoring/trunkconf/schema"
)

type objectSchema struct {
	fields        map[string]AnyAdapter
	sortedKeys    []string
	required      map[string]struct{}
	aliases       map[string]string // alias -> canonical field
	unknownPolicy schema.UnknownPolicy
	unknownTarget string
	description   string
}

// Ensure objectSchema implements schema.Schema[map[string]any]
var _ schema.Schema[map[string]any] = (*objectSchema)(nil)

// resolveAliases rewrites alias keys to their canonical field. Supplying both
// an alias and its canonical key (or two aliases of one field) is a duplicate.
func (o *objectSchema) resolveAliases(src map[string]any) (map[string]any, schema.Issues) {
	if len(o.aliases) == 0 {
		return src, nil
	}
	in := make(map[string]any, len(src))
	var iss schema.Issues
	for _, k := range sortedKeys(src) {
		canon, isAlias := o.aliases[k]
		if !isAlias {
			if _, taken := in[k]; taken {
				iss = schema.AppendIssues(iss, duplicateIssue(k, k))
				continue
			}
			in[k] = src[k]
			continue
		}
		if _, taken := in[canon]; taken {
			iss = schema.AppendIssues(iss, duplicateIssue(k, canon))
			continue
		}
		if _, direct := src[canon]; direct {
			iss = schema.AppendIssues(iss, duplicateIssue(k, canon))
			continue
		}
		in[canon] = src[k]
	}
	return in, iss
}

func duplicateIssue(key, canon string) schema.Issue {
	hint := ""
	if key != canon {
		hint = "'" + key + "' is an alias of '" + canon + "'"
	}
	return schema.Issue{
		Path:    schema.Key(key),
		Code:    schema.CodeDuplicateKey,
		Message: i18n.T(schema.CodeDuplicateKey, map[string]string{"key": canon}),
		Hint:    hint,
		Params:  map[string]any{"field": canon},
	}
}

// collectKnown parses known fields, applies defaults, and enforces required.
func (o *objectSchema) collectKnown(ctx context.Context, src map[string]any) (map[string]any, schema.Issues) {
	out := make(map[string]any, len(src))
	var iss schema.Issues
	for _, k := range o.sortedKeys {
		if k == o.unknownTarget {
			continue
		}
		ad := o.fields[k]
		if val, exists := src[k]; exists {
			parsed, err := ad.parse(ctx, val)
			if err != nil {
				iss = schema.AppendIssues(iss, schema.Rebase(schema.Key(k), schema.FromError("/", err))...)
				continue
			}
			out[k] = parsed
			continue
		}
		if ad.applyDefault != nil {
			dv, err := ad.applyDefault(ctx)
			if err != nil {
				iss = schema.AppendIssues(iss, schema.Rebase(schema.Key(k), schema.FromError("/", err))...)
				continue
			}
			out[k] = dv
			continue
		}
		if _, req := o.required[k]; req {
			iss = schema.AppendIssues(iss, schema.Issue{Path: schema.Key(k), Code: schema.CodeRequired, Message: i18n.T(schema.CodeRequired, nil), Params: map[string]any{"field": k}})
		}
	}
	return out, iss
}

// collectUnknown processes unknown keys according to unknownPolicy. Under
// passthrough the captured values land, undecoded, in out[unknownTarget];
// the target key itself is reserved and an input key of the same name is
// captured like any other unknown key.
func (o *objectSchema) collectUnknown(src map[string]any, out map[string]any) schema.Issues {
	var iss schema.Issues
	var extra map[string]any
	if o.unknownPolicy == schema.UnknownPassthrough {
		extra = map[string]any{}
		out[o.unknownTarget] = extra
	}
	for _, k := range sortedKeys(src) {
		if _, known := o.fields[k]; known && k != o.unknownTarget {
			continue
		}
		switch o.unknownPolicy {
		case schema.UnknownStrict:
			iss = schema.AppendIssues(iss, schema.Issue{
				Path:    schema.Key(k),
				Code:    schema.CodeUnknownKey,
				Message: i18n.T(schema.CodeUnknownKey, map[string]string{"key": k}),
				Hint:    "expected one of: " + strings.Join(o.knownNames(), ", "),
				Params:  map[string]any{"field": k},
			})
		case schema.UnknownStrip:
		case schema.UnknownPassthrough:
			extra[k] = src[k]
		}
	}
	return iss
}

func (o *objectSchema) knownNames() []string {
	names := make([]string, 0, len(o.sortedKeys))
	for _, k := range o.sortedKeys {
		if k != o.unknownTarget {
			names = append(names, k)
		}
	}
	return names
}

func (o *objectSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, schema.Issues{schema.TypeMismatch("object", v)}
	}
	src, iss := o.resolveAliases(src)
	out, known := o.collectKnown(ctx, src)
	iss = schema.AppendIssues(iss, known...)
	iss = schema.AppendIssues(iss, o.collectUnknown(src, out)...)
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (o *objectSchema) ValidateValue(ctx context.Context, v map[string]any) error {
	for _, k := range o.sortedKeys {
		if k == o.unknownTarget {
			continue
		}
		if val, ok := v[k]; ok {
			if err := o.fields[k].ValidateValue(ctx, val); err != nil {
				return schema.Rebase(schema.Key(k), schema.FromError("/", err))
			}
		} else if _, req := o.required[k]; req {
			return schema.Issues{{Path: schema.Key(k), Code: schema.CodeRequired, Message: i18n.T(schema.CodeRequired, nil)}}
		}
	}
	return nil
}

func (o *objectSchema) JSONSchema() (*js.Schema, error) {
	props := make(map[string]*js.Schema, len(o.fields))
	for _, k := range o.knownNames() {
		ps, err := o.fields[k].JSONSchema()
		if err != nil {
			return nil, err
		}
		if ps == nil {
			ps = &js.Schema{}
		}
		props[k] = ps
	}
	req := make([]string, 0, len(o.required))
	for k := range o.required {
		req = append(req, k)
	}
	sort.Strings(req)
	var additional any
	switch o.unknownPolicy {
	case schema.UnknownStrict:
		additional = false
	case schema.UnknownStrip, schema.UnknownPassthrough:
		additional = true
	}
	return &js.Schema{Type: "object", Description: o.description, Properties: props, Required: req, AdditionalProperties: additional}, nil
}
