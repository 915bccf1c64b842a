// Package dsl provides the schema builders used to declare configuration
// documents.
//
// Overview
//   - Object()/ObjectOf[T](): object schemas with Field/Required/Default/Alias and an
//     unknown-key policy (UnknownStrict, UnknownStrip, UnknownPassthrough).
//   - Typed binding: ObjectOf[T]()...MustBind() projects the parsed map onto struct T,
//     resolving keys through json tags.
//   - Primitives: String/Bool/Integer/Enum/URL/IP, plus the *Of adapters for fields.
//   - Containers: Array(elem), Map(elem), MapAny(), Optional(s) for *T fields.
//
// Unknown keys
//
// UnknownStrict rejects every key that is not a declared field with an
// unknown_key issue. UnknownPassthrough(target) instead captures those keys,
// undecoded, into the target field. That capture is what lets a caller decode
// a document whose root mixes fixed sections with an open set of loose keys:
// capture the loose keys first, then decode them against a second strict
// object.
//
// Errors
//
// Parse returns schema.Issues. Child issues are rebased under the field or
// index they came from, so a bad port reports /serve/port rather than /.
//
// Example
//
//	type Proxy struct {
//	    Backend string `json:"backend"`
//	    WS      bool   `json:"ws"`
//	}
//
//	var proxySchema = dsl.ObjectOf[Proxy]().
//	    Field("backend", dsl.SchemaOf[string](dsl.URL())).Required().
//	    Field("ws", dsl.BoolOf[bool]()).Default(false).
//	    MustBind()
//
//	p, err := proxySchema.Parse(ctx, map[string]any{"backend": "http://localhost:9000"})
package dsl
