package trunkconf

import (
	"github.com/reoring/trunkconf/dsl"
)

// Proxy forwards requests from the dev server to a backend.
type Proxy struct {
	Backend       string  `json:"backend"`
	Rewrite       *string `json:"rewrite,omitempty"`
	WS            bool    `json:"ws"`
	Insecure      bool    `json:"insecure"`
	NoSystemProxy bool    `json:"no_system_proxy"`
}

// Proxies is the [[proxies]] sequence; [[proxy]] is accepted as an alias.
type Proxies []Proxy

var proxySchema = dsl.ObjectOf[Proxy]().
	Field("backend", dsl.SchemaOf[string](dsl.URL()).Describe("The URL of the backend to proxy to")).Required().
	Field("rewrite", dsl.OptionalOf[string](dsl.String()).Describe("Path the proxied requests are served under")).
	Field("ws", dsl.BoolOf[bool]()).Default(false).
	Field("insecure", dsl.BoolOf[bool]()).Default(false).
	Field("no_system_proxy", dsl.BoolOf[bool]()).Default(false).
	MustBind()
