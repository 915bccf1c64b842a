package trunkconf

import (
	"github.com/reoring/trunkconf/dsl"
)

// Minify selects when assets are minified.
type Minify string

const (
	MinifyNever     Minify = "never"
	MinifyOnRelease Minify = "on_release"
	MinifyAlways    Minify = "always"
)

// Build is the [build] section.
type Build struct {
	Target                 string            `json:"target"`
	HTMLOutput             *string           `json:"html_output,omitempty"`
	Release                bool              `json:"release"`
	CargoProfile           *string           `json:"cargo_profile,omitempty"`
	PublicURL              string            `json:"public_url"`
	Filehash               bool              `json:"filehash"`
	Offline                bool              `json:"offline"`
	Frozen                 bool              `json:"frozen"`
	Locked                 bool              `json:"locked"`
	NoDefaultFeatures      bool              `json:"no_default_features"`
	AllFeatures            bool              `json:"all_features"`
	Features               []string          `json:"features"`
	Minify                 Minify            `json:"minify"`
	NoSRI                  bool              `json:"no_sri"`
	InjectScripts          bool              `json:"inject_scripts"`
	AllowSelfClosingScript bool              `json:"allow_self_closing_script"`
	CreateNonce            bool              `json:"create_nonce"`
	PatternScript          *string           `json:"pattern_script,omitempty"`
	PatternPreload         *string           `json:"pattern_preload,omitempty"`
	PatternParams          map[string]string `json:"pattern_params,omitempty"`
	RootCertificate        *string           `json:"root_certificate,omitempty"`
	AcceptInvalidCerts     bool              `json:"accept_invalid_certs"`
}

var buildSchema = dsl.ObjectOf[Build]().
	Describe("Build options").
	Field("target", dsl.StringOf[string]().Describe("The index HTML file to drive the bundling process")).Default("index.html").
	Field("html_output", dsl.OptionalOf[string](dsl.String())).
	Field("release", dsl.BoolOf[bool]()).Default(false).
	Field("cargo_profile", dsl.OptionalOf[string](dsl.String())).
	Field("public_url", dsl.StringOf[string]().Describe("The public URL from which assets are to be served")).Default("/").
	Field("filehash", dsl.BoolOf[bool]()).Default(true).
	Field("offline", dsl.BoolOf[bool]()).Default(false).
	Field("frozen", dsl.BoolOf[bool]()).Default(false).
	Field("locked", dsl.BoolOf[bool]()).Default(false).
	Field("no_default_features", dsl.BoolOf[bool]()).Default(false).
	Field("all_features", dsl.BoolOf[bool]()).Default(false).
	Field("features", dsl.ArrayOf[string](dsl.String())).Default([]any{}).
	Field("minify", dsl.EnumOf(MinifyNever, MinifyOnRelease, MinifyAlways)).Default(string(MinifyNever)).
	Field("no_sri", dsl.BoolOf[bool]()).Default(false).
	Field("inject_scripts", dsl.BoolOf[bool]()).Default(true).
	Field("allow_self_closing_script", dsl.BoolOf[bool]()).Default(false).
	Field("create_nonce", dsl.BoolOf[bool]()).Default(false).
	Field("pattern_script", dsl.OptionalOf[string](dsl.String())).
	Field("pattern_preload", dsl.OptionalOf[string](dsl.String())).
	Field("pattern_params", dsl.MapOf[string](dsl.String())).
	Field("root_certificate", dsl.OptionalOf[string](dsl.String())).
	Field("accept_invalid_certs", dsl.BoolOf[bool]()).Default(false).
	MustBind()
