package trunkconf

import (
	"github.com/reoring/trunkconf/dsl"
)

// Clean is the [clean] section.
type Clean struct {
	// Dist is the legacy location of the output directory; Migrate moves it
	// to Core.Dist.
	Dist  *string `json:"dist,omitempty"`
	Cargo bool    `json:"cargo"`
}

var cleanSchema = dsl.ObjectOf[Clean]().
	Describe("Clean options").
	Field("dist", dsl.OptionalOf[string](dsl.String()).Deprecated().Describe("Use the top-level 'dist' field instead")).
	Field("cargo", dsl.BoolOf[bool]()).Default(false).
	MustBind()
