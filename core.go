package trunkconf

import (
	"github.com/reoring/trunkconf/dsl"
)

// Core holds the loose top-level keys. It is embedded in Configuration, so
// its fields appear at the document root.
type Core struct {
	// TrunkVersion is the required tool version requirement, e.g. "^0.21".
	TrunkVersion string `json:"trunk-version"`
	// Dist is the output directory.
	Dist *string `json:"dist,omitempty"`
}

var coreSchema = dsl.ObjectOf[Core]().
	Field("trunk-version", dsl.StringOf[string]().Describe("The required version of the build tool")).Default("*").
	Field("dist", dsl.OptionalOf[string](dsl.String()).Describe("The output directory for all final assets")).
	MustBind()
