package trunkconf

import (
	"github.com/reoring/trunkconf/dsl"
)

// Tools pins the versions of the external tools the build downloads.
type Tools struct {
	Sass        *string `json:"sass,omitempty"`
	WasmBindgen *string `json:"wasm_bindgen,omitempty"`
	WasmOpt     *string `json:"wasm_opt,omitempty"`
	TailwindCSS *string `json:"tailwindcss,omitempty"`
}

var toolsSchema = dsl.ObjectOf[Tools]().
	Describe("Versions of external tools").
	Field("sass", dsl.OptionalOf[string](dsl.String())).
	Field("wasm_bindgen", dsl.OptionalOf[string](dsl.String())).
	Field("wasm_opt", dsl.OptionalOf[string](dsl.String())).
	Field("tailwindcss", dsl.OptionalOf[string](dsl.String())).
	MustBind()
