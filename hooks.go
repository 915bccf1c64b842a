package trunkconf

import (
	"github.com/reoring/trunkconf/dsl"
)

// HookStage is the build stage a hook runs at.
type HookStage string

const (
	HookPreBuild  HookStage = "pre_build"
	HookBuild     HookStage = "build"
	HookPostBuild HookStage = "post_build"
)

// Hook is a command run at a build stage.
type Hook struct {
	Stage            HookStage `json:"stage"`
	Command          string    `json:"command"`
	CommandArguments []string  `json:"command_arguments"`
}

// Hooks is the [[hooks]] sequence.
type Hooks []Hook

var hookSchema = dsl.ObjectOf[Hook]().
	Field("stage", dsl.EnumOf(HookPreBuild, HookBuild, HookPostBuild)).Required().
	Field("command", dsl.StringOf[string]()).Required().
	Field("command_arguments", dsl.ArrayOf[string](dsl.String())).Default([]any{}).
	MustBind()
