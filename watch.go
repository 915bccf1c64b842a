package trunkconf

import (
	"github.com/reoring/trunkconf/dsl"
)

// Watch is the [watch] section.
type Watch struct {
	Watch          []string `json:"watch"`
	Ignore         []string `json:"ignore"`
	Poll           bool     `json:"poll"`
	PollInterval   *string  `json:"poll_interval,omitempty"`
	EnableCooldown bool     `json:"enable_cooldown"`
}

var watchSchema = dsl.ObjectOf[Watch]().
	Describe("File watcher options").
	Field("watch", dsl.ArrayOf[string](dsl.String()).Describe("Watch specific file(s) or folder(s)")).Default([]any{}).
	Field("ignore", dsl.ArrayOf[string](dsl.String()).Describe("Paths to ignore")).Default([]any{}).
	Field("poll", dsl.BoolOf[bool]()).Default(false).
	Field("poll_interval", dsl.OptionalOf[string](dsl.String())).
	Field("enable_cooldown", dsl.BoolOf[bool]()).Default(false).
	MustBind()
