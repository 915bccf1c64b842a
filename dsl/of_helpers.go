package dsl

import (
	"github.com/reoring/trunkconf/schema"
)

// SchemaOf converts an arbitrary Schema[T] into an AnyAdapter helper, e.g. to
// nest a bound object inside another object.
func SchemaOf[T any](s schema.Schema[T]) AnyAdapter { return anyAdapterFromSchema[T](s) }
