package trunkconf

import "fmt"

// MigrationError reports the migration step that failed. Migrate returns no
// partially migrated value alongside it.
type MigrationError struct {
	Step string
	Err  error
}

func (e *MigrationError) Error() string {
	return fmt.Sprintf("migration step %q failed: %v", e.Step, e.Err)
}

func (e *MigrationError) Unwrap() error { return e.Err }
