package kwsql

import (
	"fmt"
)

// MigrationError reports that the schema could not be brought to the
// required version. Steps before Step remain applied.
type MigrationError struct {
	// Step is the schema version whose migration failed, or 0 when the
	// current version could not be determined.
	Step int
	Err  error
}

func (e *MigrationError) Error() string {
	if e.Step == 0 {
		return fmt.Sprintf("migrating database: %v", e.Err)
	}
	return fmt.Sprintf("migrating database: failed in step %d: %v", e.Step, e.Err)
}

func (e *MigrationError) Unwrap() error { return e.Err }

// KeywordProcessingError reports a failed keyword operation. The operation
// was rolled back as a whole.
type KeywordProcessingError struct {
	Op    string // merge, delete, clear or list
	Table string
	Err   error
}

func (e *KeywordProcessingError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}

func (e *KeywordProcessingError) Unwrap() error { return e.Err }

// StatementShapeError reports a keyword statement whose parameters do not
// match the shape a repository binds.
type StatementShapeError struct {
	Query string
	// Param is the 1-based parameter position, or 0 when the parameter
	// count is wrong.
	Param  int
	Reason string
}

func (e *StatementShapeError) Error() string {
	if e.Param == 0 {
		return "invalid keyword statement: " + e.Reason
	}
	return fmt.Sprintf("invalid keyword statement: parameter %d: %s", e.Param, e.Reason)
}
