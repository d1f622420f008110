package casetrail

import (
	"errors"
	"fmt"
)

// Common errors returned by the casetrail core.
var (
	// ErrOutOfRange is returned when a store position or view offset is
	// outside current bounds.
	ErrOutOfRange = errors.New("position out of range")

	// ErrUnknownField is returned when a field name is not in the canonical
	// set. This is a programmer error, not a user-recoverable one.
	ErrUnknownField = errors.New("unknown field")

	// ErrEmptyView is returned when navigation or editing is attempted while
	// the filtered view has zero records.
	ErrEmptyView = errors.New("filtered view is empty")

	// ErrNoStore is returned when a session operation requires a loaded
	// record set and none has been loaded yet.
	ErrNoStore = errors.New("no record set loaded")

	// ErrStaleDraft is returned when a draft references a position that no
	// longer exists in the store (only possible after a fresh load).
	ErrStaleDraft = errors.New("draft does not match loaded record set")
)

// ValidationError is returned when a Config field is invalid.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Message)
}

// LoadError is returned when input cannot be parsed into a record set.
// The load is aborted as a whole; no partial store is produced.
// Extractable via errors.As(). Supports Unwrap().
type LoadError struct {
	Row int // 1-based input row, 0 when the header itself is at fault
	Err error
}

func (e *LoadError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("load: %v", e.Err)
	}
	return fmt.Sprintf("load: row %d: %v", e.Row, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
