package errors

import "errors"

// sentinel errors shared by persistence implementations.
//
// Callers should test with errors.Is; concrete error types in
// dberrors/postgres unwrap to these.
var (
	// requested record does not exist.
	ErrMissing = errors.New("missing")

	// the operation conflicts with an existing record.
	ErrConflict = errors.New("conflict")
)
