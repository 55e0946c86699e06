package db

import "errors"

// ErrNotFound is returned when a document matching the given id does not
// exist. Only fetch operations return it; updates and deletes of a missing
// id are silent no-ops.
var ErrNotFound = errors.New("document not found")

// ErrValidation is returned when a write is rejected at the data-access
// boundary, e.g. a missing required field. The wrapped message is safe to
// expose to the caller.
var ErrValidation = errors.New("validation failed")
