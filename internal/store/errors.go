package store

import "errors"

// ErrNotFound is returned when a lookup matches nothing. Callers treat it
// as an absence signal, not a failure.
var ErrNotFound = errors.New("not found")
