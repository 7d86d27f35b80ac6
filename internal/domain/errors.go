package domain

import "errors"

var (
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrNotFound       = errors.New("not found")

	// ErrSerialUnavailable marks failures of the serial counter store, so the
	// caller can tell a failed allocation apart from a failed row insert.
	ErrSerialUnavailable = errors.New("serial counter unavailable")
)
