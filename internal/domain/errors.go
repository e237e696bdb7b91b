package domain

import "errors"

// Error taxonomy shared by all services. Callers match with errors.Is and map
// to transport codes at the edge.
var (
	// ErrValidation marks missing or malformed required input.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound marks an identity lookup that resolved nothing.
	ErrNotFound = errors.New("not found")

	// ErrNotification marks an unreachable external channel. Always caught and
	// logged at the call site, never surfaced to the caller.
	ErrNotification = errors.New("notification failed")

	// ErrPersistence marks an unavailable store. Fatal, no retry.
	ErrPersistence = errors.New("persistence failed")
)
