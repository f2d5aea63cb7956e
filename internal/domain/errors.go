package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so callers can branch without string matching.
var (
	// ErrBusy means an operation was triggered while a previous one for the
	// same flow is still in flight.
	ErrBusy = errors.New("operation already in flight")

	// ErrInvalidState means a state machine method was called from a state
	// that does not allow it.
	ErrInvalidState = errors.New("invalid state for operation")
)
