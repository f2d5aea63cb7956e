package backend

import "fmt"

// The three failure kinds every backend call can produce. They are concrete
// types, not sentinels, so callers can pattern-match with errors.As and never
// confuse "backend said no" with "backend unreachable".

// TransportError means no response was obtained at all (DNS, connection,
// timeout-class failures). Always recoverable.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "backend unreachable: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// RejectionError means the backend responded with a non-success status,
// optionally carrying a detail string in the body.
type RejectionError struct {
	Status int
	Detail string
}

func (e *RejectionError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend rejected with status %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend rejected with status %d", e.Status)
}

// MalformedError means the backend responded success but the body did not
// parse as the expected shape.
type MalformedError struct {
	Err error
}

func (e *MalformedError) Error() string { return "malformed backend response: " + e.Err.Error() }
func (e *MalformedError) Unwrap() error { return e.Err }
