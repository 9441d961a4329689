package api

import (
	"errors"
	"fmt"
)

// The client distinguishes four failure classes. Validation errors never
// reach this package; they are raised from core before any request is
// dispatched. Everything crossing the wire maps onto one of these.
var (
	// ErrUnauthorized marks a 401-class response. Callers treat it as an
	// authentication failure, not as a load or mutation error.
	ErrUnauthorized = errors.New("authentication rejected")

	// ErrNotFound marks an id-based fetch with no matching record.
	ErrNotFound = errors.New("record not found")
)

// NetworkError wraps a request that failed to complete at all: DNS,
// connection refused, timeout, cancelled context.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RemoteError is a completed request answered with a non-2xx status. Body
// carries the remote error payload verbatim so mutation failures can be
// shown to the user unmodified.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("remote error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote error: status %d: %s", e.StatusCode, e.Body)
}
