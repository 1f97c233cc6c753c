package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable wraps transport failures: the request never
	// produced a response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized covers rejected credentials and missing or
	// invalid tokens (401/403).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound covers 404 responses on required lookups.
	ErrNotFound = errors.New("not found")

	// ErrBadContract reports a response whose shape violates the
	// expected schema, e.g. an unrecognized card type tag.
	ErrBadContract = errors.New("data contract violation")
)

// StatusError is any other non-2xx response. Message carries the
// server-supplied "message" field when the body had one.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("API Error: %d", e.Status)
}
