// Package api contains the HTTP client for the standup board backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     authentication, board and card CRUD, and team membership.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that attaches
//     a bearer token from an injected TokenSource, tags every request
//     with a correlation ID, and maps response statuses to sentinel
//     errors.
//
// The client shapes requests and normalizes response shapes; it carries
// no business logic. Card lists fetched for a date window are partitioned
// into the three board columns here, and a card with an unrecognized type
// tag is rejected as a contract violation rather than dropped.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound. Other
// non-2xx responses surface as *StatusError carrying the server-supplied
// message. Optional lookups (ValidateToken, GetBoard) convert absence
// into a nil result instead of an error.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation.
package api
