// Package session owns the client-side authentication state: the bearer
// token, the resolved current user, and the token's on-disk persistence.
//
// The Store is an explicit object with a defined Init/Logout lifecycle
// rather than ambient package state, so it can be constructed and torn
// down in isolation in tests. It has exactly one writer at a time: the
// CLI drives it from a single goroutine, and a second login while one is
// in flight is last-write-wins.
package session
