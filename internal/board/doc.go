// Package board owns the fetch, filter and mutate lifecycle for one board's
// visible card set.
//
// The Controller fetches cards for a date window, exposes the card
// mutations (add, edit, delete, resolve-toggle) and reconciles local
// state with what the server returns: edits and toggles apply the
// server-returned entity, deletes remove locally by id, and bulk adds
// re-fetch the window. Loads carry a sequence number so a response from
// a superseded load can never overwrite fresher data.
//
// ApplyFilters is the pure filter engine deriving the rendered subset
// from full board data plus a FilterSpec.
package board
