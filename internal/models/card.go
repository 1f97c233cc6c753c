// Package models defines the board domain types shared by the API client,
// the board controller and the CLI.
package models

import "errors"

// CardType classifies a card into one of the three fixed board columns.
// The values are the wire tags the backend uses.
type CardType string

const (
	// CardTypeCompleted marks work that is done.
	CardTypeCompleted CardType = "WHAT_I_DID_YESTERDAY"
	// CardTypePlanned marks work that is planned or in progress.
	CardTypePlanned CardType = "WHAT_I_PRETEND_TO_DO"
	// CardTypeBlocker marks an impediment. Only blockers carry a
	// meaningful Resolved flag.
	CardTypeBlocker CardType = "WHAT_I_DID_TODAY"
)

// ErrUnknownCardType reports a card whose type tag is none of the three
// known values. Such payloads violate the data contract and must not be
// silently dropped.
var ErrUnknownCardType = errors.New("unknown card type")

// Valid reports whether t is one of the three known card types.
func (t CardType) Valid() bool {
	switch t {
	case CardTypeCompleted, CardTypePlanned, CardTypeBlocker:
		return true
	}
	return false
}

// Label returns a short human-readable name for the type.
func (t CardType) Label() string {
	switch t {
	case CardTypeCompleted:
		return "done"
	case CardTypePlanned:
		return "planned"
	case CardTypeBlocker:
		return "blocker"
	}
	return string(t)
}

// Card is a single work item on a board.
//
// ID, MemberID, MemberName and CreationDate are assigned by the server.
// Ownership checks against MemberName are a UI convenience only; the
// server enforces permissions authoritatively.
type Card struct {
	ID           int64    `json:"id"`
	MemberID     int64    `json:"memberId"`
	MemberName   string   `json:"memberName"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Type         CardType `json:"type"`
	Resolved     bool     `json:"resolved"`
	CreationDate DayStamp `json:"creationDate"`
}

// BoardData groups the cards of one fetch window into the three columns.
// It is recomputed on every fetch and never persisted.
type BoardData struct {
	Done     []Card
	Planned  []Card
	Blockers []Card
}

// Total returns the number of cards across all three columns.
func (d BoardData) Total() int {
	return len(d.Done) + len(d.Planned) + len(d.Blockers)
}
