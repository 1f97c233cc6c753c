package models

import "time"

// DateRange bounds a set of days. A zero From or To leaves that end
// open.
type DateRange struct {
	From time.Time
	To   time.Time
}

// IsZero reports whether both ends are open.
func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// FilterSpec narrows the visible card set. It lives only on the client
// and is never sent to the backend; the date range additionally scopes
// the fetch window.
//
// Empty Authors or Categories mean "all".
type FilterSpec struct {
	Range      *DateRange
	Authors    []string
	Categories []CardType
}

// IsZero reports whether the spec filters nothing out.
func (f FilterSpec) IsZero() bool {
	return (f.Range == nil || f.Range.IsZero()) && len(f.Authors) == 0 && len(f.Categories) == 0
}
