package models

import (
	"fmt"
	"strings"
	"time"
)

// dayStampLayout is the backend's wire format for card creation dates.
const dayStampLayout = "02-01-2006"

// DayStamp is a day-granularity date. The backend assigns it on card
// creation and exchanges it as a DD-MM-YYYY string; no time of day is
// carried, so comparisons are only meaningful at day precision.
type DayStamp struct {
	time.Time
}

// Day builds a DayStamp from t, discarding the time of day.
func Day(t time.Time) DayStamp {
	y, m, d := t.Date()
	return DayStamp{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON parses a DD-MM-YYYY string. An empty string or null
// yields the zero DayStamp.
func (d *DayStamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = DayStamp{}
		return nil
	}
	t, err := time.Parse(dayStampLayout, s)
	if err != nil {
		return fmt.Errorf("invalid creation date %q: %w", s, err)
	}
	*d = DayStamp{t}
	return nil
}

// MarshalJSON renders the stamp in the DD-MM-YYYY wire format.
func (d DayStamp) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format(dayStampLayout) + `"`), nil
}

// Within reports whether the stamp falls inside [from, to] inclusive,
// comparing at day granularity. A zero from or to leaves that end open.
// A zero stamp never matches a bounded range.
func (d DayStamp) Within(from, to time.Time) bool {
	if from.IsZero() && to.IsZero() {
		return true
	}
	if d.IsZero() {
		return false
	}
	day := Day(d.Time).Time
	if !from.IsZero() && day.Before(Day(from).Time) {
		return false
	}
	if !to.IsZero() && day.After(Day(to).Time) {
		return false
	}
	return true
}

func (d DayStamp) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dayStampLayout)
}
