// Package league holds the scoring, validation, and deadline rules of the
// fantasy league. Everything here is a pure function over already-fetched
// data; all I/O stays in the controller and db packages.
package league

import "time"

// WeekState describes where a week is in its lifecycle.
type WeekState string

const (
	// Open means submissions are accepted and picks are hidden from other players.
	Open WeekState = "open"
	// Locked means the deadline has passed: submissions are rejected and
	// picks are revealed in history views.
	Locked WeekState = "locked"
	// Resulted means the commissioner has entered the official result and
	// scores for the week are final.
	Resulted WeekState = "resulted"
)

// Status returns the state of a week given its submission deadline, the
// current time, whether an official result has been recorded, and whether the
// commissioner has forced the week open. The override never reopens a
// resulted week.
func Status(deadline, now time.Time, hasResult, overrideOpen bool) WeekState {
	if hasResult {
		return Resulted
	}
	if overrideOpen || now.Before(deadline) {
		return Open
	}
	return Locked
}

// CanSubmit reports whether a pick submission is accepted for the week.
func CanSubmit(deadline, now time.Time, hasResult, overrideOpen bool) bool {
	s := Status(deadline, now, hasResult, overrideOpen)
	return s != Resulted && (s == Open || overrideOpen)
}

// Revealed reports whether the week's picks may be shown to other players.
func Revealed(deadline, now time.Time, hasResult, overrideOpen bool) bool {
	return Status(deadline, now, hasResult, overrideOpen) != Open
}
