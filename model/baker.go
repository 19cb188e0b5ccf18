package model

import "time"

// Baker is a contestant on the show. Bakers are created by the commissioner
// at the start of the season and marked eliminated as weekly results come in.
// A baker referenced by historical picks is never hard-deleted.
type Baker struct {
	ID              int64
	Name            string
	Eliminated      bool
	EliminationWeek int
	Created         time.Time
}

// Roster is the full set of bakers for the season, used by pick validation.
type Roster struct {
	Bakers []Baker
}

// ActiveNames returns the names of bakers still in the competition.
func (r *Roster) ActiveNames() []string {
	names := make([]string, 0, len(r.Bakers))
	for _, b := range r.Bakers {
		if !b.Eliminated {
			names = append(names, b.Name)
		}
	}
	return names
}

// AllNames returns every baker name, eliminated or not.
func (r *Roster) AllNames() []string {
	names := make([]string, 0, len(r.Bakers))
	for _, b := range r.Bakers {
		names = append(names, b.Name)
	}
	return names
}

// EliminatedBefore reports whether the named baker was eliminated in a week
// strictly before the given week.
func (r *Roster) EliminatedBefore(name string, week int) bool {
	for _, b := range r.Bakers {
		if b.Name == name {
			return b.Eliminated && b.EliminationWeek < week
		}
	}
	return false
}
