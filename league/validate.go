package league

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/ejfeldman7/fantasy-gbbo/model"
)

// ValidationError is a hard validation failure that blocks a submission from
// being stored. Warnings, by contrast, flag contradictory-but-legal picks and
// never block anything: the show has had twists where an eliminated baker
// returns, so intent is not for the league to second-guess. Malformed data is.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// Validate checks a candidate weekly pick and season pick against the roster.
// Either pick may be nil when only the other is being submitted. It returns
// hard errors, which block persistence, and warnings, which are returned to
// the player for display.
func Validate(weekly *model.WeeklyPick, season *model.SeasonPick, roster *model.Roster) (errs []error, warnings []string) {
	active := roster.ActiveNames()
	all := roster.AllNames()

	if weekly != nil {
		for _, f := range []struct{ field, name string }{
			{"star_baker", weekly.StarBaker},
			{"technical_winner", weekly.TechnicalWinner},
			{"eliminated_baker", weekly.EliminatedBaker},
		} {
			if err := checkName(f.field, f.name, active); err != nil {
				errs = append(errs, err)
			}
		}

		if weekly.EliminatedBaker != "" {
			if weekly.EliminatedBaker == weekly.StarBaker {
				warnings = append(warnings, fmt.Sprintf("%s is picked as both star baker and eliminated", weekly.EliminatedBaker))
			}
			if weekly.EliminatedBaker == weekly.TechnicalWinner {
				warnings = append(warnings, fmt.Sprintf("%s is picked as both technical winner and eliminated", weekly.EliminatedBaker))
			}
		}
	}

	if season != nil {
		for _, f := range []struct{ field, name string }{
			{"winner", season.Winner},
			{"finalist_a", season.FinalistA},
			{"finalist_b", season.FinalistB},
		} {
			// Season picks are checked against the full historical roster,
			// but naming a baker who already went home is a hard error.
			if err := checkName(f.field, f.name, all); err != nil {
				errs = append(errs, err)
				continue
			}
			if roster.EliminatedBefore(f.name, season.Week) {
				errs = append(errs, &ValidationError{Field: f.field, Msg: fmt.Sprintf("%s was already eliminated before week %d", f.name, season.Week)})
			}
		}

		if season.Winner == season.FinalistA || season.Winner == season.FinalistB || season.FinalistA == season.FinalistB {
			errs = append(errs, &ValidationError{Field: "season_pick", Msg: "winner and finalists must be three different bakers"})
		}

		if weekly != nil && weekly.EliminatedBaker != "" {
			if weekly.EliminatedBaker == season.Winner || season.PicksFinalist(weekly.EliminatedBaker) {
				warnings = append(warnings, fmt.Sprintf("%s is picked as eliminated this week but also as a season winner or finalist", weekly.EliminatedBaker))
			}
		}
	}

	return errs, warnings
}

// checkName verifies a baker name is in the given roster slice. Unknown names
// get a fuzzy suggestion when a close match exists, since results and picks
// are keyed by name and a typo would otherwise silently score zero.
func checkName(field, name string, roster []string) error {
	if name == "" {
		return &ValidationError{Field: field, Msg: "a baker must be selected"}
	}
	for _, r := range roster {
		if r == name {
			return nil
		}
	}

	msg := fmt.Sprintf("%s is not on the roster", name)
	if matches := fuzzy.RankFindNormalizedFold(name, roster); len(matches) > 0 {
		sort.Sort(matches)
		msg = fmt.Sprintf("%s (did you mean %s?)", msg, matches[0].Target)
	}
	return &ValidationError{Field: field, Msg: msg}
}
