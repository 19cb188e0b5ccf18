package league

import (
	"slices"
	"strings"

	"github.com/ejfeldman7/fantasy-gbbo/model"
)

// Weekly point values. A matched handshake call is worth the most because it
// is the rarest event; star and eliminated picks carry a cross-penalty when a
// player gets them exactly backwards. A wrong technical guess costs nothing.
const (
	handshakePoints  = 10
	starPoints       = 5
	eliminatedPoints = 5
	technicalPoints  = 3
)

// Foresight weights. A season pick made in week w is worth (11-w) times the
// base value, so a correct call in week 2 pays 9x what the same call pays in
// week 10. Season picks are only collected for weeks 2 through 10.
const (
	winnerBase         = 10
	finalistBase       = 5
	firstForesightWeek = 2
	lastForesightWeek  = 10
)

// ScoreWeek computes the point delta for every player with a pick for the
// week covered by the result. Players without a pick are simply absent from
// the returned map. The function is pure: calling it twice over the same
// inputs yields the same deltas.
func ScoreWeek(picks []model.WeeklyPick, result model.WeeklyResult) map[int64]int {
	scores := make(map[int64]int, len(picks))
	for _, p := range picks {
		if p.Week != result.Week {
			continue
		}
		scores[p.PlayerID] = scoreWeeklyPick(p, result)
	}
	return scores
}

func scoreWeeklyPick(p model.WeeklyPick, r model.WeeklyResult) int {
	score := 0

	if p.Handshake == r.Handshake {
		score += handshakePoints
	} else {
		score -= handshakePoints
	}

	if p.StarBaker == r.StarBaker {
		score += starPoints
	} else if p.StarBaker == r.EliminatedBaker {
		score -= starPoints
	}

	if p.EliminatedBaker == r.EliminatedBaker {
		score += eliminatedPoints
	} else if p.EliminatedBaker == r.StarBaker {
		score -= eliminatedPoints
	}

	if p.TechnicalWinner == r.TechnicalWinner {
		score += technicalPoints
	}

	return score
}

// ScoreSeason computes foresight deltas for every player with season-pick
// snapshots on record. Each week's snapshot is scored independently and
// summed, so a player who called the winner from week 2 onward out-earns one
// who only got there by week 9.
func ScoreSeason(picksByWeek map[int][]model.SeasonPick, result model.SeasonResult) map[int64]int {
	scores := make(map[int64]int)
	for week, picks := range picksByWeek {
		if week < firstForesightWeek || week > lastForesightWeek {
			continue
		}
		multiplier := 11 - week
		for _, p := range picks {
			delta := 0
			if p.Winner == result.Winner {
				delta += multiplier * winnerBase
			}
			if p.PicksFinalist(result.FinalistA) {
				delta += multiplier * finalistBase
			}
			if p.PicksFinalist(result.FinalistB) {
				delta += multiplier * finalistBase
			}
			scores[p.PlayerID] += delta
		}
	}
	return scores
}

// Standings recomputes the full leaderboard from history. It never reads
// stored totals, so re-running it after a correction always converges on the
// right numbers. seasonResult may be nil before the finale airs.
func Standings(players []model.Player, picks []model.WeeklyPick, seasonPicks []model.SeasonPick,
	weeklyResults []model.WeeklyResult, seasonResult *model.SeasonResult) []model.ScoreBreakdown {

	picksByWeek := make(map[int][]model.WeeklyPick)
	for _, p := range picks {
		picksByWeek[p.Week] = append(picksByWeek[p.Week], p)
	}

	weekly := make(map[int64]int)
	for _, r := range weeklyResults {
		for id, delta := range ScoreWeek(picksByWeek[r.Week], r) {
			weekly[id] += delta
		}
	}

	foresight := make(map[int64]int)
	if seasonResult != nil {
		seasonByWeek := make(map[int][]model.SeasonPick)
		for _, p := range seasonPicks {
			seasonByWeek[p.Week] = append(seasonByWeek[p.Week], p)
		}
		foresight = ScoreSeason(seasonByWeek, *seasonResult)
	}

	rows := make([]model.ScoreBreakdown, 0, len(players))
	for _, p := range players {
		row := model.ScoreBreakdown{
			PlayerID:        p.ID,
			PlayerName:      p.Name,
			WeeklyPoints:    weekly[p.ID],
			ForesightPoints: foresight[p.ID],
		}
		row.Total = row.WeeklyPoints + row.ForesightPoints
		rows = append(rows, row)
	}

	slices.SortFunc(rows, func(a, b model.ScoreBreakdown) int {
		if a.Total != b.Total {
			return b.Total - a.Total
		}
		return strings.Compare(a.PlayerName, b.PlayerName)
	})

	return rows
}
