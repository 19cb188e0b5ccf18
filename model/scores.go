package model

import "time"

// ScoreBreakdown is one leaderboard row. It is always recomputed from the
// full pick/result history, never stored.
type ScoreBreakdown struct {
	PlayerID        int64
	PlayerName      string
	WeeklyPoints    int
	ForesightPoints int
	Total           int
}

// Backup is a portable dump of every entity in the league, for JSON export.
type Backup struct {
	Players       []Player       `json:"players"`
	Bakers        []Baker        `json:"bakers"`
	WeeklyPicks   []WeeklyPick   `json:"weekly_picks"`
	SeasonPicks   []SeasonPick   `json:"season_picks"`
	WeeklyResults []WeeklyResult `json:"weekly_results"`
	SeasonResult  *SeasonResult  `json:"season_result,omitempty"`
	Timestamp     time.Time      `json:"timestamp"`
}
