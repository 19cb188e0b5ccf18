package controller

import (
	"context"
	"errors"
	"log"

	"github.com/ejfeldman7/fantasy-gbbo/db"
	"github.com/ejfeldman7/fantasy-gbbo/league"
	"github.com/ejfeldman7/fantasy-gbbo/model"
)

// Standings recomputes the leaderboard from the full pick and result history.
// Nothing is cached or incremented in place, so entering a late correction in
// the store and recomputing always produces consistent totals.
func (c *controller) Standings(ctx context.Context) ([]model.ScoreBreakdown, error) {
	players, err := c.db.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	picks, err := c.db.ListWeeklyPicks(ctx)
	if err != nil {
		return nil, err
	}
	seasonPicks, err := c.db.ListSeasonPicks(ctx)
	if err != nil {
		return nil, err
	}
	results, err := c.db.ListWeeklyResults(ctx)
	if err != nil {
		return nil, err
	}

	seasonResult, err := c.db.GetSeasonResult(ctx)
	if err != nil {
		if !errors.Is(err, db.ErrResultNotFound) {
			return nil, err
		}
		seasonResult = nil
	}

	return league.Standings(players, picks, seasonPicks, results, seasonResult), nil
}

// ExportBackup dumps every entity for portable JSON backup.
func (c *controller) ExportBackup(ctx context.Context) (*model.Backup, error) {
	b := &model.Backup{Timestamp: c.clock.Now().UTC()}

	var err error
	if b.Players, err = c.db.ListPlayers(ctx); err != nil {
		return nil, err
	}
	roster, err := c.db.GetRoster(ctx)
	if err != nil {
		return nil, err
	}
	b.Bakers = roster.Bakers
	if b.WeeklyPicks, err = c.db.ListWeeklyPicks(ctx); err != nil {
		return nil, err
	}
	if b.SeasonPicks, err = c.db.ListSeasonPicks(ctx); err != nil {
		return nil, err
	}
	if b.WeeklyResults, err = c.db.ListWeeklyResults(ctx); err != nil {
		return nil, err
	}
	if b.SeasonResult, err = c.db.GetSeasonResult(ctx); err != nil {
		if !errors.Is(err, db.ErrResultNotFound) {
			return nil, err
		}
		b.SeasonResult = nil
	}

	return b, nil
}

// ResetAll wipes the league. There is deliberately no undo.
func (c *controller) ResetAll(ctx context.Context) error {
	log.Printf("resetting all league data")
	return c.db.Reset(ctx)
}
