package controller

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ejfeldman7/fantasy-gbbo/db"
	"github.com/ejfeldman7/fantasy-gbbo/model"
)

// RecordWeeklyResult stores the official result for a week and marks the
// eliminated baker. Results are entered once; corrections are a manual
// administrative job, not an API.
func (c *controller) RecordWeeklyResult(ctx context.Context, r *model.WeeklyResult) error {
	if c.season.WeekByNumber(r.Week) == nil {
		return ErrUnknownWeek
	}

	roster, err := c.db.GetRoster(ctx)
	if err != nil {
		return err
	}
	if err := resultNamesOnRoster(roster, r.StarBaker, r.TechnicalWinner, r.EliminatedBaker); err != nil {
		return err
	}

	if err := c.db.SaveWeeklyResult(ctx, r); err != nil {
		return err
	}

	if err := c.db.EliminateBaker(ctx, r.EliminatedBaker, r.Week); err != nil {
		return fmt.Errorf("result saved but error marking %s eliminated: %w", r.EliminatedBaker, err)
	}

	log.Printf("recorded result for week %d: star=%s technical=%s eliminated=%s handshake=%v",
		r.Week, r.StarBaker, r.TechnicalWinner, r.EliminatedBaker, r.Handshake)
	return nil
}

// RecordSeasonResult stores the finale outcome, after which standings include
// foresight points for every stored season-pick snapshot.
func (c *controller) RecordSeasonResult(ctx context.Context, r *model.SeasonResult) error {
	if r.Winner == r.FinalistA || r.Winner == r.FinalistB || r.FinalistA == r.FinalistB {
		return errors.New("the winner and finalists must be three different bakers")
	}

	roster, err := c.db.GetRoster(ctx)
	if err != nil {
		return err
	}
	if err := resultNamesOnRoster(roster, r.Winner, r.FinalistA, r.FinalistB); err != nil {
		return err
	}

	if err := c.db.SaveSeasonResult(ctx, r); err != nil {
		return err
	}

	log.Printf("recorded season result: winner=%s finalists=%s, %s", r.Winner, r.FinalistA, r.FinalistB)
	return nil
}

func resultNamesOnRoster(roster *model.Roster, names ...string) error {
	all := roster.AllNames()
	for _, name := range names {
		found := false
		for _, r := range all {
			if r == name {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %s", db.ErrBakerNotFound, name)
		}
	}
	return nil
}
