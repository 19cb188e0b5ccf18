package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/ejfeldman7/fantasy-gbbo/db"
	"github.com/ejfeldman7/fantasy-gbbo/league"
	"github.com/ejfeldman7/fantasy-gbbo/model"
)

func (c *controller) SubmitPicks(ctx context.Context, email string, week int, weekly *model.WeeklyPick, season *model.SeasonPick) ([]string, error) {
	if weekly == nil && season == nil {
		return nil, errors.New("no picks were submitted")
	}

	w := c.season.WeekByNumber(week)
	if w == nil {
		return nil, ErrUnknownWeek
	}

	player, err := c.db.GetPlayerByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	hasResult, err := c.hasWeeklyResult(ctx, week)
	if err != nil {
		return nil, err
	}
	overrides, err := c.db.GetWeekOverrides(ctx)
	if err != nil {
		return nil, err
	}
	if !league.CanSubmit(w.Deadline, c.clock.Now(), hasResult, overrides[week]) {
		return nil, ErrDeadlinePassed
	}

	roster, err := c.db.GetRoster(ctx)
	if err != nil {
		return nil, err
	}

	if weekly != nil {
		weekly.PlayerID = player.ID
		weekly.Week = week
	}
	if season != nil {
		season.PlayerID = player.ID
		season.Week = week
	}

	errs, warnings := league.Validate(weekly, season, roster)
	if len(errs) > 0 {
		return warnings, errors.Join(errs...)
	}

	if err := c.db.SavePicks(ctx, weekly, season); err != nil {
		return warnings, fmt.Errorf("error saving picks for %s week %d: %w", email, week, err)
	}
	return warnings, nil
}

func (c *controller) GetPicks(ctx context.Context, email string, week int) (*model.WeeklyPick, *model.SeasonPick, error) {
	player, err := c.db.GetPlayerByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	weekly, err := c.db.GetWeeklyPick(ctx, player.ID, week)
	if err != nil && !errors.Is(err, db.ErrPickNotFound) {
		return nil, nil, err
	}
	season, err := c.db.GetSeasonPick(ctx, player.ID, week)
	if err != nil && !errors.Is(err, db.ErrPickNotFound) {
		return nil, nil, err
	}

	if weekly == nil && season == nil {
		return nil, nil, db.ErrPickNotFound
	}
	return weekly, season, nil
}

func (c *controller) WeekStatus(ctx context.Context, week int) (league.WeekState, error) {
	w := c.season.WeekByNumber(week)
	if w == nil {
		return "", ErrUnknownWeek
	}
	return c.weekStatus(ctx, w)
}

func (c *controller) Weeks(ctx context.Context) ([]WeekInfo, error) {
	overrides, err := c.db.GetWeekOverrides(ctx)
	if err != nil {
		return nil, err
	}
	results, err := c.db.ListWeeklyResults(ctx)
	if err != nil {
		return nil, err
	}
	resulted := make(map[int]bool, len(results))
	for _, r := range results {
		resulted[r.Week] = true
	}

	now := c.clock.Now()
	weeks := make([]WeekInfo, 0, len(c.season.Weeks))
	for _, w := range c.season.Weeks {
		weeks = append(weeks, WeekInfo{
			Week:     w.Number,
			Label:    w.DisplayLabel(),
			Deadline: w.Deadline,
			Status:   league.Status(w.Deadline, now, resulted[w.Number], overrides[w.Number]),
			Override: overrides[w.Number],
		})
	}
	return weeks, nil
}

func (c *controller) SetWeekOverride(ctx context.Context, week int, open bool) error {
	if c.season.WeekByNumber(week) == nil {
		return ErrUnknownWeek
	}
	return c.db.SetWeekOverride(ctx, week, open)
}

func (c *controller) RevealedPicks(ctx context.Context) ([]RevealedWeek, error) {
	players, err := c.db.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}

	weeklyPicks, err := c.db.ListWeeklyPicks(ctx)
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
	resultByWeek := make(map[int]*model.WeeklyResult, len(results))
	for i := range results {
		resultByWeek[results[i].Week] = &results[i]
	}
	overrides, err := c.db.GetWeekOverrides(ctx)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	revealed := make([]RevealedWeek, 0, len(c.season.Weeks))
	for _, w := range c.season.Weeks {
		if !league.Revealed(w.Deadline, now, resultByWeek[w.Number] != nil, overrides[w.Number]) {
			continue
		}

		rw := RevealedWeek{
			Week:        w.Number,
			Label:       w.DisplayLabel(),
			Result:      resultByWeek[w.Number],
			WeeklyPicks: make([]NamedWeeklyPick, 0, 8),
			SeasonPicks: make([]NamedSeasonPick, 0, 8),
		}
		for _, p := range weeklyPicks {
			if p.Week == w.Number {
				rw.WeeklyPicks = append(rw.WeeklyPicks, NamedWeeklyPick{PlayerName: names[p.PlayerID], WeeklyPick: p})
			}
		}
		for _, p := range seasonPicks {
			if p.Week == w.Number {
				rw.SeasonPicks = append(rw.SeasonPicks, NamedSeasonPick{PlayerName: names[p.PlayerID], SeasonPick: p})
			}
		}
		revealed = append(revealed, rw)
	}
	return revealed, nil
}
