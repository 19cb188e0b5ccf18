package mockcontroller

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ejfeldman7/fantasy-gbbo/controller"
	"github.com/ejfeldman7/fantasy-gbbo/league"
	"github.com/ejfeldman7/fantasy-gbbo/model"
)

type C struct {
	mock.Mock
}

func (c *C) RegisterPlayer(ctx context.Context, name, email string) (*model.Player, error) {
	args := c.Called(ctx, name, email)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (c *C) GetPlayerByEmail(ctx context.Context, email string) (*model.Player, error) {
	args := c.Called(ctx, email)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (c *C) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := c.Called(ctx)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (c *C) UpdatePlayer(ctx context.Context, id int64, name, email string) error {
	args := c.Called(ctx, id, name, email)
	return args.Error(0)
}

func (c *C) DeletePlayer(ctx context.Context, id int64) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) AddBaker(ctx context.Context, name string) (*model.Baker, error) {
	args := c.Called(ctx, name)

	var b *model.Baker
	if args.Get(0) != nil {
		b = args.Get(0).(*model.Baker)
	}
	return b, args.Error(1)
}

func (c *C) GetRoster(ctx context.Context) (*model.Roster, error) {
	args := c.Called(ctx)

	var r *model.Roster
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Roster)
	}
	return r, args.Error(1)
}

func (c *C) DeleteBaker(ctx context.Context, id int64) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) SubmitPicks(ctx context.Context, email string, week int, weekly *model.WeeklyPick, season *model.SeasonPick) ([]string, error) {
	args := c.Called(ctx, email, week, weekly, season)

	var w []string
	if args.Get(0) != nil {
		w = args.Get(0).([]string)
	}
	return w, args.Error(1)
}

func (c *C) GetPicks(ctx context.Context, email string, week int) (*model.WeeklyPick, *model.SeasonPick, error) {
	args := c.Called(ctx, email, week)

	var weekly *model.WeeklyPick
	if args.Get(0) != nil {
		weekly = args.Get(0).(*model.WeeklyPick)
	}
	var season *model.SeasonPick
	if args.Get(1) != nil {
		season = args.Get(1).(*model.SeasonPick)
	}
	return weekly, season, args.Error(2)
}

func (c *C) WeekStatus(ctx context.Context, week int) (league.WeekState, error) {
	args := c.Called(ctx, week)
	return args.Get(0).(league.WeekState), args.Error(1)
}

func (c *C) Weeks(ctx context.Context) ([]controller.WeekInfo, error) {
	args := c.Called(ctx)

	var w []controller.WeekInfo
	if args.Get(0) != nil {
		w = args.Get(0).([]controller.WeekInfo)
	}
	return w, args.Error(1)
}

func (c *C) SetWeekOverride(ctx context.Context, week int, open bool) error {
	args := c.Called(ctx, week, open)
	return args.Error(0)
}

func (c *C) RecordWeeklyResult(ctx context.Context, r *model.WeeklyResult) error {
	args := c.Called(ctx, r)
	return args.Error(0)
}

func (c *C) RecordSeasonResult(ctx context.Context, r *model.SeasonResult) error {
	args := c.Called(ctx, r)
	return args.Error(0)
}

func (c *C) Standings(ctx context.Context) ([]model.ScoreBreakdown, error) {
	args := c.Called(ctx)

	var s []model.ScoreBreakdown
	if args.Get(0) != nil {
		s = args.Get(0).([]model.ScoreBreakdown)
	}
	return s, args.Error(1)
}

func (c *C) RevealedPicks(ctx context.Context) ([]controller.RevealedWeek, error) {
	args := c.Called(ctx)

	var r []controller.RevealedWeek
	if args.Get(0) != nil {
		r = args.Get(0).([]controller.RevealedWeek)
	}
	return r, args.Error(1)
}

func (c *C) ExportBackup(ctx context.Context) (*model.Backup, error) {
	args := c.Called(ctx)

	var b *model.Backup
	if args.Get(0) != nil {
		b = args.Get(0).(*model.Backup)
	}
	return b, args.Error(1)
}

func (c *C) ResetAll(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}
