package mockdb

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ejfeldman7/fantasy-gbbo/model"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetPlayer(ctx context.Context, id int64) (*model.Player, error) {
	args := db.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (db *DB) GetPlayerByEmail(ctx context.Context, email string) (*model.Player, error) {
	args := db.Called(ctx, email)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (db *DB) AddPlayer(ctx context.Context, p *model.Player) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) UpdatePlayer(ctx context.Context, p *model.Player) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) DeletePlayer(ctx context.Context, id int64) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := db.Called(ctx)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) AddBaker(ctx context.Context, name string) (*model.Baker, error) {
	args := db.Called(ctx, name)

	var b *model.Baker
	if args.Get(0) != nil {
		b = args.Get(0).(*model.Baker)
	}
	return b, args.Error(1)
}

func (db *DB) GetRoster(ctx context.Context) (*model.Roster, error) {
	args := db.Called(ctx)

	var r *model.Roster
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Roster)
	}
	return r, args.Error(1)
}

func (db *DB) EliminateBaker(ctx context.Context, name string, week int) error {
	args := db.Called(ctx, name, week)
	return args.Error(0)
}

func (db *DB) DeleteBaker(ctx context.Context, id int64) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) SavePicks(ctx context.Context, weekly *model.WeeklyPick, season *model.SeasonPick) error {
	args := db.Called(ctx, weekly, season)
	return args.Error(0)
}

func (db *DB) GetWeeklyPick(ctx context.Context, playerID int64, week int) (*model.WeeklyPick, error) {
	args := db.Called(ctx, playerID, week)

	var p *model.WeeklyPick
	if args.Get(0) != nil {
		p = args.Get(0).(*model.WeeklyPick)
	}
	return p, args.Error(1)
}

func (db *DB) GetSeasonPick(ctx context.Context, playerID int64, week int) (*model.SeasonPick, error) {
	args := db.Called(ctx, playerID, week)

	var p *model.SeasonPick
	if args.Get(0) != nil {
		p = args.Get(0).(*model.SeasonPick)
	}
	return p, args.Error(1)
}

func (db *DB) ListWeeklyPicksForWeek(ctx context.Context, week int) ([]model.WeeklyPick, error) {
	args := db.Called(ctx, week)

	var r []model.WeeklyPick
	if args.Get(0) != nil {
		r = args.Get(0).([]model.WeeklyPick)
	}
	return r, args.Error(1)
}

func (db *DB) ListWeeklyPicks(ctx context.Context) ([]model.WeeklyPick, error) {
	args := db.Called(ctx)

	var r []model.WeeklyPick
	if args.Get(0) != nil {
		r = args.Get(0).([]model.WeeklyPick)
	}
	return r, args.Error(1)
}

func (db *DB) ListSeasonPicks(ctx context.Context) ([]model.SeasonPick, error) {
	args := db.Called(ctx)

	var r []model.SeasonPick
	if args.Get(0) != nil {
		r = args.Get(0).([]model.SeasonPick)
	}
	return r, args.Error(1)
}

func (db *DB) SaveWeeklyResult(ctx context.Context, r *model.WeeklyResult) error {
	args := db.Called(ctx, r)
	return args.Error(0)
}

func (db *DB) GetWeeklyResult(ctx context.Context, week int) (*model.WeeklyResult, error) {
	args := db.Called(ctx, week)

	var r *model.WeeklyResult
	if args.Get(0) != nil {
		r = args.Get(0).(*model.WeeklyResult)
	}
	return r, args.Error(1)
}

func (db *DB) ListWeeklyResults(ctx context.Context) ([]model.WeeklyResult, error) {
	args := db.Called(ctx)

	var r []model.WeeklyResult
	if args.Get(0) != nil {
		r = args.Get(0).([]model.WeeklyResult)
	}
	return r, args.Error(1)
}

func (db *DB) SaveSeasonResult(ctx context.Context, r *model.SeasonResult) error {
	args := db.Called(ctx, r)
	return args.Error(0)
}

func (db *DB) GetSeasonResult(ctx context.Context) (*model.SeasonResult, error) {
	args := db.Called(ctx)

	var r *model.SeasonResult
	if args.Get(0) != nil {
		r = args.Get(0).(*model.SeasonResult)
	}
	return r, args.Error(1)
}

func (db *DB) SetWeekOverride(ctx context.Context, week int, open bool) error {
	args := db.Called(ctx, week, open)
	return args.Error(0)
}

func (db *DB) GetWeekOverrides(ctx context.Context) (map[int]bool, error) {
	args := db.Called(ctx)

	var r map[int]bool
	if args.Get(0) != nil {
		r = args.Get(0).(map[int]bool)
	}
	return r, args.Error(1)
}

func (db *DB) Reset(ctx context.Context) error {
	args := db.Called(ctx)
	return args.Error(0)
}
