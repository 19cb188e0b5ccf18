package db

import (
	"context"

	"github.com/ejfeldman7/fantasy-gbbo/model"
)

type DB interface {
	GetPlayer(ctx context.Context, id int64) (*model.Player, error)
	GetPlayerByEmail(ctx context.Context, email string) (*model.Player, error)
	AddPlayer(ctx context.Context, p *model.Player) error
	UpdatePlayer(ctx context.Context, p *model.Player) error
	DeletePlayer(ctx context.Context, id int64) error
	ListPlayers(ctx context.Context) ([]model.Player, error)

	AddBaker(ctx context.Context, name string) (*model.Baker, error)
	// GetRoster returns every baker in the season, eliminated or not.
	GetRoster(ctx context.Context) (*model.Roster, error)
	EliminateBaker(ctx context.Context, name string, week int) error
	// DeleteBaker refuses with ErrBakerReferenced when the baker appears in
	// any stored pick or result, to preserve history.
	DeleteBaker(ctx context.Context, id int64) error

	// SavePicks upserts a player's weekly and season picks for a week in a
	// single transaction. Either pick may be nil. Last write wins until the
	// deadline; the deadline itself is enforced by the controller.
	SavePicks(ctx context.Context, weekly *model.WeeklyPick, season *model.SeasonPick) error
	GetWeeklyPick(ctx context.Context, playerID int64, week int) (*model.WeeklyPick, error)
	GetSeasonPick(ctx context.Context, playerID int64, week int) (*model.SeasonPick, error)
	ListWeeklyPicksForWeek(ctx context.Context, week int) ([]model.WeeklyPick, error)
	ListWeeklyPicks(ctx context.Context) ([]model.WeeklyPick, error)
	ListSeasonPicks(ctx context.Context) ([]model.SeasonPick, error)

	// SaveWeeklyResult records the official result for a week. It fails with
	// ErrResultExists if one was already entered: results are final.
	SaveWeeklyResult(ctx context.Context, r *model.WeeklyResult) error
	GetWeeklyResult(ctx context.Context, week int) (*model.WeeklyResult, error)
	ListWeeklyResults(ctx context.Context) ([]model.WeeklyResult, error)
	SaveSeasonResult(ctx context.Context, r *model.SeasonResult) error
	GetSeasonResult(ctx context.Context) (*model.SeasonResult, error)

	SetWeekOverride(ctx context.Context, week int, open bool) error
	GetWeekOverrides(ctx context.Context) (map[int]bool, error)

	// Reset wipes every table. Administrative only.
	Reset(ctx context.Context) error
}
