package controller

import (
	"context"
	"errors"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/ejfeldman7/fantasy-gbbo/config"
	"github.com/ejfeldman7/fantasy-gbbo/db"
	"github.com/ejfeldman7/fantasy-gbbo/league"
	"github.com/ejfeldman7/fantasy-gbbo/model"
)

var (
	// ErrDeadlinePassed is returned when a submission arrives for a locked or
	// resulted week.
	ErrDeadlinePassed error = errors.New("the submission deadline for this week has passed")
	// ErrUnknownWeek is returned when a week number is not part of the
	// configured season schedule.
	ErrUnknownWeek error = errors.New("week is not part of the season schedule")
	// ErrEmailNotAllowed is returned when registration is restricted to an
	// allow-list and the email is not on it.
	ErrEmailNotAllowed error = errors.New("email is not on the league allow-list")
)

// WeekInfo is the deadline-policy view of one week, for listing which weeks
// currently accept picks.
type WeekInfo struct {
	Week     int              `json:"week"`
	Label    string           `json:"label"`
	Deadline time.Time        `json:"deadline"`
	Status   league.WeekState `json:"status"`
	Override bool             `json:"override"`
}

// RevealedWeek is one locked-or-resulted week's picks, shown with player
// names in history views.
type RevealedWeek struct {
	Week        int                 `json:"week"`
	Label       string              `json:"label"`
	Result      *model.WeeklyResult `json:"result,omitempty"`
	WeeklyPicks []NamedWeeklyPick   `json:"weekly_picks"`
	SeasonPicks []NamedSeasonPick   `json:"season_picks"`
}

type NamedWeeklyPick struct {
	PlayerName string `json:"player_name"`
	model.WeeklyPick
}

type NamedSeasonPick struct {
	PlayerName string `json:"player_name"`
	model.SeasonPick
}

// C encapsulates business logic without worrying about any web layers
type C interface {
	RegisterPlayer(ctx context.Context, name, email string) (*model.Player, error)
	GetPlayerByEmail(ctx context.Context, email string) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]model.Player, error)
	UpdatePlayer(ctx context.Context, id int64, name, email string) error
	DeletePlayer(ctx context.Context, id int64) error

	AddBaker(ctx context.Context, name string) (*model.Baker, error)
	GetRoster(ctx context.Context) (*model.Roster, error)
	DeleteBaker(ctx context.Context, id int64) error

	// SubmitPicks validates and stores a player's picks for a week. The
	// returned strings are non-blocking warnings about contradictory picks.
	SubmitPicks(ctx context.Context, email string, week int, weekly *model.WeeklyPick, season *model.SeasonPick) ([]string, error)
	GetPicks(ctx context.Context, email string, week int) (*model.WeeklyPick, *model.SeasonPick, error)

	WeekStatus(ctx context.Context, week int) (league.WeekState, error)
	Weeks(ctx context.Context) ([]WeekInfo, error)
	SetWeekOverride(ctx context.Context, week int, open bool) error

	RecordWeeklyResult(ctx context.Context, r *model.WeeklyResult) error
	RecordSeasonResult(ctx context.Context, r *model.SeasonResult) error

	Standings(ctx context.Context) ([]model.ScoreBreakdown, error)
	// RevealedPicks returns pick history for every week whose deadline has
	// passed. Open weeks stay hidden so nobody can copy homework.
	RevealedPicks(ctx context.Context) ([]RevealedWeek, error)

	ExportBackup(ctx context.Context) (*model.Backup, error)
	ResetAll(ctx context.Context) error
}

type controller struct {
	clock  clock.Clock
	db     db.DB
	season *config.Season
}

func New(clock clock.Clock, db db.DB, season *config.Season) (C, error) {
	if season == nil {
		return nil, errors.New("a season config is required")
	}
	c := &controller{
		clock:  clock,
		db:     db,
		season: season,
	}
	return c, nil
}

// weekStatus applies the deadline policy for a single week using the
// injected clock, the persisted override flag, and result presence.
func (c *controller) weekStatus(ctx context.Context, week *config.Week) (league.WeekState, error) {
	hasResult, err := c.hasWeeklyResult(ctx, week.Number)
	if err != nil {
		return "", err
	}

	overrides, err := c.db.GetWeekOverrides(ctx)
	if err != nil {
		return "", err
	}

	return league.Status(week.Deadline, c.clock.Now(), hasResult, overrides[week.Number]), nil
}

func (c *controller) hasWeeklyResult(ctx context.Context, week int) (bool, error) {
	_, err := c.db.GetWeeklyResult(ctx, week)
	if err != nil {
		if errors.Is(err, db.ErrResultNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
