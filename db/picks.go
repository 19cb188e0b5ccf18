package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ejfeldman7/fantasy-gbbo/model"
)

// SavePicks upserts the weekly and season picks in one transaction so a
// resubmission can never leave the two halves from different submissions.
func (db *postgresDB) SavePicks(ctx context.Context, weekly *model.WeeklyPick, season *model.SeasonPick) error {
	now := db.clock.Now().UTC()

	return pgx.BeginFunc(ctx, db.pool, func(tx pgx.Tx) error {
		if weekly != nil {
			const query = `INSERT INTO weekly_picks (player_id, week_number, star_baker, technical_winner, eliminated_baker, handshake, submitted)
							VALUES (@player_id, @week, @star, @technical, @eliminated, @handshake, @submitted)
							ON CONFLICT (player_id, week_number) DO UPDATE
								SET star_baker=@star, technical_winner=@technical, eliminated_baker=@eliminated,
									handshake=@handshake, submitted=@submitted`

			weekly.Submitted = now
			args := pgx.NamedArgs{
				"player_id":  weekly.PlayerID,
				"week":       weekly.Week,
				"star":       weekly.StarBaker,
				"technical":  weekly.TechnicalWinner,
				"eliminated": weekly.EliminatedBaker,
				"handshake":  weekly.Handshake,
				"submitted":  weekly.Submitted,
			}
			if _, err := tx.Exec(ctx, query, args); err != nil {
				return fmt.Errorf("error saving weekly pick: %w", err)
			}
		}

		if season != nil {
			const query = `INSERT INTO season_picks (player_id, week_number, winner, finalist_a, finalist_b, submitted)
							VALUES (@player_id, @week, @winner, @finalist_a, @finalist_b, @submitted)
							ON CONFLICT (player_id, week_number) DO UPDATE
								SET winner=@winner, finalist_a=@finalist_a, finalist_b=@finalist_b, submitted=@submitted`

			season.Submitted = now
			args := pgx.NamedArgs{
				"player_id":  season.PlayerID,
				"week":       season.Week,
				"winner":     season.Winner,
				"finalist_a": season.FinalistA,
				"finalist_b": season.FinalistB,
				"submitted":  season.Submitted,
			}
			if _, err := tx.Exec(ctx, query, args); err != nil {
				return fmt.Errorf("error saving season pick: %w", err)
			}
		}

		return nil
	})
}

func (db *postgresDB) GetWeeklyPick(ctx context.Context, playerID int64, week int) (*model.WeeklyPick, error) {
	const query = `SELECT player_id, week_number, star_baker, technical_winner, eliminated_baker, handshake, submitted
					FROM weekly_picks WHERE player_id=@player_id AND week_number=@week`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"player_id": playerID, "week": week})
	p, err := scanWeeklyPick(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPickNotFound
		}
		return nil, fmt.Errorf("error getting weekly pick: %w", err)
	}
	return p, nil
}

func (db *postgresDB) GetSeasonPick(ctx context.Context, playerID int64, week int) (*model.SeasonPick, error) {
	const query = `SELECT player_id, week_number, winner, finalist_a, finalist_b, submitted
					FROM season_picks WHERE player_id=@player_id AND week_number=@week`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"player_id": playerID, "week": week})
	p, err := scanSeasonPick(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPickNotFound
		}
		return nil, fmt.Errorf("error getting season pick: %w", err)
	}
	return p, nil
}

func (db *postgresDB) ListWeeklyPicksForWeek(ctx context.Context, week int) ([]model.WeeklyPick, error) {
	const query = `SELECT player_id, week_number, star_baker, technical_winner, eliminated_baker, handshake, submitted
					FROM weekly_picks WHERE week_number=@week ORDER BY player_id`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"week": week})
	if err != nil {
		return nil, fmt.Errorf("error listing weekly picks for week %d: %w", week, err)
	}
	defer rows.Close()
	return collectWeeklyPicks(rows)
}

func (db *postgresDB) ListWeeklyPicks(ctx context.Context) ([]model.WeeklyPick, error) {
	const query = `SELECT player_id, week_number, star_baker, technical_winner, eliminated_baker, handshake, submitted
					FROM weekly_picks ORDER BY week_number, player_id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing weekly picks: %w", err)
	}
	defer rows.Close()
	return collectWeeklyPicks(rows)
}

func (db *postgresDB) ListSeasonPicks(ctx context.Context) ([]model.SeasonPick, error) {
	const query = `SELECT player_id, week_number, winner, finalist_a, finalist_b, submitted
					FROM season_picks ORDER BY week_number, player_id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing season picks: %w", err)
	}
	defer rows.Close()

	picks := make([]model.SeasonPick, 0, 16)
	for rows.Next() {
		p, err := scanSeasonPick(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning season pick: %w", err)
		}
		picks = append(picks, *p)
	}
	return picks, rows.Err()
}

func collectWeeklyPicks(rows pgx.Rows) ([]model.WeeklyPick, error) {
	picks := make([]model.WeeklyPick, 0, 16)
	for rows.Next() {
		p, err := scanWeeklyPick(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning weekly pick: %w", err)
		}
		picks = append(picks, *p)
	}
	return picks, rows.Err()
}

func scanWeeklyPick(row pgx.Row) (*model.WeeklyPick, error) {
	var p model.WeeklyPick
	err := row.Scan(&p.PlayerID, &p.Week, &p.StarBaker, &p.TechnicalWinner, &p.EliminatedBaker, &p.Handshake, &p.Submitted)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanSeasonPick(row pgx.Row) (*model.SeasonPick, error) {
	var p model.SeasonPick
	err := row.Scan(&p.PlayerID, &p.Week, &p.Winner, &p.FinalistA, &p.FinalistB, &p.Submitted)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
