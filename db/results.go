package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ejfeldman7/fantasy-gbbo/model"
)

func (db *postgresDB) SaveWeeklyResult(ctx context.Context, r *model.WeeklyResult) error {
	const query = `INSERT INTO weekly_results (week_number, star_baker, technical_winner, eliminated_baker, handshake, entered)
					VALUES (@week, @star, @technical, @eliminated, @handshake, @entered)`

	r.Entered = db.clock.Now().UTC()
	args := pgx.NamedArgs{
		"week":       r.Week,
		"star":       r.StarBaker,
		"technical":  r.TechnicalWinner,
		"eliminated": r.EliminatedBaker,
		"handshake":  r.Handshake,
		"entered":    r.Entered,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		if isUniqueViolation(err) {
			return ErrResultExists
		}
		return fmt.Errorf("error saving result for week %d: %w", r.Week, err)
	}
	return nil
}

func (db *postgresDB) GetWeeklyResult(ctx context.Context, week int) (*model.WeeklyResult, error) {
	const query = `SELECT week_number, star_baker, technical_winner, eliminated_baker, handshake, entered
					FROM weekly_results WHERE week_number=@week`

	var r model.WeeklyResult
	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"week": week})
	err := row.Scan(&r.Week, &r.StarBaker, &r.TechnicalWinner, &r.EliminatedBaker, &r.Handshake, &r.Entered)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("error getting result for week %d: %w", week, err)
	}
	return &r, nil
}

func (db *postgresDB) ListWeeklyResults(ctx context.Context) ([]model.WeeklyResult, error) {
	const query = `SELECT week_number, star_baker, technical_winner, eliminated_baker, handshake, entered
					FROM weekly_results ORDER BY week_number`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing weekly results: %w", err)
	}
	defer rows.Close()

	results := make([]model.WeeklyResult, 0, 10)
	for rows.Next() {
		var r model.WeeklyResult
		if err := rows.Scan(&r.Week, &r.StarBaker, &r.TechnicalWinner, &r.EliminatedBaker, &r.Handshake, &r.Entered); err != nil {
			return nil, fmt.Errorf("error scanning weekly result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// SaveSeasonResult stores the finale outcome. The season_results table keeps
// at most one row, enforced by its constant-key primary key.
func (db *postgresDB) SaveSeasonResult(ctx context.Context, r *model.SeasonResult) error {
	const query = `INSERT INTO season_results (only_row, winner, finalist_a, finalist_b, entered)
					VALUES (TRUE, @winner, @finalist_a, @finalist_b, @entered)`

	r.Entered = db.clock.Now().UTC()
	args := pgx.NamedArgs{
		"winner":     r.Winner,
		"finalist_a": r.FinalistA,
		"finalist_b": r.FinalistB,
		"entered":    r.Entered,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		if isUniqueViolation(err) {
			return ErrResultExists
		}
		return fmt.Errorf("error saving season result: %w", err)
	}
	return nil
}

func (db *postgresDB) GetSeasonResult(ctx context.Context) (*model.SeasonResult, error) {
	const query = `SELECT winner, finalist_a, finalist_b, entered FROM season_results LIMIT 1`

	var r model.SeasonResult
	err := db.pool.QueryRow(ctx, query).Scan(&r.Winner, &r.FinalistA, &r.FinalistB, &r.Entered)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("error getting season result: %w", err)
	}
	return &r, nil
}
