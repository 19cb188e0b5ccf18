package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ejfeldman7/fantasy-gbbo/model"
)

var (
	ErrPlayerNotFound error = errors.New("player not found")
	ErrPlayerExists   error = errors.New("a player with that email already exists")
	ErrBakerNotFound  error = errors.New("baker not found")
	ErrBakerExists    error = errors.New("a baker with that name already exists")
	// ErrBakerReferenced is returned when deleting a baker that historical
	// picks or results still point at.
	ErrBakerReferenced error = errors.New("baker is referenced by picks or results")
	ErrPickNotFound    error = errors.New("pick not found")
	ErrResultExists    error = errors.New("a result for that week was already entered")
	ErrResultNotFound  error = errors.New("result not found")
)

const uniqueViolation = "23505"

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (db *postgresDB) GetPlayer(ctx context.Context, id int64) (*model.Player, error) {
	const query = `SELECT id, name, email, created FROM players WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	return scanPlayer(row)
}

func (db *postgresDB) GetPlayerByEmail(ctx context.Context, email string) (*model.Player, error) {
	const query = `SELECT id, name, email, created FROM players WHERE email=@email`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"email": model.NormalizeEmail(email)})
	return scanPlayer(row)
}

func (db *postgresDB) AddPlayer(ctx context.Context, p *model.Player) error {
	const query = `INSERT INTO players (name, email, created)
					VALUES (@name, @email, @created)
					RETURNING id`

	p.Email = model.NormalizeEmail(p.Email)
	p.Created = db.clock.Now().UTC()
	args := pgx.NamedArgs{
		"name":    p.Name,
		"email":   p.Email,
		"created": p.Created,
	}
	if err := db.pool.QueryRow(ctx, query, args).Scan(&p.ID); err != nil {
		if isUniqueViolation(err) {
			return ErrPlayerExists
		}
		return fmt.Errorf("error inserting player: %w", err)
	}
	return nil
}

func (db *postgresDB) UpdatePlayer(ctx context.Context, p *model.Player) error {
	const query = `UPDATE players SET name=@name, email=@email WHERE id=@id`

	args := pgx.NamedArgs{
		"id":    p.ID,
		"name":  p.Name,
		"email": model.NormalizeEmail(p.Email),
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrPlayerExists
		}
		return fmt.Errorf("error updating player %d: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func (db *postgresDB) DeletePlayer(ctx context.Context, id int64) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM players WHERE id=@id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting player %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func (db *postgresDB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	const query = `SELECT id, name, email, created FROM players ORDER BY name`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing players: %w", err)
	}
	defer rows.Close()

	players := make([]model.Player, 0, 8)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var p model.Player
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("error scanning player: %w", err)
	}
	return &p, nil
}

func (db *postgresDB) AddBaker(ctx context.Context, name string) (*model.Baker, error) {
	const query = `INSERT INTO bakers (name, created) VALUES (@name, @created) RETURNING id`

	b := &model.Baker{Name: name, Created: db.clock.Now().UTC()}
	args := pgx.NamedArgs{"name": name, "created": b.Created}
	if err := db.pool.QueryRow(ctx, query, args).Scan(&b.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrBakerExists
		}
		return nil, fmt.Errorf("error inserting baker: %w", err)
	}
	return b, nil
}

func (db *postgresDB) GetRoster(ctx context.Context) (*model.Roster, error) {
	const query = `SELECT id, name, eliminated, COALESCE(elimination_week, 0), created
					FROM bakers ORDER BY id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing bakers: %w", err)
	}
	defer rows.Close()

	roster := &model.Roster{Bakers: make([]model.Baker, 0, 12)}
	for rows.Next() {
		var b model.Baker
		if err := rows.Scan(&b.ID, &b.Name, &b.Eliminated, &b.EliminationWeek, &b.Created); err != nil {
			return nil, fmt.Errorf("error scanning baker: %w", err)
		}
		roster.Bakers = append(roster.Bakers, b)
	}
	return roster, rows.Err()
}

func (db *postgresDB) EliminateBaker(ctx context.Context, name string, week int) error {
	const query = `UPDATE bakers SET eliminated=TRUE, elimination_week=@week WHERE name=@name`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"name": name, "week": week})
	if err != nil {
		return fmt.Errorf("error eliminating baker %s: %w", name, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBakerNotFound
	}
	return nil
}

func (db *postgresDB) DeleteBaker(ctx context.Context, id int64) error {
	const refQuery = `SELECT EXISTS (
						SELECT 1 FROM weekly_picks wp, bakers b
						WHERE b.id=@id AND (wp.star_baker=b.name OR wp.technical_winner=b.name OR wp.eliminated_baker=b.name)
					UNION ALL
						SELECT 1 FROM season_picks sp, bakers b
						WHERE b.id=@id AND (sp.winner=b.name OR sp.finalist_a=b.name OR sp.finalist_b=b.name)
					UNION ALL
						SELECT 1 FROM weekly_results wr, bakers b
						WHERE b.id=@id AND (wr.star_baker=b.name OR wr.technical_winner=b.name OR wr.eliminated_baker=b.name)
					)`

	var referenced bool
	if err := db.pool.QueryRow(ctx, refQuery, pgx.NamedArgs{"id": id}).Scan(&referenced); err != nil {
		return fmt.Errorf("error checking baker references: %w", err)
	}
	if referenced {
		return ErrBakerReferenced
	}

	tag, err := db.pool.Exec(ctx, `DELETE FROM bakers WHERE id=@id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting baker %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBakerNotFound
	}
	return nil
}

func (db *postgresDB) SetWeekOverride(ctx context.Context, week int, open bool) error {
	const query = `INSERT INTO week_overrides (week_number, override_open)
					VALUES (@week, @open)
					ON CONFLICT (week_number) DO UPDATE SET override_open=@open`

	_, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"week": week, "open": open})
	if err != nil {
		return fmt.Errorf("error setting override for week %d: %w", week, err)
	}
	return nil
}

func (db *postgresDB) GetWeekOverrides(ctx context.Context) (map[int]bool, error) {
	rows, err := db.pool.Query(ctx, `SELECT week_number, override_open FROM week_overrides`)
	if err != nil {
		return nil, fmt.Errorf("error listing week overrides: %w", err)
	}
	defer rows.Close()

	overrides := make(map[int]bool)
	for rows.Next() {
		var week int
		var open bool
		if err := rows.Scan(&week, &open); err != nil {
			return nil, fmt.Errorf("error scanning week override: %w", err)
		}
		overrides[week] = open
	}
	return overrides, rows.Err()
}

func (db *postgresDB) Reset(ctx context.Context) error {
	// Delete in dependency order so foreign keys never complain.
	tables := []string{"weekly_picks", "season_picks", "weekly_results", "season_results", "week_overrides", "bakers", "players"}
	return pgx.BeginFunc(ctx, db.pool, func(tx pgx.Tx) error {
		for _, t := range tables {
			if _, err := tx.Exec(ctx, "DELETE FROM "+t); err != nil {
				return fmt.Errorf("error wiping %s: %w", t, err)
			}
		}
		return nil
	})
}
