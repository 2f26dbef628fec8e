// Package store keeps the history of finished matches in sqlite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/SvenDH/hearthchess/game"
)

type Repository struct {
	Db *sql.DB
}

// Open opens (and creates if needed) the history database at path.
func Open(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	repo, err := NewRepository(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

func NewRepository(db *sql.DB) (*Repository, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS matches (
			id TEXT PRIMARY KEY,
			winner TEXT NOT NULL,
			turns INTEGER NOT NULL,
			white_health INTEGER NOT NULL,
			black_health INTEGER NOT NULL,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("error in db execution: %w", err)
	}
	return &Repository{Db: db}, nil
}

func (repo *Repository) Close() error {
	return repo.Db.Close()
}

// Match is one row of history.
type Match struct {
	Id          ulid.ULID
	Winner      game.Side
	Turns       int
	WhiteHealth int
	BlackHealth int
	Started     time.Time
	Ended       time.Time
}

func (m Match) Duration() time.Duration {
	return m.Ended.Sub(m.Started)
}

func (repo *Repository) Record(ctx context.Context, r game.Result) error {
	_, err := repo.Db.ExecContext(ctx,
		"INSERT INTO matches(id, winner, turns, white_health, black_health, started_at, ended_at) values(?, ?, ?, ?, ?, ?, ?)",
		r.Id.String(), r.Winner.String(), r.Turns, r.WhiteHealth, r.BlackHealth,
		r.Started.UnixMilli(), r.Ended.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("error in db execution: %w", err)
	}
	return nil
}

// Recent returns up to limit matches, newest first.
func (repo *Repository) Recent(ctx context.Context, limit int) ([]Match, error) {
	rows, err := repo.Db.QueryContext(ctx,
		"SELECT id, winner, turns, white_health, black_health, started_at, ended_at FROM matches ORDER BY ended_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("error in db execution: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var (
			m              Match
			id, winner     string
			started, ended int64
		)
		if err := rows.Scan(&id, &winner, &m.Turns, &m.WhiteHealth, &m.BlackHealth, &started, &ended); err != nil {
			return nil, fmt.Errorf("error in db execution: %w", err)
		}
		if m.Id, err = ulid.Parse(id); err != nil {
			return nil, fmt.Errorf("bad match id %q: %w", id, err)
		}
		m.Winner, _ = game.ParseSide(winner)
		m.Started = time.UnixMilli(started)
		m.Ended = time.UnixMilli(ended)
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// Stats counts wins per side.
func (repo *Repository) Stats(ctx context.Context) (map[game.Side]int, error) {
	rows, err := repo.Db.QueryContext(ctx, "SELECT winner, COUNT(*) FROM matches GROUP BY winner")
	if err != nil {
		return nil, fmt.Errorf("error in db execution: %w", err)
	}
	defer rows.Close()

	stats := map[game.Side]int{}
	for rows.Next() {
		var (
			winner string
			n      int
		)
		if err := rows.Scan(&winner, &n); err != nil {
			return nil, fmt.Errorf("error in db execution: %w", err)
		}
		if side, ok := game.ParseSide(winner); ok {
			stats[side] = n
		}
	}
	return stats, rows.Err()
}
