// Package storage keeps a ledger of finished runs for the current process.
// It uses the pure-Go modernc.org/sqlite driver with an in-memory database,
// so nothing outlives the program.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Ledger records finished runs in an in-memory SQLite database.
type Ledger struct {
	db  *sql.DB
	now func() time.Time
}

// Run is a single finished run.
type Run struct {
	ID               int64
	GameID           string
	Score            int
	Ticks            int
	ShotsFired       int
	ObstaclesSpawned int
	CreatedAt        time.Time
}

// Stats contains aggregated run statistics for a game.
type Stats struct {
	GameID     string
	Runs       int
	BestScore  int
	AvgScore   float64
	TotalTicks int64
	LastRun    time.Time
}

// Open creates an empty in-memory ledger.
func Open() (*Ledger, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to ":memory:" gets its own database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	l := &Ledger{db: db, now: time.Now}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return l, nil
}

// migrate creates the schema.
func (l *Ledger) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			shots_fired INTEGER NOT NULL DEFAULT 0,
			obstacles_spawned INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);
	`
	_, err := l.db.Exec(schema)
	return err
}

// Close releases the database. All recorded runs are lost.
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
// CreatedAt is filled in when zero.
func (l *Ledger) SaveRun(r Run) (int64, error) {
	if r.GameID == "" {
		return 0, errors.New("storage: run without game id")
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = l.now()
	}

	res, err := l.db.Exec(
		`INSERT INTO runs (game_id, score, ticks, shots_fired, obstacles_spawned, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Score, r.Ticks, r.ShotsFired, r.ObstaclesSpawned, r.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns returns the best runs for a game, highest score first.
// Equal scores keep the order they were recorded in.
func (l *Ledger) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := l.db.Query(
		`SELECT id, game_id, score, ticks, shots_fired, obstacles_spawned, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created int64
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &r.Ticks, &r.ShotsFired, &r.ObstaclesSpawned, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = time.UnixMilli(created)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// GameStats aggregates the recorded runs of a game.
func (l *Ledger) GameStats(gameID string) (*Stats, error) {
	stats := &Stats{GameID: gameID}

	var last sql.NullInt64
	err := l.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(ticks), 0), MAX(created_at)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Runs, &stats.BestScore, &stats.AvgScore, &stats.TotalTicks, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	if last.Valid {
		stats.LastRun = time.UnixMilli(last.Int64)
	}
	return stats, nil
}
