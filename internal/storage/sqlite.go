// Package storage keeps the run ledger: every finished run of every widget
// hosted by this process. It uses the pure-Go modernc.org/sqlite driver on an
// in-memory database, so nothing outlives the process.
package storage

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the in-memory SQLite ledger.
type Store struct {
	db *sql.DB
	mu sync.Mutex // Serializes submit so the high score check and insert are atomic
}

// Run is a single finished game.
type Run struct {
	ID        int64
	Session   string
	Score     int
	CreatedAt time.Time
}

// Stats aggregates the ledger.
type Stats struct {
	Runs       int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Open creates an empty in-memory ledger.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_session ON runs(session);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. The ledger is gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SubmitRun records a run and reports the resulting high score and whether
// this run raised it.
func (s *Store) SubmitRun(session string, score int) (best int, improved bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, err := s.highScore()
	if err != nil {
		return 0, false, err
	}
	if err := s.insert(session, score); err != nil {
		return prev, false, err
	}
	if score > prev {
		return score, true, nil
	}
	return prev, false, nil
}

func (s *Store) insert(session string, score int) error {
	_, err := s.db.Exec(
		"INSERT INTO runs (session, score) VALUES (?, ?)",
		session, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record run: %w", err)
	}
	return nil
}

// HighScore returns the best recorded score, or 0 for an empty ledger.
func (s *Store) HighScore() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highScore()
}

func (s *Store) highScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// TopRuns returns the best runs across all sessions, highest first.
// Ties keep insertion order.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, session, score, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// SessionRuns returns the runs of one session, most recent first.
func (s *Store) SessionRuns(session string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, session, score, created_at
		 FROM runs
		 WHERE session = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		session, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Session, &r.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Stats returns aggregated numbers over the whole ledger.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&st.Runs, &st.HighScore, &st.AvgScore, &lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.LastPlayed = parseTime(lastPlayed)

	return st, nil
}

// parseTime handles both time.Time and the driver's text form.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
