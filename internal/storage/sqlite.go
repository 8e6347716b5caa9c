// Package storage keeps a ledger of finished attempts in an in-memory SQLite
// database. Nothing is written to disk: the ledger lives as long as the
// process, so the SSH server can show a leaderboard shared by every session.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultTopLimit is used when a non-positive limit is requested.
const DefaultTopLimit = 10

// Store manages the SQLite connection for the attempt ledger.
// It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Attempt is one finished run, from start to game over.
type Attempt struct {
	ID        string
	SessionID string
	Player    string
	Score     int
	Flaps     int
	Ticks     uint64
	CreatedAt time.Time
}

// Stats aggregates every recorded attempt.
type Stats struct {
	Attempts   int
	Sessions   int
	BestScore  int
	AvgScore   float64
	TotalFlaps int64
	LastPlayed time.Time
}

// Open creates a fresh in-memory ledger and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every pooled connection to ":memory:" would get its own empty database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS attempts (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			flaps INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_session ON attempts(session_id);
		CREATE INDEX IF NOT EXISTS idx_attempts_top ON attempts(score DESC, created_at);
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

// RecordAttempt stores a finished attempt and returns it with ID and
// CreatedAt filled in when they were empty.
func (s *Store) RecordAttempt(a Attempt) (Attempt, error) {
	if a.SessionID == "" {
		return Attempt{}, errors.New("storage: attempt has no session")
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now()
	}

	_, err := s.db.Exec(
		`INSERT INTO attempts (id, session_id, player, score, flaps, ticks, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.SessionID, a.Player, a.Score, a.Flaps, int64(a.Ticks), a.CreatedAt.UnixNano(),
	)
	if err != nil {
		return Attempt{}, fmt.Errorf("storage: cannot record attempt: %w", err)
	}

	return a, nil
}

// TopAttempts returns the best attempts across all sessions, highest score
// first. Ties go to the earlier attempt.
func (s *Store) TopAttempts(limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, player, score, flaps, ticks, created_at
		 FROM attempts
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var ticks, createdAt int64
		if err := rows.Scan(&a.ID, &a.SessionID, &a.Player, &a.Score, &a.Flaps, &ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		a.Ticks = uint64(ticks)
		a.CreatedAt = time.Unix(0, createdAt)
		attempts = append(attempts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return attempts, nil
}

// SessionBest returns the best score recorded for a session.
// Returns 0 if the session has no attempts.
func (s *Store) SessionBest(sessionID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM attempts WHERE session_id = ?",
		sessionID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query session best: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats returns aggregated figures over the whole ledger.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var lastPlayed sql.NullInt64

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT session_id), COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(flaps), 0), MAX(created_at)
		 FROM attempts`,
	).Scan(&st.Attempts, &st.Sessions, &st.BestScore, &st.AvgScore, &st.TotalFlaps, &lastPlayed)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	if lastPlayed.Valid {
		st.LastPlayed = time.Unix(0, lastPlayed.Int64)
	}
	return st, nil
}
