// Package storage provides SQLite-based persistence for level progress.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/rgballs/internal/engine"
)

// Store manages the SQLite database connection for progress persistence.
type Store struct {
	db *sql.DB
}

// LevelResult is the best recorded win of one level.
type LevelResult struct {
	Level     int
	Stars     engine.Stars
	Steps     int
	UpdatedAt time.Time
}

// Attempt is one finished run of a level.
type Attempt struct {
	ID        int64
	RunID     string
	Level     int
	Outcome   engine.Outcome
	Stars     engine.Stars
	Steps     int
	CreatedAt time.Time
}

// LevelStats aggregates the attempt log of one level.
type LevelStats struct {
	Level    int
	Attempts int
	Wins     int
	Losses   int
	Retries  int
	BestRun  int // Fewest steps in a win, 0 if never won
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS level_results (
			level_index INTEGER PRIMARY KEY,
			stars TEXT NOT NULL,
			steps INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			level_index INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			stars TEXT NOT NULL,
			steps INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_level ON attempts(level_index);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordWin stores a winning result for a level. The first win of a level
// is always stored and unlocks the next one. A later win replaces the
// stored result only when the stored one earned just the completion star
// or the new one earns all three. It reports whether anything was written.
func (s *Store) RecordWin(level int, stars engine.Stars, steps int) (bool, error) {
	if !stars[0] {
		return false, fmt.Errorf("storage: cannot record win without completion star: %s", stars)
	}

	old, err := s.Result(level)
	if err != nil {
		return false, err
	}

	switch {
	case old == nil:
		_, err = s.db.Exec(
			"INSERT INTO level_results (level_index, stars, steps) VALUES (?, ?, ?)",
			level, stars.String(), steps,
		)
	case old.Stars == (engine.Stars{true, false, false}) || stars == engine.PerfectStars:
		_, err = s.db.Exec(
			"UPDATE level_results SET stars = ?, steps = ?, updated_at = CURRENT_TIMESTAMP WHERE level_index = ?",
			stars.String(), steps, level,
		)
	default:
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("storage: cannot save result: %w", err)
	}
	return true, nil
}

// Result returns the stored result of a level, or nil if it was never won.
func (s *Store) Result(level int) (*LevelResult, error) {
	var r LevelResult
	var stars string
	var updatedAt any

	err := s.db.QueryRow(
		"SELECT level_index, stars, steps, updated_at FROM level_results WHERE level_index = ?",
		level,
	).Scan(&r.Level, &stars, &r.Steps, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}

	if r.Stars, err = engine.ParseStars(stars); err != nil {
		return nil, fmt.Errorf("storage: corrupt result for level %d: %w", level, err)
	}
	r.UpdatedAt = parseTime(updatedAt)
	return &r, nil
}

// Results returns all stored results ordered by level.
func (s *Store) Results() ([]LevelResult, error) {
	rows, err := s.db.Query(
		"SELECT level_index, stars, steps, updated_at FROM level_results ORDER BY level_index",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []LevelResult
	for rows.Next() {
		var r LevelResult
		var stars string
		var updatedAt any
		if err := rows.Scan(&r.Level, &stars, &r.Steps, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if r.Stars, err = engine.ParseStars(stars); err != nil {
			return nil, fmt.Errorf("storage: corrupt result for level %d: %w", r.Level, err)
		}
		r.UpdatedAt = parseTime(updatedAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Unlocked returns the number of won levels. Levels are won in order, so
// it is also the index of the highest playable level.
func (s *Store) Unlocked() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM level_results").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count results: %w", err)
	}
	return n, nil
}

// RecordAttempt appends a finished run to the attempt log.
// Returns the ID of the inserted record.
func (s *Store) RecordAttempt(a Attempt) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO attempts (run_id, level_index, outcome, stars, steps)
		 VALUES (?, ?, ?, ?, ?)`,
		a.RunID, a.Level, a.Outcome.String(), a.Stars.String(), a.Steps,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save attempt: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentAttempts returns the latest attempts, newest first.
func (s *Store) RecentAttempts(limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, level_index, outcome, stars, steps, created_at
		 FROM attempts
		 ORDER BY id DESC
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
		var outcome, stars string
		var createdAt any
		if err := rows.Scan(&a.ID, &a.RunID, &a.Level, &outcome, &stars, &a.Steps, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		a.Outcome = parseOutcome(outcome)
		a.Stars, _ = engine.ParseStars(stars)
		a.CreatedAt = parseTime(createdAt)
		attempts = append(attempts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return attempts, nil
}

// Stats aggregates the attempt log of a level.
func (s *Store) Stats(level int) (*LevelStats, error) {
	stats := &LevelStats{Level: level}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'win'), 0),
		        COALESCE(SUM(outcome = 'lose'), 0),
		        COALESCE(SUM(outcome = 'retry'), 0),
		        COALESCE(MIN(CASE WHEN outcome = 'win' THEN steps END), 0)
		 FROM attempts WHERE level_index = ?`,
		level,
	).Scan(&stats.Attempts, &stats.Wins, &stats.Losses, &stats.Retries, &stats.BestRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	return stats, nil
}

// Reset deletes all progress and the attempt log.
func (s *Store) Reset() error {
	if _, err := s.db.Exec("DELETE FROM level_results; DELETE FROM attempts;"); err != nil {
		return fmt.Errorf("storage: cannot reset progress: %w", err)
	}
	return nil
}

var outcomes = map[string]engine.Outcome{
	engine.OutcomeWin.String():           engine.OutcomeWin,
	engine.OutcomeLose.String():          engine.OutcomeLose,
	engine.OutcomeRetry.String():         engine.OutcomeRetry,
	engine.OutcomeAborted.String():       engine.OutcomeAborted,
	engine.OutcomeLevelNotFound.String(): engine.OutcomeLevelNotFound,
}

func parseOutcome(s string) engine.Outcome {
	if o, ok := outcomes[s]; ok {
		return o
	}
	return engine.OutcomeAborted
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
