// Package storage provides SQLite-based persistence for recorded runs.
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

	"github.com/vovakirdan/jumper/internal/replay"
)

// ErrNotFound is returned when a run id does not exist.
var ErrNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for recorded runs.
type Store struct {
	db *sql.DB
}

// RunEntry is a listing row for a recorded run.
type RunEntry struct {
	ID        int64
	GameID    string
	Seed      int64
	Frames    int
	Lives     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL DEFAULT 60,
			rules TEXT NOT NULL,
			frames BLOB NOT NULL,
			frame_count INTEGER NOT NULL,
			lives INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
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

// SaveRun stores a recording and returns its id.
func (s *Store) SaveRun(run replay.Run) (int64, error) {
	rules, err := run.EncodeRules()
	if err != nil {
		return 0, fmt.Errorf("storage: %w", err)
	}

	frames := run.Frames
	if frames == nil {
		frames = []byte{}
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (game_id, seed, tick_rate, rules, frames, frame_count, lives)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Game, run.Seed, run.TickRate, string(rules), frames, len(frames), run.Lives,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Runs lists the most recent runs, newest first.
func (s *Store) Runs(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, frame_count, lives, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Seed, &e.Frames, &e.Lives, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// LoadRun reads a full recording by id.
func (s *Store) LoadRun(id int64) (replay.Run, error) {
	var (
		run   replay.Run
		rules string
	)
	err := s.db.QueryRow(
		`SELECT game_id, seed, tick_rate, rules, frames, lives
		 FROM runs
		 WHERE id = ?`,
		id,
	).Scan(&run.Game, &run.Seed, &run.TickRate, &rules, &run.Frames, &run.Lives)

	if errors.Is(err, sql.ErrNoRows) {
		return replay.Run{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return replay.Run{}, fmt.Errorf("storage: cannot query run: %w", err)
	}

	if err := run.DecodeRules([]byte(rules)); err != nil {
		return replay.Run{}, fmt.Errorf("storage: run %d: %w", id, err)
	}
	return run, nil
}

// DeleteRun removes a recording.
func (s *Store) DeleteRun(id int64) error {
	res, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
