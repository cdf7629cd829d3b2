// Package storage provides SQLite-based run history for the sandbox.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only per-run summaries are stored, never grid contents.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run summarizes one finished sandbox session.
type Run struct {
	ID           int64
	Scene        string
	GridSize     int
	Ticks        uint64
	Strokes      int // brush strokes applied
	CellsPainted int // cells written by those strokes
	Sand         int // final material counts
	Water        int
	Solid        int
	Faults       int
	User         string // SSH user, empty for local play
	Duration     time.Duration
	CreatedAt    time.Time
}

// SceneStats contains aggregated run history for a scene.
type SceneStats struct {
	Scene      string
	Runs       int
	TotalTicks int64
	MaxTicks   int64
	Painted    int64
	LastPlayed time.Time
}

// ErrNoRuns is returned by Stats when a scene has no history.
var ErrNoRuns = errors.New("storage: no runs recorded")

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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene TEXT NOT NULL,
			grid_size INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			strokes INTEGER NOT NULL DEFAULT 0,
			cells_painted INTEGER NOT NULL DEFAULT 0,
			sand INTEGER NOT NULL DEFAULT 0,
			water INTEGER NOT NULL DEFAULT 0,
			solid INTEGER NOT NULL DEFAULT 0,
			faults INTEGER NOT NULL DEFAULT 0,
			user TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_scene ON runs(scene);
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

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (scene, grid_size, ticks, strokes, cells_painted, sand, water, solid, faults, user, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Scene, r.GridSize, int64(r.Ticks), r.Strokes, r.CellsPainted,
		r.Sand, r.Water, r.Solid, r.Faults, r.User, r.Duration.Milliseconds(),
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

const runColumns = `id, scene, grid_size, ticks, strokes, cells_painted,
	sand, water, solid, faults, user, duration_ms, created_at`

// RecentRuns retrieves the most recent runs across all scenes.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
}

// RunsForScene retrieves the most recent runs of one scene.
func (s *Store) RunsForScene(scene string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs WHERE scene = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		scene, limit,
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
		var ticks, durationMS int64
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.Scene, &r.GridSize, &ticks, &r.Strokes, &r.CellsPainted,
			&r.Sand, &r.Water, &r.Solid, &r.Faults, &r.User, &durationMS, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunCount returns the number of recorded runs.
func (s *Store) RunCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// Stats retrieves aggregated history for one scene.
// Returns ErrNoRuns if the scene was never played.
func (s *Store) Stats(scene string) (*SceneStats, error) {
	stats := &SceneStats{Scene: scene}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(ticks), 0), COALESCE(MAX(ticks), 0),
		        COALESCE(SUM(cells_painted), 0), MAX(created_at)
		 FROM runs WHERE scene = ?`,
		scene,
	).Scan(&stats.Runs, &stats.TotalTicks, &stats.MaxTicks, &stats.Painted, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scene stats: %w", err)
	}
	if stats.Runs == 0 {
		return nil, ErrNoRuns
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearRuns deletes the history of one scene.
func (s *Store) ClearRuns(scene string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE scene = ?", scene); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime converts a DATETIME column, which the driver returns either as
// time.Time or as text.
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
