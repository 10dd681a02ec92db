// Package storage provides SQLite-based persistence for recorded replays.
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
)

// Lookup errors returned by LoadReplay and DeleteReplay.
var (
	ErrNotFound  = errors.New("storage: replay not found")
	ErrAmbiguous = errors.New("storage: replay id prefix is ambiguous")
)

// Store manages the SQLite database connection for the replay journal.
type Store struct {
	db *sql.DB
}

// InputRow is one recorded input, applied once the session clock reaches Tick.
type InputRow struct {
	Tick   uint64
	Action string
}

// ReplayRecord is a complete stored replay.
type ReplayRecord struct {
	ID         string
	Seed       int64
	ConfigYAML string
	Ticks      uint64
	Inputs     []InputRow
	CreatedAt  time.Time
}

// ReplaySummary is the listing view of a replay.
type ReplaySummary struct {
	ID         string
	Seed       int64
	Ticks      uint64
	InputCount int
	CreatedAt  time.Time
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
		CREATE TABLE IF NOT EXISTS replays (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			config TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_created ON replays(created_at DESC);

		CREATE TABLE IF NOT EXISTS replay_inputs (
			replay_id TEXT NOT NULL REFERENCES replays(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			tick INTEGER NOT NULL,
			action TEXT NOT NULL,
			PRIMARY KEY (replay_id, seq)
		);
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

// SaveReplay stores a replay and its inputs atomically.
func (s *Store) SaveReplay(rec ReplayRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	if _, err := tx.Exec(
		"INSERT INTO replays (id, seed, config, ticks, created_at) VALUES (?, ?, ?, ?, ?)",
		rec.ID, rec.Seed, rec.ConfigYAML, int64(rec.Ticks), created.UTC().Format(timeLayout),
	); err != nil {
		return fmt.Errorf("storage: cannot save replay: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO replay_inputs (replay_id, seq, tick, action) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("storage: cannot prepare input insert: %w", err)
	}
	defer stmt.Close()

	for i, in := range rec.Inputs {
		if _, err := stmt.Exec(rec.ID, i, int64(in.Tick), in.Action); err != nil {
			return fmt.Errorf("storage: cannot save input %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit replay: %w", err)
	}
	return nil
}

// ListReplays returns the most recent replays first.
func (s *Store) ListReplays(limit int) ([]ReplaySummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT r.id, r.seed, r.ticks, r.created_at,
		        (SELECT COUNT(*) FROM replay_inputs i WHERE i.replay_id = r.id)
		 FROM replays r
		 ORDER BY r.created_at DESC, r.rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var out []ReplaySummary
	for rows.Next() {
		var (
			r         ReplaySummary
			ticks     int64
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.Seed, &ticks, &createdAt, &r.InputCount); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// resolveID expands a unique id prefix to the full replay id. The prefix is
// compared literally.
func (s *Store) resolveID(prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("%w: empty id", ErrNotFound)
	}
	rows, err := s.db.Query(
		"SELECT id FROM replays WHERE substr(id, 1, length(?1)) = ?1 LIMIT 2", prefix,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot query replay ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch len(ids) {
	case 0:
		return "", fmt.Errorf("%w: %q", ErrNotFound, prefix)
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("%w: %q", ErrAmbiguous, prefix)
	}
}

// LoadReplay returns the replay whose id starts with idPrefix.
func (s *Store) LoadReplay(idPrefix string) (ReplayRecord, error) {
	id, err := s.resolveID(idPrefix)
	if err != nil {
		return ReplayRecord{}, err
	}

	var (
		rec       ReplayRecord
		ticks     int64
		createdAt any
	)
	err = s.db.QueryRow(
		"SELECT id, seed, config, ticks, created_at FROM replays WHERE id = ?", id,
	).Scan(&rec.ID, &rec.Seed, &rec.ConfigYAML, &ticks, &createdAt)
	if err != nil {
		return ReplayRecord{}, fmt.Errorf("storage: cannot load replay %s: %w", id, err)
	}
	rec.Ticks = uint64(ticks)
	rec.CreatedAt = parseTime(createdAt)

	rows, err := s.db.Query(
		"SELECT tick, action FROM replay_inputs WHERE replay_id = ? ORDER BY seq", id,
	)
	if err != nil {
		return ReplayRecord{}, fmt.Errorf("storage: cannot query inputs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			in   InputRow
			tick int64
		)
		if err := rows.Scan(&tick, &in.Action); err != nil {
			return ReplayRecord{}, fmt.Errorf("storage: cannot scan input: %w", err)
		}
		in.Tick = uint64(tick)
		rec.Inputs = append(rec.Inputs, in)
	}
	if err := rows.Err(); err != nil {
		return ReplayRecord{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rec, nil
}

// DeleteReplay removes a replay and its inputs.
func (s *Store) DeleteReplay(idPrefix string) error {
	id, err := s.resolveID(idPrefix)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec("DELETE FROM replay_inputs WHERE replay_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete inputs: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM replays WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// timeLayout matches SQLite's CURRENT_TIMESTAMP, in UTC.
const timeLayout = "2006-01-02 15:04:05"

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
