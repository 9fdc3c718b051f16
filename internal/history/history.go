// Package history records CLI conversions in a local SQLite database so
// past results can be listed and reused.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// DefaultPath is the conventional location for the history database.
const DefaultPath = ".tempo/history.db"

// schema contains the DDL executed on first open. Using IF NOT EXISTS makes
// it safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS conversions (
    id          TEXT PRIMARY KEY,
    recorded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    op          TEXT NOT NULL,
    input       TEXT NOT NULL,
    output      TEXT NOT NULL
);
`

// Entry is one recorded conversion.
type Entry struct {
	ID     string
	At     time.Time
	Op     string
	Input  string
	Output string
}

// Store is a SQLite-backed conversion log.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the history database at dbPath, enables WAL
// mode and busy timeout, and creates the schema if it does not exist.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	// One connection avoids SQLITE_BUSY contention between pooled
	// connections that each need their own PRAGMA setup.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record inserts one conversion into the log.
func (s *Store) Record(ctx context.Context, op, input, output string) error {
	const q = `
		INSERT INTO conversions (id, op, input, output)
		VALUES (?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, q, uuid.NewString(), op, input, output); err != nil {
		return fmt.Errorf("history: record %q: %w", op, err)
	}
	return nil
}

// List returns the most recent entries, newest first, up to limit.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	const q = `
		SELECT id, recorded_at, op, input, output
		FROM conversions
		ORDER BY recorded_at DESC, id
		LIMIT ?`
	rows, err := s.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("history: list: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.At, &e.Op, &e.Input, &e.Output); err != nil {
			return nil, fmt.Errorf("history: scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterate entries: %w", err)
	}
	return entries, nil
}

// Clear deletes all recorded conversions.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM conversions"); err != nil {
		return fmt.Errorf("history: clear: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("history: close: %w", err)
	}
	return nil
}
