// Package checklog records batch-validation outcomes in a local SQLite
// file for later review. The in-process resolution cache is deliberately
// not persisted; this log is an audit trail of what a batch run concluded,
// not a cache.
package checklog

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the check-log database.
type DB struct {
	db *sql.DB
}

// Entry is one recorded identifier check.
type Entry struct {
	Identifier string `json:"identifier"`
	Kind       string `json:"kind"` // doi, doi-active, hdl
	Outcome    string `json:"outcome"`
	Location   string `json:"location,omitempty"`
	CheckedAt  string `json:"checked_at"`
}

// Open opens or creates the log at the given path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening check log: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS checks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			identifier TEXT NOT NULL,
			kind TEXT NOT NULL,
			outcome TEXT NOT NULL,
			location TEXT,
			checked_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_checks_identifier ON checks(identifier);
	`
	_, err := db.Exec(schema)
	return err
}

// Record appends one check result.
func (d *DB) Record(identifier, kind, outcome, location string) error {
	_, err := d.db.Exec(
		`INSERT INTO checks (identifier, kind, outcome, location, checked_at) VALUES (?, ?, ?, ?, ?)`,
		identifier, kind, outcome, location, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording check: %w", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first.
func (d *DB) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := d.db.Query(
		`SELECT identifier, kind, outcome, COALESCE(location, ''), checked_at
		 FROM checks ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying check log: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Identifier, &e.Kind, &e.Outcome, &e.Location, &e.CheckedAt); err != nil {
			return nil, fmt.Errorf("scanning check log row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Summary returns outcome counts for the whole log.
func (d *DB) Summary() (map[string]int, error) {
	rows, err := d.db.Query(`SELECT outcome, COUNT(*) FROM checks GROUP BY outcome`)
	if err != nil {
		return nil, fmt.Errorf("querying summary: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("scanning summary row: %w", err)
		}
		counts[outcome] = n
	}
	return counts, rows.Err()
}
