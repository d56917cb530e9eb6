// Package journal keeps a SQLite log of feed fetch attempts.
package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tesso57/jrss/internal/domain/reading"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS fetch_attempts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL DEFAULT '',
	url TEXT NOT NULL,
	outcome TEXT NOT NULL,
	items INTEGER NOT NULL DEFAULT 0,
	duration_ns INTEGER NOT NULL DEFAULT 0,
	error TEXT NOT NULL DEFAULT '',
	fetched_at INTEGER NOT NULL
)`

// Entry is a stored attempt.
type Entry struct {
	ID int64
	reading.Attempt
}

// Journal records fetch attempts.
type Journal struct {
	mu   sync.Mutex
	db   *sql.DB
	path string
}

// Open opens or creates the journal at path.
func Open(path string) (*Journal, error) {
	if path == "" {
		return nil, errors.New("journal path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return &Journal{db: db, path: path}, nil
}

// Path returns the database file path.
func (j *Journal) Path() string {
	return j.path
}

// Record appends an attempt.
func (j *Journal) Record(a reading.Attempt) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	fetchedAt := a.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}
	_, err := j.db.Exec(
		`INSERT INTO fetch_attempts (session_id, url, outcome, items, duration_ns, error, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.SessionID, a.URL, string(a.Outcome), a.Items, int64(a.Duration), a.Error, fetchedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

// Recent returns up to limit attempts, newest first.
// A limit of zero or less returns every attempt.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if limit <= 0 {
		limit = -1
	}
	rows, err := j.db.Query(
		`SELECT id, session_id, url, outcome, items, duration_ns, error, fetched_at
		 FROM fetch_attempts ORDER BY fetched_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var (
			e         Entry
			outcome   string
			duration  int64
			fetchedAt int64
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &e.URL, &outcome, &e.Items, &duration, &e.Error, &fetchedAt); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		e.Outcome = reading.Outcome(outcome)
		e.Duration = time.Duration(duration)
		e.FetchedAt = time.Unix(0, fetchedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the database.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.db.Close()
}
