// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a local record of executed searches in SQLite.
// The search core never touches it; the CLI records each search after
// the results come back, which replaces the daily log-file grepping the
// workflow used to rely on.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const defaultMaxEntries = 20

// Record is one executed search.
type Record struct {
	ID          int64
	ExecutedAt  time.Time
	Field       string
	Keywords    []string
	DateFrom    string
	DateTo      string
	Sort        string
	MaxResults  int
	ResultCount int

	// Expression is the composed arXiv search_query that was issued.
	Expression string
}

// Store manages the search history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS searches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		executed_at TEXT NOT NULL,
		field TEXT NOT NULL,
		keywords TEXT NOT NULL,
		date_from TEXT,
		date_to TEXT,
		sort TEXT,
		max_results INTEGER,
		result_count INTEGER,
		expression TEXT
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts one executed search.
func (s *Store) Record(ctx context.Context, r Record) error {
	keywords, err := json.Marshal(r.Keywords)
	if err != nil {
		return fmt.Errorf("encoding keywords: %w", err)
	}

	executedAt := r.ExecutedAt
	if executedAt.IsZero() {
		executedAt = time.Now()
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO searches
			(executed_at, field, keywords, date_from, date_to, sort, max_results, result_count, expression)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		executedAt.Format(time.RFC3339), r.Field, string(keywords),
		r.DateFrom, r.DateTo, r.Sort, r.MaxResults, r.ResultCount, r.Expression)
	if err != nil {
		return fmt.Errorf("recording search: %w", err)
	}
	return nil
}

// Recent returns the n most recently executed searches, newest first.
// A non-positive n uses the default of 20.
func (s *Store) Recent(ctx context.Context, n int) ([]Record, error) {
	if n <= 0 {
		n = defaultMaxEntries
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, executed_at, field, keywords, date_from, date_to, sort, max_results, result_count, expression
		 FROM searches ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var executedAt, keywords string
		if err := rows.Scan(&r.ID, &executedAt, &r.Field, &keywords,
			&r.DateFrom, &r.DateTo, &r.Sort, &r.MaxResults, &r.ResultCount, &r.Expression); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, executedAt); parseErr == nil {
			r.ExecutedAt = t
		}
		if err := json.Unmarshal([]byte(keywords), &r.Keywords); err != nil {
			return nil, fmt.Errorf("decoding keywords for search %d: %w", r.ID, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
