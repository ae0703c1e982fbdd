// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

const diskSchema = `
CREATE TABLE IF NOT EXISTS results (
	key        TEXT PRIMARY KEY,
	papers     TEXT NOT NULL,
	fetched_at TIMESTAMP NOT NULL
);`

// DiskCache is a SQLite-backed TTL cache of search result sets. Unlike
// the in-memory Cache its entries survive the process, so separate CLI
// invocations of the same request share one arXiv fetch.
type DiskCache struct {
	db  *sql.DB
	ttl time.Duration
}

// OpenDisk opens the cache database at path, creating the file and its
// parent directory as needed.
func OpenDisk(path string, ttl time.Duration) (*DiskCache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}
	if _, err := db.Exec(diskSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return &DiskCache{db: db, ttl: ttl}, nil
}

// Get returns the cached result set for key, or false if absent, expired,
// or unreadable. Expired rows are deleted on the way out.
func (d *DiskCache) Get(key string) ([]types.Paper, bool) {
	var raw string
	var fetchedAt time.Time
	err := d.db.QueryRow(`SELECT papers, fetched_at FROM results WHERE key = ?`, key).
		Scan(&raw, &fetchedAt)
	if err != nil {
		return nil, false
	}
	if time.Since(fetchedAt) > d.ttl {
		d.db.Exec(`DELETE FROM results WHERE key = ?`, key)
		return nil, false
	}

	var papers []types.Paper
	if err := json.Unmarshal([]byte(raw), &papers); err != nil {
		return nil, false
	}
	return papers, true
}

// Put stores a result set under key, replacing any previous entry. Empty
// result sets are cached too: "no matches" is a valid answer worth
// remembering. The cache is best effort, so write failures are dropped.
func (d *DiskCache) Put(key string, papers []types.Paper) {
	raw, err := json.Marshal(papers)
	if err != nil {
		return
	}
	d.db.Exec(`INSERT INTO results (key, papers, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET papers = excluded.papers, fetched_at = excluded.fetched_at`,
		key, string(raw), time.Now())
}

// Close releases the underlying database handle.
func (d *DiskCache) Close() error {
	return d.db.Close()
}
