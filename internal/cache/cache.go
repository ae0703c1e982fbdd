// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache memoizes search results. Search output is a pure
// function of the request parameters plus arXiv state at call time, so
// result sets can be keyed directly on the request and reused for a
// bounded TTL. Cache holds entries in memory for long-lived callers;
// DiskCache persists them in SQLite so separate runs share them.
package cache

import (
	"sync"
	"time"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

const janitorInterval = 5 * time.Minute

type entry struct {
	papers    []types.Paper
	expiresAt time.Time
}

// Cache is an in-memory TTL cache of search result sets. The zero value
// is not usable; construct with New.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	stop    chan struct{}
	stopped bool
}

// New builds a cache whose entries expire after ttl and starts a
// background janitor that sweeps expired entries.
func New(ttl time.Duration) *Cache {
	c := &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
		stop:    make(chan struct{}),
	}
	go c.janitor()
	return c
}

// Get returns the cached result set for key, or false if absent or expired.
func (c *Cache) Get(key string) ([]types.Paper, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.papers, true
}

// Put stores a result set under key. Empty result sets are cached too:
// "no matches" is a valid answer worth remembering.
func (c *Cache) Put(key string, papers []types.Paper) {
	c.mu.Lock()
	c.entries[key] = entry{papers: papers, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// Stop terminates the janitor goroutine. Safe to call more than once.
func (c *Cache) Stop() {
	c.mu.Lock()
	if !c.stopped {
		c.stopped = true
		close(c.stop)
	}
	c.mu.Unlock()
}

func (c *Cache) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}

func (c *Cache) sweep() {
	now := time.Now()
	c.mu.Lock()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.mu.Unlock()
}
