// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cache

import (
	"context"

	"github.com/pdiddy/arxiv-scout/internal/search"
	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// SearchFunc is the signature shared by Searcher.Search and its cached
// wrapper, so callers can layer caching without changing call sites.
type SearchFunc func(ctx context.Context, req search.Request) ([]types.Paper, error)

// Store is what Memoize needs from a cache. Both the in-memory Cache and
// the SQLite-backed DiskCache satisfy it.
type Store interface {
	Get(key string) ([]types.Paper, bool)
	Put(key string, papers []types.Paper)
}

var (
	_ Store = (*Cache)(nil)
	_ Store = (*DiskCache)(nil)
)

// Memoize wraps fn so repeated identical requests are answered from st.
// Errors are never cached; only successful result sets are stored.
func Memoize(st Store, fn SearchFunc) SearchFunc {
	return func(ctx context.Context, req search.Request) ([]types.Paper, error) {
		key := req.Key()
		if papers, ok := st.Get(key); ok {
			return papers, nil
		}
		papers, err := fn(ctx, req)
		if err != nil {
			return nil, err
		}
		st.Put(key, papers)
		return papers, nil
	}
}
