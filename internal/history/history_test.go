// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := Record{
		Field:       "Computer Science",
		Keywords:    []string{"large language models", "planning"},
		DateFrom:    "2024-01-01",
		DateTo:      "2024-06-01",
		Sort:        "relevance",
		MaxResults:  200,
		ResultCount: 42,
		Expression:  `((ti:planning OR abs:planning)) AND (cat:cs.AI)`,
	}
	require.NoError(t, s.Record(ctx, rec))

	records, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, "Computer Science", got.Field)
	assert.Equal(t, []string{"large language models", "planning"}, got.Keywords)
	assert.Equal(t, "2024-01-01", got.DateFrom)
	assert.Equal(t, 42, got.ResultCount)
	assert.False(t, got.ExecutedAt.IsZero())
	assert.Contains(t, got.Expression, "cat:cs.AI")
}

func TestRecentNewestFirstAndLimited(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, Record{
			Field:    "Mathematics",
			Keywords: []string{fmt.Sprintf("topic-%d", i)},
		}))
	}

	records, err := s.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"topic-4"}, records[0].Keywords)
	assert.Equal(t, []string{"topic-2"}, records[2].Keywords)
}

func TestRecentEmpty(t *testing.T) {
	s := openTestStore(t)

	records, err := s.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}
