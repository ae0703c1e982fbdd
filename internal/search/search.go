// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search builds arXiv query expressions and turns API responses
// into normalized Paper records. It performs no I/O of its own beyond the
// single fetch it delegates to its Upstream collaborator, and holds no
// mutable state, so a Searcher is safe for concurrent use.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/arxiv-scout/internal/taxonomy"
	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// MaxKeywords is the largest keyword count a single search accepts.
const MaxKeywords = 12

// defaultCoverageFloor is the first arXiv submission date, used when the
// configuration does not set one.
const defaultCoverageFloor = "1991-08-14"

// SortMode selects the result ordering requested from arXiv.
type SortMode string

const (
	// SortRelevance orders results by arXiv's relevance ranking.
	SortRelevance SortMode = "relevance"

	// SortSubmissionDate orders results by submission date, newest first.
	SortSubmissionDate SortMode = "submitted"
)

// ParseSortMode converts a user-supplied string into a SortMode.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(strings.ToLower(strings.TrimSpace(s))) {
	case SortRelevance:
		return SortRelevance, nil
	case SortSubmissionDate:
		return SortSubmissionDate, nil
	}
	return "", fmt.Errorf("%w: unknown sort mode %q (use %q or %q)",
		ErrInvalidInput, s, SortRelevance, SortSubmissionDate)
}

// Request holds the parameters of one search call.
type Request struct {
	Keywords   []string
	Field      string
	From       time.Time
	To         time.Time
	Sort       SortMode
	MaxResults int
}

// Key returns a deterministic cache key covering every input that affects
// the result set.
func (r Request) Key() string {
	return strings.Join([]string{
		strings.Join(r.Keywords, "\x1f"),
		r.Field,
		r.From.Format("2006-01-02"),
		r.To.Format("2006-01-02"),
		string(r.Sort),
		fmt.Sprintf("%d", r.MaxResults),
	}, "\x1e")
}

// FetchParams is the bounded request handed to the upstream collaborator.
type FetchParams struct {
	// Expression is the composed search_query value.
	Expression string

	// From and To bound the submission-date filter (inclusive).
	From time.Time
	To   time.Time

	// Sort selects the native arXiv ordering.
	Sort SortMode

	// MaxResults caps the page size.
	MaxResults int

	// Start is the zero-based page offset.
	Start int
}

// Entry is one raw result item as returned by the upstream collaborator.
// Timestamps stay in the upstream's RFC 3339 form; normalization parses
// them.
type Entry struct {
	IDURL           string
	Title           string
	Summary         string
	Authors         []string
	Published       string
	Updated         string
	Link            string
	PDFLink         string
	PrimaryCategory string
	Categories      []string
}

// Upstream fetches raw result entries for a bounded request. The arXiv
// client implements it; tests substitute fakes.
type Upstream interface {
	Fetch(ctx context.Context, p FetchParams) ([]Entry, error)
}

// Searcher validates search requests, builds the query expression, issues
// one fetch, and normalizes the response.
type Searcher struct {
	tax      *taxonomy.Taxonomy
	upstream Upstream
	cfg      types.SearchConfig
	floor    time.Time
}

// New constructs a Searcher. The coverage floor comes from the
// configuration and falls back to arXiv's first submission date.
func New(tax *taxonomy.Taxonomy, upstream Upstream, cfg types.SearchConfig) (*Searcher, error) {
	floorStr := cfg.CoverageFloor
	if floorStr == "" {
		floorStr = defaultCoverageFloor
	}
	floor, err := time.Parse("2006-01-02", floorStr)
	if err != nil {
		return nil, fmt.Errorf("invalid coverage floor %q: %w", floorStr, err)
	}
	return &Searcher{tax: tax, upstream: upstream, cfg: cfg, floor: floor}, nil
}

// Search runs one validated search and returns normalized papers in the
// order arXiv returned them. An empty slice with a nil error means the
// query matched nothing. All validation happens before the fetch.
func (s *Searcher) Search(ctx context.Context, req Request) ([]types.Paper, error) {
	keywords := req.Keywords
	if len(keywords) == 0 {
		keywords = s.tax.DefaultKeywords(req.Field)
	}
	if len(keywords) == 0 {
		return nil, fmt.Errorf("%w: no keywords provided and field %q has no defaults",
			ErrInvalidInput, req.Field)
	}
	if len(keywords) > MaxKeywords {
		return nil, fmt.Errorf("%w: got %d, maximum is %d",
			ErrTooManyKeywords, len(keywords), MaxKeywords)
	}

	if err := s.validateDates(req.From, req.To); err != nil {
		return nil, err
	}

	codes, ok := s.tax.Codes(req.Field)
	if !ok {
		return nil, fmt.Errorf("%w: %q (known fields: %s)",
			ErrInvalidField, req.Field, strings.Join(s.tax.Fields(), ", "))
	}

	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = s.cfg.MaxResults
	}
	if pageCap := s.cfg.PageCap; pageCap > 0 && maxResults > pageCap {
		return nil, fmt.Errorf("%w: %d results requested, arXiv serves at most %d per request",
			ErrRequestTooLarge, maxResults, pageCap)
	}

	expr, err := BuildQuery(keywords, codes)
	if err != nil {
		return nil, err
	}

	entries, err := s.upstream.Fetch(ctx, FetchParams{
		Expression: expr,
		From:       req.From,
		To:         req.To,
		Sort:       req.Sort,
		MaxResults: maxResults,
	})
	if err != nil {
		return nil, err
	}

	papers := make([]types.Paper, 0, len(entries))
	for _, e := range entries {
		p, ok := normalize(e)
		if !ok {
			continue
		}
		papers = append(papers, p)
	}
	return papers, nil
}

func (s *Searcher) validateDates(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("%w: both start and end dates are required", ErrInvalidDateRange)
	}
	if from.After(to) {
		return fmt.Errorf("%w: start %s is after end %s",
			ErrInvalidDateRange, from.Format("2006-01-02"), to.Format("2006-01-02"))
	}
	if from.Before(s.floor) {
		return fmt.Errorf("%w: arXiv coverage begins %s",
			ErrInvalidDateRange, s.floor.Format("2006-01-02"))
	}
	// End-of-day tolerance so "today" stays a valid end date everywhere.
	if to.After(time.Now().Add(24 * time.Hour)) {
		return fmt.Errorf("%w: end date %s is in the future",
			ErrInvalidDateRange, to.Format("2006-01-02"))
	}
	return nil
}

// normalize maps a raw entry into a Paper. Entries without an extractable
// identifier or a title are dropped; a single malformed record must not
// abort the batch.
func normalize(e Entry) (types.Paper, bool) {
	id := extractArxivID(e.IDURL)
	title := strings.TrimSpace(e.Title)
	if id == "" || title == "" {
		return types.Paper{}, false
	}

	p := types.Paper{
		ArxivID:      id,
		Title:        title,
		Abstract:     strings.TrimSpace(e.Summary),
		Link:         e.Link,
		PDFLink:      e.PDFLink,
		MainCategory: e.PrimaryCategory,
	}
	if p.Link == "" {
		p.Link = e.IDURL
	}

	for _, a := range e.Authors {
		if name := strings.TrimSpace(a); name != "" {
			p.Authors = append(p.Authors, name)
		}
	}

	if t, err := time.Parse(time.RFC3339, e.Published); err == nil {
		p.Published = t
	}
	if t, err := time.Parse(time.RFC3339, e.Updated); err == nil {
		p.Updated = t
	}

	if p.MainCategory == "" && len(e.Categories) > 0 {
		p.MainCategory = e.Categories[0]
	}
	seen := make(map[string]bool)
	if p.MainCategory != "" {
		p.Categories = append(p.Categories, p.MainCategory)
		seen[p.MainCategory] = true
	}
	for _, c := range e.Categories {
		if c != "" && !seen[c] {
			p.Categories = append(p.Categories, c)
			seen[c] = true
		}
	}

	return p, true
}

// extractArxivID pulls the arXiv ID from the entry's <id> URL
// (e.g. "http://arxiv.org/abs/2301.07041v1" → "2301.07041v1").
func extractArxivID(idURL string) string {
	const prefix = "/abs/"
	idx := strings.Index(idURL, prefix)
	if idx < 0 {
		return ""
	}
	return idURL[idx+len(prefix):]
}
