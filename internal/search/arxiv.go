// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"github.com/pdiddy/arxiv-scout/internal/httputil"
	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// arxivAPIBase is the arXiv search endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// ArxivClient is the Upstream implementation backed by the arXiv API.
type ArxivClient struct {
	Client  *http.Client
	cfg     types.SearchConfig
	limiter *rate.Limiter
}

// NewArxivClient builds a client honoring the configured timeout and the
// arXiv terms of use, which ask for at most one request every 3 seconds.
func NewArxivClient(cfg types.SearchConfig) *ArxivClient {
	c := &ArxivClient{
		Client: &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
	}
	if cfg.RequestInterval > 0 {
		c.limiter = rate.NewLimiter(rate.Every(cfg.RequestInterval), 1)
	}
	return c
}

// Fetch issues one bounded query and returns the raw feed entries.
// Transport failures, non-200 responses, and undecodable payloads all
// wrap ErrUpstreamUnavailable.
func (c *ArxivClient) Fetch(ctx context.Context, p FetchParams) ([]Entry, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	params := url.Values{
		"search_query": {withDateFilter(p.Expression, p)},
		"start":        {strconv.Itoa(p.Start)},
		"max_results":  {strconv.Itoa(p.MaxResults)},
	}
	switch p.Sort {
	case SortSubmissionDate:
		params.Set("sortBy", "submittedDate")
		params.Set("sortOrder", "descending")
	default:
		params.Set("sortBy", "relevance")
		params.Set("sortOrder", "descending")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, arxivAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.Client, req, c.cfg.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("%w: arXiv API request: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: arXiv API returned HTTP %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("%w: parsing arXiv response: %v", ErrUpstreamUnavailable, err)
	}

	entries := make([]Entry, 0, len(feed.Entries))
	for _, fe := range feed.Entries {
		entries = append(entries, fe.toEntry())
	}
	return entries, nil
}

// withDateFilter appends the submittedDate range to the expression,
// widening the bounds to whole days (0000 on the start, 2359 on the end).
func withDateFilter(expr string, p FetchParams) string {
	if p.From.IsZero() || p.To.IsZero() {
		return expr
	}
	return fmt.Sprintf("%s AND submittedDate:[%s0000 TO %s2359]",
		expr, p.From.Format("20060102"), p.To.Format("20060102"))
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID              string          `xml:"id"`
	Title           string          `xml:"title"`
	Summary         string          `xml:"summary"`
	Published       string          `xml:"published"`
	Updated         string          `xml:"updated"`
	Authors         []arxivAuthor   `xml:"author"`
	Links           []arxivLink     `xml:"link"`
	PrimaryCategory arxivCategory   `xml:"primary_category"`
	Categories      []arxivCategory `xml:"category"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

type arxivLink struct {
	Href  string `xml:"href,attr"`
	Rel   string `xml:"rel,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

type arxivCategory struct {
	Term string `xml:"term,attr"`
}

// toEntry flattens the Atom entry into the neutral Entry shape the
// coordinator normalizes.
func (e arxivEntry) toEntry() Entry {
	out := Entry{
		IDURL:           strings.TrimSpace(e.ID),
		Title:           e.Title,
		Summary:         e.Summary,
		Published:       strings.TrimSpace(e.Published),
		Updated:         strings.TrimSpace(e.Updated),
		PrimaryCategory: e.PrimaryCategory.Term,
	}
	for _, a := range e.Authors {
		out.Authors = append(out.Authors, a.Name)
	}
	for _, l := range e.Links {
		switch {
		case l.Title == "pdf" || l.Type == "application/pdf":
			out.PDFLink = l.Href
		case l.Rel == "alternate":
			out.Link = l.Href
		}
	}
	for _, c := range e.Categories {
		if c.Term != "" {
			out.Categories = append(out.Categories, c.Term)
		}
	}
	return out
}
