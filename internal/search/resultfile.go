// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// ResultFile is the on-disk representation of a search and its papers.
// A search can be saved to a file and reloaded later without re-querying
// the arXiv API.
type ResultFile struct {
	Request RequestParams `yaml:"request"`
	Papers  []types.Paper `yaml:"papers"`
	Summary ResultSummary `yaml:"summary"`
}

// RequestParams stores the request parameters in a serializable form.
type RequestParams struct {
	Keywords   []string `yaml:"keywords,omitempty"`
	Field      string   `yaml:"field"`
	DateFrom   string   `yaml:"date_from,omitempty"`
	DateTo     string   `yaml:"date_to,omitempty"`
	Sort       string   `yaml:"sort"`
	MaxResults int      `yaml:"max_results"`
}

// ResultSummary stores the paper count and a timestamp.
type ResultSummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

const dateFmt = "2006-01-02"

// WriteResultFile saves the request and its papers to a YAML file.
func WriteResultFile(path string, req Request, papers []types.Paper) error {
	rf := ResultFile{
		Request: RequestParams{
			Keywords:   req.Keywords,
			Field:      req.Field,
			Sort:       string(req.Sort),
			MaxResults: req.MaxResults,
		},
		Papers: papers,
		Summary: ResultSummary{
			Total:     len(papers),
			Timestamp: time.Now(),
		},
	}

	if !req.From.IsZero() {
		rf.Request.DateFrom = req.From.Format(dateFmt)
	}
	if !req.To.IsZero() {
		rf.Request.DateTo = req.To.Format(dateFmt)
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved result file from disk.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}

// ToRequest converts stored RequestParams back into a Request.
func (p RequestParams) ToRequest() (Request, error) {
	req := Request{
		Keywords:   p.Keywords,
		Field:      p.Field,
		Sort:       SortMode(p.Sort),
		MaxResults: p.MaxResults,
	}
	if p.DateFrom != "" {
		t, err := time.Parse(dateFmt, p.DateFrom)
		if err != nil {
			return req, fmt.Errorf("invalid date_from %q: %w", p.DateFrom, err)
		}
		req.From = t
	}
	if p.DateTo != "" {
		t, err := time.Parse(dateFmt, p.DateTo)
		if err != nil {
			return req, fmt.Errorf("invalid date_to %q: %w", p.DateTo, err)
		}
		req.To = t
	}
	return req, nil
}
