// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

func TestResultFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.yaml")

	req := Request{
		Keywords:   []string{"large language models", "planning"},
		Field:      "Computer Science",
		From:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:         time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Sort:       SortSubmissionDate,
		MaxResults: 100,
	}
	papers := []types.Paper{
		{
			ArxivID:      "2301.07041v1",
			Title:        "A Paper",
			Authors:      []string{"Jane Doe"},
			MainCategory: "cs.CL",
			Categories:   []string{"cs.CL", "cs.LG"},
			Published:    time.Date(2023, 1, 17, 18, 59, 59, 0, time.UTC),
		},
	}

	if err := WriteResultFile(path, req, papers); err != nil {
		t.Fatalf("WriteResultFile() error = %v", err)
	}

	rf, err := ReadResultFile(path)
	if err != nil {
		t.Fatalf("ReadResultFile() error = %v", err)
	}
	if rf.Summary.Total != 1 {
		t.Errorf("Summary.Total = %d, want 1", rf.Summary.Total)
	}
	if len(rf.Papers) != 1 || rf.Papers[0].ArxivID != "2301.07041v1" {
		t.Fatalf("Papers = %+v", rf.Papers)
	}
	if rf.Papers[0].MainCategory != "cs.CL" {
		t.Errorf("MainCategory = %q", rf.Papers[0].MainCategory)
	}

	back, err := rf.Request.ToRequest()
	if err != nil {
		t.Fatalf("ToRequest() error = %v", err)
	}
	if back.Field != req.Field || back.Sort != req.Sort || back.MaxResults != req.MaxResults {
		t.Errorf("ToRequest() = %+v, want %+v", back, req)
	}
	if !back.From.Equal(req.From) || !back.To.Equal(req.To) {
		t.Errorf("dates did not survive the round trip: %v..%v", back.From, back.To)
	}
	if len(back.Keywords) != 2 || back.Keywords[0] != "large language models" {
		t.Errorf("Keywords = %v", back.Keywords)
	}
}

func TestToRequestRejectsBadDates(t *testing.T) {
	p := RequestParams{Field: "Computer Science", DateFrom: "01/02/2024"}
	if _, err := p.ToRequest(); err == nil {
		t.Error("ToRequest() accepted a malformed date")
	}
}

func TestReadResultFileMissing(t *testing.T) {
	if _, err := ReadResultFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("ReadResultFile() on a missing file should fail")
	}
}
