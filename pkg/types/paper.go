// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for arxiv-scout.
package types

import "time"

// Paper is the normalized record produced for each arXiv result item.
// Instances are built once during normalization and never mutated
// afterwards; the caller owns the returned slice.
type Paper struct {
	// ArxivID is the bare arXiv identifier extracted from the entry URL
	// (e.g. "2301.07041v1").
	ArxivID string `json:"arxiv_id" yaml:"arxiv_id"`

	// Title is the paper title as returned by arXiv.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in listed authorship order.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the paper abstract.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Published is the first-submission timestamp.
	Published time.Time `json:"published" yaml:"published"`

	// Updated is the latest-revision timestamp.
	Updated time.Time `json:"updated" yaml:"updated"`

	// Link is the human-viewable abstract page URL.
	Link string `json:"link" yaml:"link"`

	// PDFLink is the direct PDF URL.
	PDFLink string `json:"pdf_link" yaml:"pdf_link"`

	// MainCategory is the primary category code (e.g. "cs.LG").
	MainCategory string `json:"main_category" yaml:"main_category"`

	// Categories lists every category code attached to the paper.
	// MainCategory is always present and always first.
	Categories []string `json:"categories" yaml:"categories"`
}
