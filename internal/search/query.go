// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"strings"
)

// BuildQuery composes the arXiv search_query expression from a keyword
// sequence and the category codes of one field. Each keyword becomes a
// title/abstract disjunction, multi-word keywords are quoted so arXiv
// matches them as a phrase, and the keyword group is ANDed with a
// disjunction over all category codes:
//
//	((ti:transformer OR abs:transformer)) AND (cat:cs.AI OR cat:cs.LG)
//
// The output is deterministic for a given input, so callers may use it
// (or the inputs) directly as a cache key.
func BuildQuery(keywords, codes []string) (string, error) {
	clauses := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		// Inner quotes would break the expression grammar.
		kw = strings.ReplaceAll(strings.TrimSpace(kw), `"`, "")
		if kw == "" {
			continue
		}
		if strings.Contains(kw, " ") {
			clauses = append(clauses, fmt.Sprintf(`(ti:"%s" OR abs:"%s")`, kw, kw))
		} else {
			clauses = append(clauses, fmt.Sprintf(`(ti:%s OR abs:%s)`, kw, kw))
		}
	}
	if len(clauses) == 0 {
		return "", fmt.Errorf("%w: no usable keywords", ErrInvalidInput)
	}
	if len(codes) == 0 {
		return "", fmt.Errorf("%w: no category codes", ErrInvalidInput)
	}

	catTerms := make([]string, len(codes))
	for i, c := range codes {
		catTerms[i] = "cat:" + c
	}

	return fmt.Sprintf("(%s) AND (%s)",
		strings.Join(clauses, " OR "),
		strings.Join(catTerms, " OR ")), nil
}
