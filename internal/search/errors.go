// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import "errors"

// Sentinel errors returned by query construction and search validation.
// Callers match them with errors.Is; every validation error is produced
// before any network request is attempted.
var (
	// ErrInvalidInput reports a malformed or empty keyword sequence.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTooManyKeywords reports a keyword count above MaxKeywords.
	ErrTooManyKeywords = errors.New("too many keywords")

	// ErrInvalidDateRange reports a reversed date range or one outside
	// arXiv's coverage.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidField reports a field name absent from the taxonomy.
	ErrInvalidField = errors.New("invalid field")

	// ErrRequestTooLarge reports a result cap above the arXiv page cap.
	ErrRequestTooLarge = errors.New("request too large")

	// ErrUpstreamUnavailable reports a transport or envelope failure
	// talking to the arXiv API.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
