package types

import "time"

// HTTPConfig holds shared HTTP settings for components that talk to arXiv.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "arxiv-scout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the default result cap when the caller does not
	// request one (default 200).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// PageCap is the largest result count a single request may ask for.
	// arXiv serves at most 2000 entries per API call; requests above the
	// cap are rejected, not clamped.
	PageCap int `json:"page_cap" yaml:"page_cap"`

	// CoverageFloor is the earliest submission date arXiv covers
	// (YYYY-MM-DD). Date ranges starting before it are rejected.
	CoverageFloor string `json:"coverage_floor" yaml:"coverage_floor"`

	// MaxRetries is the number of retry attempts on HTTP 429 (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// RequestInterval is the minimum spacing between arXiv API calls.
	// The arXiv terms of use ask for no more than one request every 3 s.
	RequestInterval time.Duration `json:"request_interval" yaml:"request_interval"`
}

// CacheConfig holds settings for the results cache.
type CacheConfig struct {
	// Enabled controls whether search results are memoized.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path is the SQLite cache database file (default
	// "arxiv-scout-cache.db"). Entries persist across runs.
	Path string `json:"path" yaml:"path"`

	// TTL is how long a cached result set stays valid (default 15m).
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}

// LogConfig holds settings for the application logger.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, or error.
	Level string `json:"level" yaml:"level"`

	// Dir is the directory for daily log files. Empty means log to stderr.
	Dir string `json:"dir" yaml:"dir"`
}

// HistoryConfig holds settings for the search history store.
type HistoryConfig struct {
	// Path is the SQLite database file (default "arxiv-scout.db").
	Path string `json:"path" yaml:"path"`

	// MaxEntries is the default number of entries listed by the CLI.
	MaxEntries int `json:"max_entries" yaml:"max_entries"`
}

// Config groups all component configurations.
type Config struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	Cache   CacheConfig   `json:"cache" yaml:"cache"`
	Log     LogConfig     `json:"log" yaml:"log"`
	History HistoryConfig `json:"history" yaml:"history"`

	// TaxonomyFile optionally overrides the built-in field taxonomy.
	TaxonomyFile string `json:"taxonomy_file" yaml:"taxonomy_file"`
}
