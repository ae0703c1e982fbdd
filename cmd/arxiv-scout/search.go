// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/arxiv-scout/internal/cache"
	"github.com/pdiddy/arxiv-scout/internal/history"
	"github.com/pdiddy/arxiv-scout/internal/logging"
	"github.com/pdiddy/arxiv-scout/internal/search"
	"github.com/pdiddy/arxiv-scout/internal/taxonomy"
	"github.com/pdiddy/arxiv-scout/pkg/types"
)

const dateFmt = "2006-01-02"

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search arXiv for papers in one research field",
	Long: `Search queries the arXiv API for papers matching a keyword set within one
research field. The field expands to its full arXiv category list and
multi-word keywords match as exact phrases. With no keywords, the field's
default keyword set is used where one exists.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("keywords", "", "comma-separated keywords (phrases allowed)")
	searchCmd.Flags().String("field", "Computer Science", "research field to search within")
	searchCmd.Flags().String("from", "", "submission date range start, YYYY-MM-DD (default: one year before --to)")
	searchCmd.Flags().String("to", "", "submission date range end, YYYY-MM-DD (default: today)")
	searchCmd.Flags().String("sort", "relevance", "result ordering: relevance or submitted")
	searchCmd.Flags().Int("max-results", 0, "maximum number of results (default from config)")
	searchCmd.Flags().Bool("json", false, "output papers as JSON")
	searchCmd.Flags().Bool("csl", false, "output papers as a CSL-YAML bibliography")
	searchCmd.Flags().String("out", "", "also save the search and its papers to a YAML file")
	searchCmd.Flags().Bool("no-cache", false, "bypass the results cache and always query arXiv")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := appConfig()

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Dir)
	if err != nil {
		return err
	}
	defer logger.Sync()

	tax, err := loadTaxonomy(cfg)
	if err != nil {
		return err
	}

	req, err := requestFromFlags(cmd)
	if err != nil {
		return err
	}

	searcher, err := search.New(tax, search.NewArxivClient(cfg.Search), cfg.Search)
	if err != nil {
		return err
	}

	searchFn := cache.SearchFunc(searcher.Search)
	noCache, _ := cmd.Flags().GetBool("no-cache")
	if cfg.Cache.Enabled && !noCache {
		// The cache lives on disk so repeated runs of the same search
		// reuse one arXiv fetch. Cache failures are never fatal.
		results, err := cache.OpenDisk(cfg.Cache.Path, cfg.Cache.TTL)
		if err != nil {
			logger.Warn("results cache unavailable", zap.Error(err))
		} else {
			defer results.Close()
			searchFn = cache.Memoize(results, searchFn)
		}
	}

	papers, err := searchFn(cmd.Context(), req)
	if err != nil {
		return err
	}

	logger.Info("search complete",
		zap.Strings("keywords", req.Keywords),
		zap.String("field", req.Field),
		zap.String("from", req.From.Format(dateFmt)),
		zap.String("to", req.To.Format(dateFmt)),
		zap.Int("papers", len(papers)))

	recordHistory(cmd, cfg, tax, req, len(papers), logger)

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := search.WriteResultFile(out, req, papers); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Saved results to", out)
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	asCSL, _ := cmd.Flags().GetBool("csl")
	switch {
	case asJSON:
		return search.FormatJSON(papers, os.Stdout)
	case asCSL:
		return search.FormatCSL(papers, os.Stdout)
	default:
		search.FormatTable(papers, os.Stdout)
		return nil
	}
}

func loadTaxonomy(cfg types.Config) (*taxonomy.Taxonomy, error) {
	if cfg.TaxonomyFile != "" {
		return taxonomy.LoadFile(cfg.TaxonomyFile)
	}
	return taxonomy.Default(), nil
}

func requestFromFlags(cmd *cobra.Command) (search.Request, error) {
	var req search.Request

	if kw, _ := cmd.Flags().GetString("keywords"); kw != "" {
		for _, k := range strings.Split(kw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				req.Keywords = append(req.Keywords, k)
			}
		}
	}
	req.Field, _ = cmd.Flags().GetString("field")
	req.MaxResults, _ = cmd.Flags().GetInt("max-results")

	sortFlag, _ := cmd.Flags().GetString("sort")
	sort, err := search.ParseSortMode(sortFlag)
	if err != nil {
		return req, err
	}
	req.Sort = sort

	toFlag, _ := cmd.Flags().GetString("to")
	if toFlag == "" {
		req.To = time.Now().Truncate(24 * time.Hour)
	} else if req.To, err = time.Parse(dateFmt, toFlag); err != nil {
		return req, fmt.Errorf("invalid --to date %q: %w", toFlag, err)
	}

	fromFlag, _ := cmd.Flags().GetString("from")
	if fromFlag == "" {
		req.From = req.To.AddDate(-1, 0, 0)
	} else if req.From, err = time.Parse(dateFmt, fromFlag); err != nil {
		return req, fmt.Errorf("invalid --from date %q: %w", fromFlag, err)
	}

	return req, nil
}

// recordHistory appends the search to the local history database. History
// failures are logged, never fatal: the search itself already succeeded.
func recordHistory(cmd *cobra.Command, cfg types.Config, tax *taxonomy.Taxonomy, req search.Request, count int, logger *zap.Logger) {
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		logger.Warn("history unavailable", zap.Error(err))
		return
	}
	defer store.Close()

	keywords := req.Keywords
	if len(keywords) == 0 {
		keywords = tax.DefaultKeywords(req.Field)
	}
	expression := ""
	if codes, ok := tax.Codes(req.Field); ok {
		if expr, buildErr := search.BuildQuery(keywords, codes); buildErr == nil {
			expression = expr
		}
	}

	rec := history.Record{
		Field:       req.Field,
		Keywords:    keywords,
		DateFrom:    req.From.Format(dateFmt),
		DateTo:      req.To.Format(dateFmt),
		Sort:        string(req.Sort),
		MaxResults:  req.MaxResults,
		ResultCount: count,
		Expression:  expression,
	}
	if err := store.Record(cmd.Context(), rec); err != nil {
		logger.Warn("recording history failed", zap.Error(err))
	}
}
