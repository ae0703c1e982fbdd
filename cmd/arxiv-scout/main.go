// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-scout CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the arxiv-scout CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv-scout",
	Short: "Keyword and field scoped search over the arXiv API",
	Long: `arxiv-scout searches arXiv for papers matching a keyword set within one
research field. Fields (e.g. "Computer Science") expand to their full arXiv
category lists, multi-word keywords match as exact phrases, and results come
back as uniform paper records with identifiers, authors, timestamps, and
links.

Searches can be filtered by submission date, sorted by relevance or
submission date, cached across runs, exported as JSON, YAML, or CSL, and
replayed from the local search history.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv-scout.yaml or ~/.config/arxiv-scout/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv-scout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv-scout"))
		}
	}

	viper.SetEnvPrefix("ARXIV_SCOUT")
	viper.AutomaticEnv()

	viper.SetDefault("search.timeout", 30*time.Second)
	viper.SetDefault("search.user_agent", "arxiv-scout/"+version)
	viper.SetDefault("search.max_results", 200)
	viper.SetDefault("search.page_cap", 2000)
	viper.SetDefault("search.coverage_floor", "1991-08-14")
	viper.SetDefault("search.max_retries", 3)
	viper.SetDefault("search.request_interval", 3*time.Second)
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.path", "arxiv-scout-cache.db")
	viper.SetDefault("cache.ttl", 15*time.Minute)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.dir", "")
	viper.SetDefault("history.path", "arxiv-scout.db")
	viper.SetDefault("history.max_entries", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// appConfig assembles the typed configuration from viper.
func appConfig() types.Config {
	return types.Config{
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("search.timeout"),
				UserAgent: viper.GetString("search.user_agent"),
			},
			MaxResults:      viper.GetInt("search.max_results"),
			PageCap:         viper.GetInt("search.page_cap"),
			CoverageFloor:   viper.GetString("search.coverage_floor"),
			MaxRetries:      viper.GetInt("search.max_retries"),
			RequestInterval: viper.GetDuration("search.request_interval"),
		},
		Cache: types.CacheConfig{
			Enabled: viper.GetBool("cache.enabled"),
			Path:    viper.GetString("cache.path"),
			TTL:     viper.GetDuration("cache.ttl"),
		},
		Log: types.LogConfig{
			Level: viper.GetString("log.level"),
			Dir:   viper.GetString("log.dir"),
		},
		History: types.HistoryConfig{
			Path:       viper.GetString("history.path"),
			MaxEntries: viper.GetInt("history.max_entries"),
		},
		TaxonomyFile: viper.GetString("taxonomy_file"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
