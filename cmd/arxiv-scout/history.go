package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-scout/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently executed searches",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig()

		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		n, _ := cmd.Flags().GetInt("limit")
		if n <= 0 {
			n = cfg.History.MaxEntries
		}

		records, err := store.Recent(cmd.Context(), n)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No searches recorded yet.")
			return nil
		}

		fmt.Printf("%-20s  %-30s  %-40s  %-11s  %s\n",
			"When", "Field", "Keywords", "Range", "Papers")
		fmt.Println(strings.Repeat("-", 112))
		for _, r := range records {
			keywords := strings.Join(r.Keywords, ", ")
			if len(keywords) > 40 {
				keywords = keywords[:37] + "..."
			}
			fmt.Printf("%-20s  %-30s  %-40s  %s..%s  %d\n",
				r.ExecutedAt.Format("2006-01-02 15:04"), r.Field, keywords,
				r.DateFrom, r.DateTo, r.ResultCount)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 0, "number of entries to show (default from config)")

	rootCmd.AddCommand(historyCmd)
}
