package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List research fields and their arXiv category codes",
	RunE: func(cmd *cobra.Command, args []string) error {
		tax, err := loadTaxonomy(appConfig())
		if err != nil {
			return err
		}

		verbose, _ := cmd.Flags().GetBool("codes")
		for _, name := range tax.Fields() {
			codes, _ := tax.Codes(name)
			if verbose {
				fmt.Printf("%s:\n  %s\n", name, strings.Join(codes, ", "))
			} else {
				fmt.Printf("%-42s %d categories\n", name, len(codes))
			}
		}
		return nil
	},
}

func init() {
	fieldsCmd.Flags().Bool("codes", false, "list every category code per field")

	rootCmd.AddCommand(fieldsCmd)
}
