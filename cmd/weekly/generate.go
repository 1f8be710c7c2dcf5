// ABOUTME: CLI command inserting sample data.
// ABOUTME: Seeds seven weeks ending with the current week.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/weekly/internal/sample"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Insert seven weeks of sample data",
	Long: `Insert randomized reports for the seven weeks ending with the current week.

Stops at the first week that fails, for example when that week already has
a report. Weeks inserted before the failure are kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := sample.New().Seed(repo)

		out := cmd.OutOrStdout()
		faint := color.New(color.Faint)
		for _, r := range results {
			fmt.Fprintf(out, "  %s %s ~ %s\n", faint.Sprintf("#%d", r.ID), r.Input.MondayDate, r.Input.SundayDate)
		}
		if err != nil {
			return fmt.Errorf("sample data stopped after %d of %d weeks: %w", len(results), sample.Weeks, err)
		}

		color.New(color.FgGreen).Fprintf(out, "✓ Generated %d weeks of sample data\n", len(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
