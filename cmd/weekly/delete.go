// ABOUTME: CLI command for deleting a weekly report.
// ABOUTME: Deletion is permanent.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a weekly report",
	Long: `Delete a weekly report by its ID.

The ID is shown in the first column of 'weekly list' output.

CAUTION:

  This permanently deletes the report. There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		report, err := repo.GetReport(id)
		if err != nil {
			return fmt.Errorf("report not found: %d", id)
		}

		deleted, err := repo.DeleteReport(id)
		if err != nil {
			return fmt.Errorf("failed to delete report: %w", err)
		}
		if !deleted {
			return fmt.Errorf("report not found: %d", id)
		}

		color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "✗ Deleted report #%d (%s)\n", id, report.Period())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
