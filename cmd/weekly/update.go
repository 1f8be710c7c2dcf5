// ABOUTME: CLI command for updating a weekly report.
// ABOUTME: Unspecified fields keep their current values.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var updateFlags reportFlags

var updateCmd = &cobra.Command{
	Use:     "update <id>",
	Aliases: []string{"edit"},
	Short:   "Update a weekly report",
	Long: `Update fields of an existing report. Only the flags you pass change;
everything else keeps its current value. --date moves the report to the
week containing that date.

Examples:
  weekly update 3 --bugs 14
  weekly update 3 --fix-rate 98.2 --failures 0
  weekly update 3 --date 2024-03-11`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		existing, err := repo.GetReport(id)
		if err != nil {
			return fmt.Errorf("failed to get report: %w", err)
		}

		in := existing.Input()
		if err := updateFlags.apply(cmd, &in); err != nil {
			return err
		}

		if err := repo.UpdateReport(id, in); err != nil {
			return fmt.Errorf("failed to update report: %w", err)
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Updated report #%d (%s ~ %s)\n",
			id, in.MondayDate, in.SundayDate)
		return nil
	},
}

func init() {
	updateFlags.register(updateCmd)
	rootCmd.AddCommand(updateCmd)
}
