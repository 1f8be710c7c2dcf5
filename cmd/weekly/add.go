// ABOUTME: CLI command for adding a weekly report.
// ABOUTME: The report covers the Monday..Sunday week containing --date.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/weekly/internal/models"
	"github.com/harperreed/weekly/internal/storage"
	"github.com/spf13/cobra"
)

var addFlags reportFlags

var addCmd = &cobra.Command{
	Use:     "add",
	Aliases: []string{"a"},
	Short:   "Add a weekly report",
	Long: `Add the report for the week containing --date (default: today).

Each Monday..Sunday week can have only one report. Use 'weekly update'
to change an existing one.

Examples:
  weekly add --requirements 12 --req-count 30 --bugs 8 --orders 20
  weekly add --date 2024-03-06 -r 9 -b 11 --fix-rate 97.5
  weekly add -r 10 --failures 2 --reuse-units 3 --reuse-events 5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := models.NewReportInput(models.Today())
		if err := addFlags.apply(cmd, &in); err != nil {
			return err
		}

		id, err := repo.CreateReport(in)
		if err != nil {
			var dup *storage.DuplicateWeekError
			if errors.As(err, &dup) {
				return fmt.Errorf("%w\nuse 'weekly update %d' to change it", err, dup.ExistingID)
			}
			return fmt.Errorf("failed to create report: %w", err)
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Added report for %s ~ %s\n", in.MondayDate, in.SundayDate)
		fmt.Fprintf(out, "  %s requirements %d, bugs %d, releases %d\n",
			color.New(color.Faint).Sprintf("#%d", id),
			in.OnlineRequirements, in.FixedBugs, in.ReleaseOrders)

		return nil
	},
}

func init() {
	addFlags.register(addCmd)
	rootCmd.AddCommand(addCmd)
}
