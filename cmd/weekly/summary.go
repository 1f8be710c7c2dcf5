// ABOUTME: CLI command printing overall statistics.
// ABOUTME: Includes this week's headline figures with their change.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/weekly/internal/trend"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show overall statistics",
	Long: `Show totals and averages across every report, plus the latest
week's key figures compared to the week before.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reports, err := repo.ListReports()
		if err != nil {
			return fmt.Errorf("failed to list reports: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(reports) == 0 {
			fmt.Fprintln(out, "No reports found.")
			return nil
		}

		bold := color.New(color.Bold)
		bold.Fprintf(out, "Latest week  %s\n", reports[0].Period())
		for _, c := range trend.Headline(reports) {
			fmt.Fprintf(out, "  %s %s %s\n",
				padRight(c.Metric.Label(), 22),
				padRight(formatValue(c.Metric, c.Value), 6),
				changeColor(c).Sprint(c.Display()))
		}

		s := trend.Summarize(reports)
		fmt.Fprintln(out)
		bold.Fprintln(out, "All weeks")
		fmt.Fprintf(out, "  %s %d\n", padRight("Reports", 22), s.Records)
		fmt.Fprintf(out, "  %s %d\n", padRight("Requirements shipped", 22), s.TotalRequirements)
		fmt.Fprintf(out, "  %s %d\n", padRight("Bugs fixed", 22), s.TotalFixedBugs)
		fmt.Fprintf(out, "  %s %.1f\n", padRight("Avg release orders", 22), s.AvgReleaseOrders)
		fmt.Fprintf(out, "  %s %.1f%%\n", padRight("Avg bug fix rate", 22), s.AvgBugFixRate)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
