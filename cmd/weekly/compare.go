// ABOUTME: CLI command comparing recent weeks.
// ABOUTME: Shows each metric with its week-over-week change, colored by direction.
package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/harperreed/weekly/internal/trend"
	"github.com/spf13/cobra"
)

var compareWeeks int

var compareCmd = &cobra.Command{
	Use:     "compare",
	Aliases: []string{"cmp"},
	Short:   "Compare recent weeks",
	Long: `Compare the most recent weeks, newest first.

Each metric shows its value and change from the week before:

  ▲ +x.x%   increase
  ▼ -x.x%   decrease
  ➡ 0.0%    no change
  -         no earlier week in the window

EXAMPLES:

  weekly compare        # Last 4 weeks
  weekly compare -w 8   # Last 8 weeks`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if compareWeeks <= 0 {
			return fmt.Errorf("--weeks must be positive")
		}

		reports, err := repo.ListRecentReports(compareWeeks)
		if err != nil {
			return fmt.Errorf("failed to list reports: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(reports) == 0 {
			fmt.Fprintln(out, "No reports found.")
			return nil
		}

		for i, row := range trend.Recent(reports, compareWeeks) {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printWeekRow(out, row)
		}
		return nil
	},
}

func printWeekRow(out io.Writer, row trend.WeekRow) {
	color.New(color.Bold).Fprintf(out, "%s  %s\n",
		row.Report.Period(),
		color.New(color.Faint).Sprintf("#%d", row.Report.ID))
	for _, c := range row.Changes {
		fmt.Fprintf(out, "  %s %s %s\n",
			padRight(truncate(c.Metric.Label(), 22), 22),
			padRight(formatValue(c.Metric, c.Value), 6),
			changeColor(c).Sprint(c.Display()))
	}
}

func changeColor(c trend.MetricChange) *color.Color {
	if !c.HasBaseline {
		return color.New(color.Faint)
	}
	switch c.Direction() {
	case trend.Up:
		return color.New(color.FgGreen)
	case trend.Down:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}

func init() {
	compareCmd.Flags().IntVarP(&compareWeeks, "weeks", "w", trend.DefaultWindow, "number of recent weeks")
	rootCmd.AddCommand(compareCmd)
}
