// ABOUTME: CLI command charting one metric over time.
// ABOUTME: Renders a horizontal bar per week, oldest first.
package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/weekly/internal/models"
	"github.com/harperreed/weekly/internal/trend"
	"github.com/spf13/cobra"
)

const barWidth = 40

var trendMetric string

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Chart a metric over time",
	Long: `Chart one metric across every stored week, oldest first.

METRICS:

  online_requirements, online_req_count, fixed_bugs, bug_fix_rate,
  release_orders, release_failures, new_reuse_units, new_reuse_events

EXAMPLES:

  weekly trend                          # Requirements shipped
  weekly trend --metric fixed_bugs
  weekly trend -m release_failures`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidMetric(trendMetric) {
			return fmt.Errorf("unknown metric: %s", trendMetric)
		}
		m := models.Metric(trendMetric)

		reports, err := repo.ListReports()
		if err != nil {
			return fmt.Errorf("failed to list reports: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(reports) == 0 {
			fmt.Fprintln(out, "No reports found.")
			return nil
		}

		color.New(color.Bold).Fprintln(out, m.Label())
		printBars(out, m, trend.Series(reports, m))
		return nil
	},
}

func printBars(out io.Writer, m models.Metric, points []trend.Point) {
	var peak float64
	for _, p := range points {
		peak = math.Max(peak, p.Value)
	}

	bar := color.New(color.FgCyan)
	for _, p := range points {
		n := 0
		if peak > 0 {
			n = int(math.Round(p.Value / peak * barWidth))
		}
		fmt.Fprintf(out, "  %s %s %s\n",
			p.Monday,
			bar.Sprint(padRight(strings.Repeat("█", n), barWidth)),
			formatValue(m, p.Value))
	}
}

func init() {
	trendCmd.Flags().StringVarP(&trendMetric, "metric", "m", string(models.MetricOnlineRequirements), "metric to chart")
	rootCmd.AddCommand(trendCmd)
}
