// ABOUTME: CLI command for showing one weekly report.
// ABOUTME: Renders as a table, JSON, or YAML.
package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/harperreed/weekly/internal/models"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var showFormat string

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a weekly report",
	Long: `Show every field of one weekly report.

FORMATS:

  table   Labelled fields (default)
  json    Indented JSON
  yaml    YAML

EXAMPLES:

  weekly show 3
  weekly show 3 --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		report, err := repo.GetReport(id)
		if err != nil {
			return fmt.Errorf("failed to get report: %w", err)
		}

		return renderReport(cmd.OutOrStdout(), report, showFormat)
	},
}

func renderReport(out io.Writer, r *models.WeeklyReport, format string) error {
	switch format {
	case "", "table":
		printReportDetail(out, r)
		return nil
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Fprint(out, string(data))
		return nil
	default:
		return fmt.Errorf("unknown format: %s (use table, json, or yaml)", format)
	}
}

func printReportDetail(out io.Writer, r *models.WeeklyReport) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	bold.Fprintf(out, "Report #%d  %s\n", r.ID, r.Period())
	for _, m := range models.TrendMetrics {
		fmt.Fprintf(out, "  %s %s\n", padRight(m.Label(), 22), formatValue(m, r.Value(m)))
	}
	fmt.Fprintf(out, "  %s %.1f%%\n", padRight(models.MetricBugFixRate.Label(), 22), r.BugFixRate)
	faint.Fprintf(out, "  created %s, updated %s\n",
		r.CreatedAt.Local().Format("2006-01-02 15:04"),
		r.UpdatedAt.Local().Format("2006-01-02 15:04"))
}

// formatValue prints counters as integers and rates with one decimal.
func formatValue(m models.Metric, v float64) string {
	if m == models.MetricBugFixRate {
		return fmt.Sprintf("%.1f", v)
	}
	return fmt.Sprintf("%.0f", v)
}

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "table", "output format: table, json, yaml")
	rootCmd.AddCommand(showCmd)
}
