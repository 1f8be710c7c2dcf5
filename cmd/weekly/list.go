// ABOUTME: CLI command for listing weekly reports.
// ABOUTME: Prints one table row per week, newest first.
package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/harperreed/weekly/internal/models"
	"github.com/spf13/cobra"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List weekly reports",
	Long: `List weekly reports, newest week first.

OUTPUT FORMAT:

  ID  WEEK  REQ  REQ#  BUGS  FIX%  ORDERS  FAIL  UNITS  EVENTS

  The ID is what 'weekly show', 'weekly update' and 'weekly delete' take.

EXAMPLES:

  weekly list          # Every report
  weekly list -n 8     # The last 8 weeks`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			reports []*models.WeeklyReport
			err     error
		)
		if listLimit > 0 {
			reports, err = repo.ListRecentReports(listLimit)
		} else {
			reports, err = repo.ListReports()
		}
		if err != nil {
			return fmt.Errorf("failed to list reports: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(reports) == 0 {
			fmt.Fprintln(out, "No reports found.")
			return nil
		}

		printReportTable(out, reports)
		return nil
	},
}

var tableHeaders = []string{"ID", "WEEK", "REQ", "REQ#", "BUGS", "FIX%", "ORDERS", "FAIL", "UNITS", "EVENTS"}

func printReportTable(out io.Writer, reports []*models.WeeklyReport) {
	widths := []int{5, 23, 5, 5, 5, 6, 7, 5, 6, 6}

	bold := color.New(color.Bold)
	header := make([]string, len(tableHeaders))
	for i, h := range tableHeaders {
		header[i] = padRight(h, widths[i])
	}
	bold.Fprintln(out, strings.TrimRight(strings.Join(header, " "), " "))

	faint := color.New(color.Faint)
	for _, r := range reports {
		cells := []string{
			fmt.Sprintf("%d", r.OnlineRequirements),
			fmt.Sprintf("%d", r.OnlineReqCount),
			fmt.Sprintf("%d", r.FixedBugs),
			fmt.Sprintf("%.1f", r.BugFixRate),
			fmt.Sprintf("%d", r.ReleaseOrders),
			fmt.Sprintf("%d", r.ReleaseFailures),
			fmt.Sprintf("%d", r.NewReuseUnits),
			fmt.Sprintf("%d", r.NewReuseEvents),
		}
		row := faint.Sprint(padRight(fmt.Sprintf("%d", r.ID), widths[0])) + " " + padRight(r.Period(), widths[1])
		for i, c := range cells {
			row += " " + padRight(c, widths[i+2])
		}
		fmt.Fprintln(out, strings.TrimRight(row, " "))
	}
}

func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	r := []rune(s)
	return string(r[:maxLen-3]) + "..."
}

func padRight(s string, length int) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "show only the most recent N weeks (0 = all)")
	rootCmd.AddCommand(listCmd)
}
