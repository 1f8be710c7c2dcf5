// ABOUTME: CLI command printing the Monday..Sunday range of a week.
package main

import (
	"fmt"

	"github.com/harperreed/weekly/internal/models"
	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:   "week [date]",
	Short: "Show the Monday..Sunday range containing a date",
	Long: `Print the week range containing a date (default: today).

Weeks start on Monday. Sunday belongs to the week that began six days before.

Examples:
  weekly week               # 2024-03-11 ~ 2024-03-17
  weekly week 2024-03-17    # 2024-03-11 ~ 2024-03-17`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{noStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		day := models.Today()
		if len(args) == 1 {
			d, err := models.ParseDate(args[0])
			if err != nil {
				return err
			}
			day = d
		}

		monday, sunday := models.WeekBounds(day)
		fmt.Fprintf(cmd.OutOrStdout(), "%s ~ %s\n", monday, sunday)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
}
