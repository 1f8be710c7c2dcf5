// ABOUTME: Report field flags shared by add and update.
// ABOUTME: Only flags the user actually set are applied to a report.
package main

import (
	"fmt"
	"strconv"

	"github.com/harperreed/weekly/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type reportFlags struct {
	date         string
	requirements int
	reqCount     int
	bugs         int
	fixRate      float64
	orders       int
	failures     int
	reuseUnits   int
	reuseEvents  int
}

func (f *reportFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.date, "date", "d", "", "any date in the week (YYYY-MM-DD, default today)")
	fs.IntVarP(&f.requirements, "requirements", "r", 0, "requirements that went live")
	fs.IntVar(&f.reqCount, "req-count", 0, "online requirement count")
	fs.IntVarP(&f.bugs, "bugs", "b", 0, "bugs fixed")
	fs.Float64Var(&f.fixRate, "fix-rate", models.DefaultBugFixRate, "bug fix rate percentage (0-100)")
	fs.IntVarP(&f.orders, "orders", "o", 0, "release orders")
	fs.IntVar(&f.failures, "failures", 0, "failed release orders")
	fs.IntVar(&f.reuseUnits, "reuse-units", 0, "new reusable units")
	fs.IntVar(&f.reuseEvents, "reuse-events", 0, "new reuse events")
}

// reset restores defaults. Tests execute rootCmd repeatedly in one process.
func (f *reportFlags) reset(cmd *cobra.Command) {
	*f = reportFlags{fixRate: models.DefaultBugFixRate}
	cmd.Flags().VisitAll(func(fl *pflag.Flag) {
		fl.Changed = false
	})
}

// apply copies every flag set on cmd into in. A set --date moves the week.
func (f *reportFlags) apply(cmd *cobra.Command, in *models.ReportInput) error {
	fs := cmd.Flags()
	if fs.Changed("date") {
		day, err := models.ParseDate(f.date)
		if err != nil {
			return err
		}
		in.MondayDate, in.SundayDate = models.WeekBounds(day)
	}

	ints := []struct {
		name string
		src  int
		dst  *int
	}{
		{"requirements", f.requirements, &in.OnlineRequirements},
		{"req-count", f.reqCount, &in.OnlineReqCount},
		{"bugs", f.bugs, &in.FixedBugs},
		{"orders", f.orders, &in.ReleaseOrders},
		{"failures", f.failures, &in.ReleaseFailures},
		{"reuse-units", f.reuseUnits, &in.NewReuseUnits},
		{"reuse-events", f.reuseEvents, &in.NewReuseEvents},
	}
	for _, i := range ints {
		if fs.Changed(i.name) {
			*i.dst = i.src
		}
	}
	if fs.Changed("fix-rate") {
		in.BugFixRate = f.fixRate
	}
	return nil
}

// parseID parses a report ID argument.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid report id: %s", s)
	}
	return id, nil
}
