// ABOUTME: Aggregate statistics over stored weekly reports.
package trend

import "github.com/harperreed/weekly/internal/models"

// Summary holds totals and averages across all reports.
type Summary struct {
	Records           int     `json:"records" yaml:"records"`
	TotalRequirements int     `json:"total_requirements" yaml:"total_requirements"`
	TotalFixedBugs    int     `json:"total_fixed_bugs" yaml:"total_fixed_bugs"`
	AvgReleaseOrders  float64 `json:"avg_release_orders" yaml:"avg_release_orders"`
	AvgBugFixRate     float64 `json:"avg_bug_fix_rate" yaml:"avg_bug_fix_rate"`
}

// Summarize computes the summary. Averages are zero when there are no reports.
func Summarize(reports []*models.WeeklyReport) Summary {
	s := Summary{Records: len(reports)}
	if len(reports) == 0 {
		return s
	}

	var orders int
	var rate float64
	for _, r := range reports {
		s.TotalRequirements += r.OnlineRequirements
		s.TotalFixedBugs += r.FixedBugs
		orders += r.ReleaseOrders
		rate += r.BugFixRate
	}
	s.AvgReleaseOrders = float64(orders) / float64(len(reports))
	s.AvgBugFixRate = rate / float64(len(reports))
	return s
}
