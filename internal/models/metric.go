// ABOUTME: Metric enum naming the tracked weekly counters.
// ABOUTME: Maps metric names to display labels and report field values.
package models

// Metric identifies one trackable counter of a weekly report.
type Metric string

const (
	// Requirements
	MetricOnlineRequirements Metric = "online_requirements"
	MetricOnlineReqCount     Metric = "online_req_count"

	// Bugs
	MetricFixedBugs  Metric = "fixed_bugs"
	MetricBugFixRate Metric = "bug_fix_rate"

	// Releases
	MetricReleaseOrders   Metric = "release_orders"
	MetricReleaseFailures Metric = "release_failures"

	// Reuse
	MetricNewReuseUnits  Metric = "new_reuse_units"
	MetricNewReuseEvents Metric = "new_reuse_events"
)

// MetricLabels maps metrics to their display names.
var MetricLabels = map[Metric]string{
	MetricOnlineRequirements: "Requirements shipped",
	MetricOnlineReqCount:     "Linked req docs",
	MetricFixedBugs:          "Bugs fixed",
	MetricBugFixRate:         "Bug fix rate",
	MetricReleaseOrders:      "Release orders",
	MetricReleaseFailures:    "Release failures",
	MetricNewReuseUnits:      "New reuse units",
	MetricNewReuseEvents:     "New reuse events",
}

// TrendMetrics are the counters compared week over week, in display order.
// The bug fix rate is stored but not trended.
var TrendMetrics = []Metric{
	MetricOnlineRequirements,
	MetricOnlineReqCount,
	MetricFixedBugs,
	MetricReleaseOrders,
	MetricReleaseFailures,
	MetricNewReuseUnits,
	MetricNewReuseEvents,
}

// HeadlineMetrics are shown as the "this week" key figures.
var HeadlineMetrics = []Metric{
	MetricOnlineRequirements,
	MetricFixedBugs,
	MetricReleaseOrders,
}

// IsValidMetric checks if a string names a known metric.
func IsValidMetric(s string) bool {
	_, ok := MetricLabels[Metric(s)]
	return ok
}

// Label returns the display name, falling back to the raw metric name.
func (m Metric) Label() string {
	if l, ok := MetricLabels[m]; ok {
		return l
	}
	return string(m)
}

// Value returns the report's value for metric m.
func (r *WeeklyReport) Value(m Metric) float64 {
	switch m {
	case MetricOnlineRequirements:
		return float64(r.OnlineRequirements)
	case MetricOnlineReqCount:
		return float64(r.OnlineReqCount)
	case MetricFixedBugs:
		return float64(r.FixedBugs)
	case MetricBugFixRate:
		return r.BugFixRate
	case MetricReleaseOrders:
		return float64(r.ReleaseOrders)
	case MetricReleaseFailures:
		return float64(r.ReleaseFailures)
	case MetricNewReuseUnits:
		return float64(r.NewReuseUnits)
	case MetricNewReuseEvents:
		return float64(r.NewReuseEvents)
	default:
		return 0
	}
}
