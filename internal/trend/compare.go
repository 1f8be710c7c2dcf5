// ABOUTME: Per-week comparison rows, headline figures, and trend series.
// ABOUTME: Each week is compared to the chronologically preceding week in the same window.
package trend

import (
	"sort"

	"github.com/harperreed/weekly/internal/models"
)

// DefaultWindow is the number of weeks in a comparison table.
const DefaultWindow = 4

// MetricChange is one metric's value for a week and its change from the previous week.
type MetricChange struct {
	Metric      models.Metric `json:"metric"`
	Value       float64       `json:"value"`
	Change      float64       `json:"change"`
	HasBaseline bool          `json:"has_baseline"`
}

// Direction classifies the change. Without a baseline it is Flat.
func (mc MetricChange) Direction() Direction {
	if !mc.HasBaseline {
		return Flat
	}
	return DirectionOf(mc.Change)
}

// Display renders the change, or "-" when there is no baseline week.
func (mc MetricChange) Display() string {
	if !mc.HasBaseline {
		return "-"
	}
	return FormatChange(mc.Change)
}

// WeekRow is a report and the changes of each tracked metric.
type WeekRow struct {
	Report  *models.WeeklyReport `json:"report"`
	Changes []MetricChange       `json:"changes"`
}

// Change returns the row's entry for metric m.
func (w WeekRow) Change(m models.Metric) (MetricChange, bool) {
	for _, c := range w.Changes {
		if c.Metric == m {
			return c, true
		}
	}
	return MetricChange{}, false
}

// Chronological returns a copy of reports sorted by Monday ascending.
func Chronological(reports []*models.WeeklyReport) []*models.WeeklyReport {
	sorted := make([]*models.WeeklyReport, len(reports))
	copy(sorted, reports)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MondayDate.Before(sorted[j].MondayDate)
	})
	return sorted
}

// Compare builds comparison rows for the given reports, newest week first.
// The earliest report has no baseline.
func Compare(reports []*models.WeeklyReport, metrics ...models.Metric) []WeekRow {
	if len(metrics) == 0 {
		metrics = models.TrendMetrics
	}

	chrono := Chronological(reports)
	rows := make([]WeekRow, len(chrono))
	for i, r := range chrono {
		var prev *models.WeeklyReport
		if i > 0 {
			prev = chrono[i-1]
		}
		rows[len(chrono)-1-i] = WeekRow{Report: r, Changes: changes(r, prev, metrics)}
	}
	return rows
}

// Recent compares only the most recent weeks. The oldest week of the window
// has no baseline even when older reports exist.
func Recent(reports []*models.WeeklyReport, weeks int) []WeekRow {
	if weeks <= 0 {
		weeks = DefaultWindow
	}
	chrono := Chronological(reports)
	if len(chrono) > weeks {
		chrono = chrono[len(chrono)-weeks:]
	}
	return Compare(chrono)
}

// Headline returns the latest week's headline metrics compared to the week
// before it. It returns nil when there are no reports.
func Headline(reports []*models.WeeklyReport) []MetricChange {
	if len(reports) == 0 {
		return nil
	}
	chrono := Chronological(reports)
	latest := chrono[len(chrono)-1]
	var prev *models.WeeklyReport
	if len(chrono) > 1 {
		prev = chrono[len(chrono)-2]
	}
	return changes(latest, prev, models.HeadlineMetrics)
}

func changes(cur, prev *models.WeeklyReport, metrics []models.Metric) []MetricChange {
	out := make([]MetricChange, 0, len(metrics))
	for _, m := range metrics {
		mc := MetricChange{Metric: m, Value: cur.Value(m)}
		if prev != nil {
			mc.HasBaseline = true
			mc.Change = WeekOverWeek(mc.Value, prev.Value(m))
		}
		out = append(out, mc)
	}
	return out
}

// Point is one value of a metric series.
type Point struct {
	Monday models.Date `json:"monday"`
	Value  float64     `json:"value"`
}

// Series returns metric m for each report in chronological order.
func Series(reports []*models.WeeklyReport, m models.Metric) []Point {
	chrono := Chronological(reports)
	points := make([]Point, 0, len(chrono))
	for _, r := range chrono {
		points = append(points, Point{Monday: r.MondayDate, Value: r.Value(m)})
	}
	return points
}
