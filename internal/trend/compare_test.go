// ABOUTME: Tests for comparison rows, headline metrics, series, and summaries.
// ABOUTME: Includes the two-week example scenario from the requirements.
package trend

import (
	"testing"

	"github.com/harperreed/weekly/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func report(day string, requirements, bugs, orders int) *models.WeeklyReport {
	r := &models.WeeklyReport{ReportInput: models.NewReportInput(models.MustParseDate(day))}
	r.OnlineRequirements = requirements
	r.FixedBugs = bugs
	r.ReleaseOrders = orders
	return r
}

func TestCompareExampleScenario(t *testing.T) {
	a := report("2024-01-01", 10, 4, 8)
	b := report("2024-01-08", 15, 4, 0)

	// Newest-first input, as returned by storage.
	rows := Compare([]*models.WeeklyReport{b, a})
	require.Len(t, rows, 2)

	assert.Equal(t, "2024-01-08", rows[0].Report.MondayDate.String())
	req, ok := rows[0].Change(models.MetricOnlineRequirements)
	require.True(t, ok)
	assert.True(t, req.HasBaseline)
	assert.InDelta(t, 50.0, req.Change, 1e-9)
	assert.Equal(t, Up, req.Direction())
	assert.Equal(t, "▲ +50.0%", req.Display())
	assert.Equal(t, "+50.0%", SignedPercent(req.Change))

	bugs, _ := rows[0].Change(models.MetricFixedBugs)
	assert.Equal(t, Flat, bugs.Direction())

	orders, _ := rows[0].Change(models.MetricReleaseOrders)
	assert.Equal(t, "▼ -100.0%", orders.Display())

	// Earliest week has no baseline
	first, _ := rows[1].Change(models.MetricOnlineRequirements)
	assert.False(t, first.HasBaseline)
	assert.Equal(t, "-", first.Display())
	assert.Equal(t, Flat, first.Direction())
}

func TestCompareCoversTrendMetrics(t *testing.T) {
	rows := Compare([]*models.WeeklyReport{report("2024-01-01", 1, 1, 1)})
	require.Len(t, rows, 1)
	assert.Len(t, rows[0].Changes, len(models.TrendMetrics))

	_, ok := rows[0].Change(models.MetricBugFixRate)
	assert.False(t, ok, "bug fix rate is not trended")
}

func TestRecentWindowHasNoBaselineForOldest(t *testing.T) {
	var reports []*models.WeeklyReport
	days := []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22", "2024-01-29", "2024-02-05"}
	for i, d := range days {
		reports = append(reports, report(d, i+1, 0, 0))
	}

	rows := Recent(reports, 4)
	require.Len(t, rows, 4)
	assert.Equal(t, "2024-02-05", rows[0].Report.MondayDate.String())
	assert.Equal(t, "2024-01-15", rows[3].Report.MondayDate.String())

	oldest, _ := rows[3].Change(models.MetricOnlineRequirements)
	assert.False(t, oldest.HasBaseline)

	newest, _ := rows[0].Change(models.MetricOnlineRequirements)
	assert.InDelta(t, WeekOverWeek(6, 5), newest.Change, 1e-9)

	// Non-positive window falls back to the default
	assert.Len(t, Recent(reports, 0), DefaultWindow)
	// Window larger than the data
	assert.Len(t, Recent(reports[:2], 10), 2)
}

func TestHeadline(t *testing.T) {
	assert.Nil(t, Headline(nil))

	single := Headline([]*models.WeeklyReport{report("2024-01-01", 10, 5, 9)})
	require.Len(t, single, len(models.HeadlineMetrics))
	for _, mc := range single {
		assert.False(t, mc.HasBaseline)
	}

	got := Headline([]*models.WeeklyReport{
		report("2024-01-08", 15, 0, 9),
		report("2024-01-01", 10, 5, 9),
	})
	require.Len(t, got, 3)
	assert.Equal(t, models.MetricOnlineRequirements, got[0].Metric)
	assert.InDelta(t, 50.0, got[0].Change, 1e-9)
	assert.Equal(t, models.MetricFixedBugs, got[1].Metric)
	assert.InDelta(t, -100.0, got[1].Change, 1e-9)
	assert.Equal(t, models.MetricReleaseOrders, got[2].Metric)
	assert.Equal(t, Flat, got[2].Direction())
}

func TestSeries(t *testing.T) {
	points := Series([]*models.WeeklyReport{
		report("2024-01-15", 3, 0, 0),
		report("2024-01-01", 1, 0, 0),
		report("2024-01-08", 2, 0, 0),
	}, models.MetricOnlineRequirements)

	require.Len(t, points, 3)
	for i, p := range points {
		assert.Equal(t, float64(i+1), p.Value)
	}
	assert.Equal(t, "2024-01-01", points[0].Monday.String())
}

func TestChronologicalDoesNotMutateInput(t *testing.T) {
	in := []*models.WeeklyReport{report("2024-01-08", 0, 0, 0), report("2024-01-01", 0, 0, 0)}
	_ = Chronological(in)
	assert.Equal(t, "2024-01-08", in[0].MondayDate.String())
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))

	a := report("2024-01-01", 10, 4, 8)
	a.BugFixRate = 90
	b := report("2024-01-08", 15, 6, 13)
	b.BugFixRate = 100

	s := Summarize([]*models.WeeklyReport{a, b})
	assert.Equal(t, 2, s.Records)
	assert.Equal(t, 25, s.TotalRequirements)
	assert.Equal(t, 10, s.TotalFixedBugs)
	assert.InDelta(t, 10.5, s.AvgReleaseOrders, 1e-9)
	assert.InDelta(t, 95.0, s.AvgBugFixRate, 1e-9)
}
