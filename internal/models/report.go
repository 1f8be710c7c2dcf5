// ABOUTME: WeeklyReport model and editable report input.
// ABOUTME: Computes week bounds and validates counters before they reach storage.
package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidReport is returned when report input fails validation.
var ErrInvalidReport = errors.New("invalid report")

// DefaultBugFixRate is the rate recorded when the caller does not supply one.
const DefaultBugFixRate = 95.0

// ReportInput holds every editable field of a weekly report.
type ReportInput struct {
	MondayDate         Date    `json:"monday_date" yaml:"monday_date"`
	SundayDate         Date    `json:"sunday_date" yaml:"sunday_date"`
	OnlineRequirements int     `json:"online_requirements" yaml:"online_requirements"`
	OnlineReqCount     int     `json:"online_req_count" yaml:"online_req_count"`
	FixedBugs          int     `json:"fixed_bugs" yaml:"fixed_bugs"`
	BugFixRate         float64 `json:"bug_fix_rate" yaml:"bug_fix_rate"`
	ReleaseOrders      int     `json:"release_orders" yaml:"release_orders"`
	ReleaseFailures    int     `json:"release_failures" yaml:"release_failures"`
	NewReuseUnits      int     `json:"new_reuse_units" yaml:"new_reuse_units"`
	NewReuseEvents     int     `json:"new_reuse_events" yaml:"new_reuse_events"`
}

// WeeklyReport is one stored row, covering a single Monday..Sunday week.
type WeeklyReport struct {
	ID          int64 `json:"id" yaml:"id"`
	ReportInput `yaml:",inline"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
}

// WeekOf returns the Monday and Sunday of the week containing t.
// Monday counts as weekday index 0.
func WeekOf(t time.Time) (monday, sunday Date) {
	return WeekBounds(DateOf(t))
}

// WeekBounds returns the Monday and Sunday of the week containing d.
func WeekBounds(d Date) (monday, sunday Date) {
	monday = d.AddDays(-weekdayIndex(d.Weekday()))
	return monday, monday.AddDays(6)
}

func weekdayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// NewReportInput returns an empty input for the week containing day.
func NewReportInput(day Date) ReportInput {
	monday, sunday := WeekBounds(day)
	return ReportInput{
		MondayDate: monday,
		SundayDate: sunday,
		BugFixRate: DefaultBugFixRate,
	}
}

// Validate checks the week range and counter bounds.
func (in ReportInput) Validate() error {
	if in.MondayDate.IsZero() || in.SundayDate.IsZero() {
		return fmt.Errorf("%w: monday_date and sunday_date are required", ErrInvalidReport)
	}
	if in.MondayDate.Weekday() != time.Monday {
		return fmt.Errorf("%w: %s is not a Monday", ErrInvalidReport, in.MondayDate)
	}
	if !in.SundayDate.Equal(in.MondayDate.AddDays(6)) {
		return fmt.Errorf("%w: sunday_date %s must be six days after %s",
			ErrInvalidReport, in.SundayDate, in.MondayDate)
	}

	counters := []struct {
		name  string
		value int
	}{
		{"online_requirements", in.OnlineRequirements},
		{"online_req_count", in.OnlineReqCount},
		{"fixed_bugs", in.FixedBugs},
		{"release_orders", in.ReleaseOrders},
		{"release_failures", in.ReleaseFailures},
		{"new_reuse_units", in.NewReuseUnits},
		{"new_reuse_events", in.NewReuseEvents},
	}
	for _, c := range counters {
		if c.value < 0 {
			return fmt.Errorf("%w: %s must not be negative (got %d)", ErrInvalidReport, c.name, c.value)
		}
	}

	if in.BugFixRate < 0 || in.BugFixRate > 100 {
		return fmt.Errorf("%w: bug_fix_rate must be between 0 and 100 (got %.1f)", ErrInvalidReport, in.BugFixRate)
	}
	return nil
}

// Input returns a copy of the report's editable fields.
func (r *WeeklyReport) Input() ReportInput {
	return r.ReportInput
}

// Period renders the week range for display, e.g. "2024-01-01 ~ 2024-01-07".
func (r *WeeklyReport) Period() string {
	return fmt.Sprintf("%s ~ %s", r.MondayDate, r.SundayDate)
}
