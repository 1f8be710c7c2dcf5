// ABOUTME: Tests for WeeklyReport, week bounds, and input validation.
// ABOUTME: Covers Monday/Sunday computation across every weekday and year boundaries.
package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name       string
		day        string
		wantMonday string
		wantSunday string
	}{
		{"monday itself", "2024-01-01", "2024-01-01", "2024-01-07"},
		{"wednesday", "2024-01-03", "2024-01-01", "2024-01-07"},
		{"sunday", "2024-01-07", "2024-01-01", "2024-01-07"},
		{"next monday", "2024-01-08", "2024-01-08", "2024-01-14"},
		{"crosses year", "2025-01-01", "2024-12-30", "2025-01-05"},
		{"leap day", "2024-02-29", "2024-02-26", "2024-03-03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monday, sunday := WeekBounds(MustParseDate(tt.day))
			if monday.String() != tt.wantMonday {
				t.Errorf("monday = %s, want %s", monday, tt.wantMonday)
			}
			if sunday.String() != tt.wantSunday {
				t.Errorf("sunday = %s, want %s", sunday, tt.wantSunday)
			}
		})
	}
}

func TestWeekBoundsContainsEveryDay(t *testing.T) {
	start := MustParseDate("2023-12-25")
	for i := 0; i < 400; i++ {
		d := start.AddDays(i)
		monday, sunday := WeekBounds(d)

		if monday.Weekday() != time.Monday {
			t.Fatalf("%s: monday %s is a %s", d, monday, monday.Weekday())
		}
		if d.Before(monday) || d.After(sunday) {
			t.Fatalf("%s not within %s..%s", d, monday, sunday)
		}
		if monday.DaysUntil(sunday) != 6 {
			t.Fatalf("%s: sunday %s is not monday+6", d, sunday)
		}
	}
}

func TestWeekOfUsesLocalDay(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	// Sunday 23:30 in UTC+8 is still Sunday locally.
	ts := time.Date(2024, 1, 7, 23, 30, 0, 0, loc)
	monday, sunday := WeekOf(ts)
	if monday.String() != "2024-01-01" || sunday.String() != "2024-01-07" {
		t.Errorf("WeekOf(%v) = %s..%s", ts, monday, sunday)
	}
}

func TestNewReportInput(t *testing.T) {
	in := NewReportInput(MustParseDate("2024-01-10"))
	if in.MondayDate.String() != "2024-01-08" {
		t.Errorf("MondayDate = %s, want 2024-01-08", in.MondayDate)
	}
	if in.SundayDate.String() != "2024-01-14" {
		t.Errorf("SundayDate = %s, want 2024-01-14", in.SundayDate)
	}
	if in.BugFixRate != DefaultBugFixRate {
		t.Errorf("BugFixRate = %v, want %v", in.BugFixRate, DefaultBugFixRate)
	}
	if err := in.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidate(t *testing.T) {
	valid := NewReportInput(MustParseDate("2024-01-01"))

	tests := []struct {
		name    string
		mutate  func(in *ReportInput)
		wantSub string
	}{
		{"missing dates", func(in *ReportInput) { in.MondayDate = Date{} }, "required"},
		{"not a monday", func(in *ReportInput) {
			in.MondayDate = MustParseDate("2024-01-02")
			in.SundayDate = MustParseDate("2024-01-08")
		}, "not a Monday"},
		{"wrong span", func(in *ReportInput) { in.SundayDate = MustParseDate("2024-01-06") }, "six days"},
		{"negative bugs", func(in *ReportInput) { in.FixedBugs = -1 }, "fixed_bugs"},
		{"negative reuse", func(in *ReportInput) { in.NewReuseEvents = -3 }, "new_reuse_events"},
		{"rate above 100", func(in *ReportInput) { in.BugFixRate = 100.1 }, "bug_fix_rate"},
		{"rate below 0", func(in *ReportInput) { in.BugFixRate = -0.5 }, "bug_fix_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := in.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidReport) {
				t.Errorf("error %v does not wrap ErrInvalidReport", err)
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestReportJSON(t *testing.T) {
	r := WeeklyReport{
		ID:          3,
		ReportInput: NewReportInput(MustParseDate("2024-01-01")),
	}
	r.OnlineRequirements = 10

	data, err := json.Marshal(&r)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	s := string(data)
	for _, want := range []string{`"id":3`, `"monday_date":"2024-01-01"`, `"sunday_date":"2024-01-07"`, `"online_requirements":10`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON %s missing %s", s, want)
		}
	}

	var back WeeklyReport
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.MondayDate.Equal(r.MondayDate) || back.OnlineRequirements != 10 {
		t.Errorf("round trip mismatch: %+v", back)
	}
}

func TestParseDateInvalid(t *testing.T) {
	if _, err := ParseDate("01/02/2024"); err == nil {
		t.Error("expected error for non ISO date")
	}
	var d Date
	if err := json.Unmarshal([]byte(`"2024-13-01"`), &d); err == nil {
		t.Error("expected error for month 13")
	}
}
