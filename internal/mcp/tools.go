// ABOUTME: MCP tool implementations for weekly reports.
// ABOUTME: Provides report CRUD, week bounds, and week-over-week comparison.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/weekly/internal/models"
	"github.com/harperreed/weekly/internal/trend"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_report",
		Description: "Record the weekly report for the week containing a date (defaults to this week)",
	}, s.handleAddReport)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_reports",
		Description: "List weekly reports, newest week first",
	}, s.handleListReports)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_report",
		Description: "Get a weekly report by ID or by a date within its week",
	}, s.handleGetReport)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_report",
		Description: "Change fields of an existing weekly report; omitted fields keep their values",
	}, s.handleUpdateReport)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_report",
		Description: "Delete a weekly report by ID",
	}, s.handleDeleteReport)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "week_bounds",
		Description: "Get the Monday and Sunday of the week containing a date",
	}, s.handleWeekBounds)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "compare_weeks",
		Description: "Compare the most recent weeks, with week-over-week change for each metric",
	}, s.handleCompareWeeks)
}

// Tool input/output types

// reportCounters are the editable counters shared by add and update.
// Nil means "not provided".
type reportCounters struct {
	OnlineRequirements *int     `json:"online_requirements,omitempty" jsonschema:"Requirements that went live this week"`
	OnlineReqCount     *int     `json:"online_req_count,omitempty" jsonschema:"Online requirement count"`
	FixedBugs          *int     `json:"fixed_bugs,omitempty" jsonschema:"Bugs fixed this week"`
	BugFixRate         *float64 `json:"bug_fix_rate,omitempty" jsonschema:"Bug fix rate percentage from 0 to 100 (default 95)"`
	ReleaseOrders      *int     `json:"release_orders,omitempty" jsonschema:"Release orders this week"`
	ReleaseFailures    *int     `json:"release_failures,omitempty" jsonschema:"Failed release orders this week"`
	NewReuseUnits      *int     `json:"new_reuse_units,omitempty" jsonschema:"New reusable units"`
	NewReuseEvents     *int     `json:"new_reuse_events,omitempty" jsonschema:"New reuse events"`
}

func (f reportCounters) apply(in *models.ReportInput) {
	setInt := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	setInt(&in.OnlineRequirements, f.OnlineRequirements)
	setInt(&in.OnlineReqCount, f.OnlineReqCount)
	setInt(&in.FixedBugs, f.FixedBugs)
	setInt(&in.ReleaseOrders, f.ReleaseOrders)
	setInt(&in.ReleaseFailures, f.ReleaseFailures)
	setInt(&in.NewReuseUnits, f.NewReuseUnits)
	setInt(&in.NewReuseEvents, f.NewReuseEvents)
	if f.BugFixRate != nil {
		in.BugFixRate = *f.BugFixRate
	}
}

type addReportInput struct {
	Date string `json:"date,omitempty" jsonschema:"Any date in the week (YYYY-MM-DD), defaults to today"`
	reportCounters
}

type reportOutput struct {
	ID      int64  `json:"id"`
	Week    string `json:"week"`
	Message string `json:"message"`
}

type listReportsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results, newest first (default all)"`
}

type getReportInput struct {
	ID   int64  `json:"id,omitempty" jsonschema:"Report ID"`
	Date string `json:"date,omitempty" jsonschema:"Any date in the report's week (YYYY-MM-DD), used when id is not given"`
}

type updateReportInput struct {
	ID   int64  `json:"id" jsonschema:"Report ID"`
	Date string `json:"date,omitempty" jsonschema:"Move the report to the week containing this date (YYYY-MM-DD)"`
	reportCounters
}

type deleteReportInput struct {
	ID int64 `json:"id" jsonschema:"Report ID"`
}

type weekBoundsInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type weekBoundsOutput struct {
	Date   string `json:"date"`
	Monday string `json:"monday"`
	Sunday string `json:"sunday"`
}

type compareWeeksInput struct {
	Weeks int `json:"weeks,omitempty" jsonschema:"Number of recent weeks to compare (default 4)"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleAddReport(ctx context.Context, req *mcp.CallToolRequest, input addReportInput) (*mcp.CallToolResult, reportOutput, error) {
	day, err := parseDay(input.Date)
	if err != nil {
		return nil, reportOutput{}, err
	}

	in := models.NewReportInput(day)
	input.apply(&in)

	id, err := s.repo.CreateReport(in)
	if err != nil {
		return nil, reportOutput{}, fmt.Errorf("failed to create report: %w", err)
	}

	week := in.MondayDate.String() + " ~ " + in.SundayDate.String()
	return nil, reportOutput{
		ID:      id,
		Week:    week,
		Message: fmt.Sprintf("Added report for %s (ID: %d)", week, id),
	}, nil
}

func (s *Server) handleListReports(ctx context.Context, req *mcp.CallToolRequest, input listReportsInput) (*mcp.CallToolResult, any, error) {
	var (
		reports []*models.WeeklyReport
		err     error
	)
	if input.Limit > 0 {
		reports, err = s.repo.ListRecentReports(input.Limit)
	} else {
		reports, err = s.repo.ListReports()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list reports: %w", err)
	}

	if len(reports) == 0 {
		return nil, map[string]interface{}{"message": "No reports found."}, nil
	}

	return nil, map[string]interface{}{"reports": reports, "count": len(reports)}, nil
}

func (s *Server) handleGetReport(ctx context.Context, req *mcp.CallToolRequest, input getReportInput) (*mcp.CallToolResult, any, error) {
	if input.ID > 0 {
		r, err := s.repo.GetReport(input.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get report: %w", err)
		}
		return nil, r, nil
	}

	day, err := parseDay(input.Date)
	if err != nil {
		return nil, nil, err
	}
	monday, _ := models.WeekBounds(day)
	r, err := s.repo.GetReportByWeek(monday)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get report: %w", err)
	}
	return nil, r, nil
}

func (s *Server) handleUpdateReport(ctx context.Context, req *mcp.CallToolRequest, input updateReportInput) (*mcp.CallToolResult, reportOutput, error) {
	existing, err := s.repo.GetReport(input.ID)
	if err != nil {
		return nil, reportOutput{}, fmt.Errorf("failed to get report: %w", err)
	}

	in := existing.Input()
	if input.Date != "" {
		day, err := models.ParseDate(input.Date)
		if err != nil {
			return nil, reportOutput{}, err
		}
		in.MondayDate, in.SundayDate = models.WeekBounds(day)
	}
	input.apply(&in)

	if err := s.repo.UpdateReport(input.ID, in); err != nil {
		return nil, reportOutput{}, fmt.Errorf("failed to update report: %w", err)
	}

	week := in.MondayDate.String() + " ~ " + in.SundayDate.String()
	return nil, reportOutput{
		ID:      input.ID,
		Week:    week,
		Message: fmt.Sprintf("Updated report %d (%s)", input.ID, week),
	}, nil
}

func (s *Server) handleDeleteReport(ctx context.Context, req *mcp.CallToolRequest, input deleteReportInput) (*mcp.CallToolResult, simpleOutput, error) {
	deleted, err := s.repo.DeleteReport(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete report: %w", err)
	}
	if !deleted {
		return nil, simpleOutput{}, fmt.Errorf("report not found: %d", input.ID)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted report: %d", input.ID),
	}, nil
}

func (s *Server) handleWeekBounds(ctx context.Context, req *mcp.CallToolRequest, input weekBoundsInput) (*mcp.CallToolResult, weekBoundsOutput, error) {
	day, err := parseDay(input.Date)
	if err != nil {
		return nil, weekBoundsOutput{}, err
	}
	monday, sunday := models.WeekBounds(day)
	return nil, weekBoundsOutput{
		Date:   day.String(),
		Monday: monday.String(),
		Sunday: sunday.String(),
	}, nil
}

func (s *Server) handleCompareWeeks(ctx context.Context, req *mcp.CallToolRequest, input compareWeeksInput) (*mcp.CallToolResult, any, error) {
	weeks := input.Weeks
	if weeks <= 0 {
		weeks = trend.DefaultWindow
	}

	reports, err := s.repo.ListRecentReports(weeks)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list reports: %w", err)
	}
	if len(reports) == 0 {
		return nil, map[string]interface{}{"message": "No reports found."}, nil
	}

	rows := make([]map[string]interface{}, 0, len(reports))
	for _, row := range trend.Recent(reports, weeks) {
		changes := make(map[string]interface{}, len(row.Changes))
		for _, c := range row.Changes {
			changes[string(c.Metric)] = map[string]interface{}{
				"value":  c.Value,
				"change": c.Display(),
			}
		}
		rows = append(rows, map[string]interface{}{
			"id":      row.Report.ID,
			"week":    row.Report.Period(),
			"metrics": changes,
		})
	}

	return nil, map[string]interface{}{"weeks": weeks, "rows": rows}, nil
}

// parseDay parses a YYYY-MM-DD date, defaulting to today when empty.
func parseDay(s string) (models.Date, error) {
	if s == "" {
		return models.Today(), nil
	}
	return models.ParseDate(s)
}
