// ABOUTME: MCP resource implementations for weekly reports.
// ABOUTME: Provides weekly://recent and weekly://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/weekly/internal/trend"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	recentURI  = "weekly://recent"
	summaryURI = "weekly://summary"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         recentURI,
		Name:        "Recent Weekly Reports",
		Description: "The last four weekly reports, newest first",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         summaryURI,
		Name:        "Weekly Report Summary",
		Description: "Totals and averages over all reports plus the latest week-over-week headline",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	reports, err := s.repo.ListRecentReports(trend.DefaultWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	return jsonResource(recentURI, map[string]interface{}{
		"reports": reports,
		"count":   len(reports),
	})
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	reports, err := s.repo.ListReports()
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	headline := make(map[string]interface{})
	for _, c := range trend.Headline(reports) {
		headline[string(c.Metric)] = map[string]interface{}{
			"label":  c.Metric.Label(),
			"value":  c.Value,
			"change": c.Display(),
		}
	}

	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"summary":      trend.Summarize(reports),
		"headline":     headline,
	}
	if len(reports) > 0 {
		result["latest_week"] = reports[0].Period()
	}

	return jsonResource(summaryURI, result)
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
