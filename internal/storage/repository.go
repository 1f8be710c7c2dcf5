// ABOUTME: Repository interface for weekly report storage.
// ABOUTME: Defines the contract for report CRUD and week lookups.
package storage

import (
	"github.com/harperreed/weekly/internal/models"
)

// Repository defines the storage interface for weekly reports.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// CreateReport stores a new report and returns its assigned ID.
	// Returns a *DuplicateWeekError if the week range already has a report.
	CreateReport(in models.ReportInput) (int64, error)
	GetReport(id int64) (*models.WeeklyReport, error)
	GetReportByWeek(monday models.Date) (*models.WeeklyReport, error)
	// ListReports returns every report, most recent week first.
	ListReports() ([]*models.WeeklyReport, error)
	ListRecentReports(limit int) ([]*models.WeeklyReport, error)
	UpdateReport(id int64, in models.ReportInput) error
	// DeleteReport reports whether a row was removed.
	DeleteReport(id int64) (bool, error)

	// Lifecycle
	Close() error
}
