// ABOUTME: Weekly report CRUD operations for SQLite storage.
// ABOUTME: Implements Repository methods; the unique index enforces one report per week.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/weekly/internal/models"
)

const reportColumns = `
	id, monday_date, sunday_date, online_requirements, online_req_count,
	fixed_bugs, bug_fix_rate, release_orders, release_failures,
	new_reuse_units, new_reuse_events, created_at, updated_at`

// CreateReport inserts a new report. The duplicate check and the write are
// a single statement guarded by idx_weekly_reports_week.
func (d *DB) CreateReport(in models.ReportInput) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	now := d.timestamp()
	query := `
		INSERT INTO weekly_reports (
			monday_date, sunday_date, online_requirements, online_req_count,
			fixed_bugs, bug_fix_rate, release_orders, release_failures,
			new_reuse_units, new_reuse_events, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := d.db.Exec(query,
		in.MondayDate.String(),
		in.SundayDate.String(),
		in.OnlineRequirements,
		in.OnlineReqCount,
		in.FixedBugs,
		in.BugFixRate,
		in.ReleaseOrders,
		in.ReleaseFailures,
		in.NewReuseUnits,
		in.NewReuseEvents,
		now,
		now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, d.duplicateWeek(in)
		}
		return 0, fmt.Errorf("create report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create report: %w", err)
	}
	return id, nil
}

// GetReport retrieves a report by ID.
func (d *DB) GetReport(id int64) (*models.WeeklyReport, error) {
	query := `SELECT` + reportColumns + ` FROM weekly_reports WHERE id = ?`
	r, err := scanReport(d.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("report %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return r, nil
}

// GetReportByWeek retrieves the report whose week starts on monday.
func (d *DB) GetReportByWeek(monday models.Date) (*models.WeeklyReport, error) {
	query := `SELECT` + reportColumns + ` FROM weekly_reports WHERE monday_date = ?`
	r, err := scanReport(d.db.QueryRow(query, monday.String()))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("week of %s: %w", monday, ErrNotFound)
		}
		return nil, err
	}
	return r, nil
}

// ListReports retrieves all reports sorted by monday_date descending.
func (d *DB) ListReports() ([]*models.WeeklyReport, error) {
	return d.ListRecentReports(0)
}

// ListRecentReports retrieves at most limit reports, most recent week first.
// A limit of zero or less returns every report.
func (d *DB) ListRecentReports(limit int) ([]*models.WeeklyReport, error) {
	query := `SELECT` + reportColumns + ` FROM weekly_reports ORDER BY monday_date DESC, id DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	return scanReports(rows)
}

// UpdateReport overwrites every editable field of an existing report and
// refreshes updated_at. created_at is left untouched. An unknown id is
// reported as ErrNotFound even when the input is also invalid.
func (d *DB) UpdateReport(id int64, in models.ReportInput) error {
	if err := in.Validate(); err != nil {
		ok, xerr := d.exists(id)
		if xerr != nil {
			return xerr
		}
		if !ok {
			return fmt.Errorf("report %d: %w", id, ErrNotFound)
		}
		return err
	}

	query := `
		UPDATE weekly_reports SET
			monday_date = ?, sunday_date = ?, online_requirements = ?,
			online_req_count = ?, fixed_bugs = ?, bug_fix_rate = ?,
			release_orders = ?, release_failures = ?, new_reuse_units = ?,
			new_reuse_events = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := d.db.Exec(query,
		in.MondayDate.String(),
		in.SundayDate.String(),
		in.OnlineRequirements,
		in.OnlineReqCount,
		in.FixedBugs,
		in.BugFixRate,
		in.ReleaseOrders,
		in.ReleaseFailures,
		in.NewReuseUnits,
		in.NewReuseEvents,
		d.timestamp(),
		id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return d.duplicateWeek(in)
		}
		return fmt.Errorf("update report: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update report: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("report %d: %w", id, ErrNotFound)
	}
	return nil
}

func (d *DB) exists(id int64) (bool, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM weekly_reports WHERE id = ?", id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check report %d: %w", id, err)
	}
	return n > 0, nil
}

// DeleteReport permanently removes a report.
func (d *DB) DeleteReport(id int64) (bool, error) {
	result, err := d.db.Exec("DELETE FROM weekly_reports WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete report: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete report: %w", err)
	}
	return affected > 0, nil
}

// duplicateWeek builds the error for a rejected write, looking up the row
// that already owns the range so callers can point at it.
func (d *DB) duplicateWeek(in models.ReportInput) error {
	dup := &DuplicateWeekError{Monday: in.MondayDate, Sunday: in.SundayDate}
	var id int64
	err := d.db.QueryRow(
		`SELECT id FROM weekly_reports WHERE monday_date = ? AND sunday_date = ?`,
		in.MondayDate.String(), in.SundayDate.String(),
	).Scan(&id)
	if err == nil {
		dup.ExistingID = id
	}
	return dup
}

func (d *DB) timestamp() string {
	return d.now().UTC().Format(time.RFC3339Nano)
}

// sqliteTimestamp is the CURRENT_TIMESTAMP layout, always UTC.
const sqliteTimestamp = "2006-01-02 15:04:05"

// parseTimestamp reads timestamps written by this package or by SQLite's
// CURRENT_TIMESTAMP default.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(sqliteTimestamp, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return t, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReport scans a single row into a WeeklyReport.
func scanReport(row rowScanner) (*models.WeeklyReport, error) {
	var r models.WeeklyReport
	var monday, sunday, createdAt, updatedAt string

	err := row.Scan(
		&r.ID, &monday, &sunday,
		&r.OnlineRequirements, &r.OnlineReqCount,
		&r.FixedBugs, &r.BugFixRate,
		&r.ReleaseOrders, &r.ReleaseFailures,
		&r.NewReuseUnits, &r.NewReuseEvents,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan report: %w", err)
	}

	if r.MondayDate, err = models.ParseDate(monday); err != nil {
		return nil, fmt.Errorf("scan report %d: %w", r.ID, err)
	}
	if r.SundayDate, err = models.ParseDate(sunday); err != nil {
		return nil, fmt.Errorf("scan report %d: %w", r.ID, err)
	}
	if r.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("scan report %d: created_at: %w", r.ID, err)
	}
	if r.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, fmt.Errorf("scan report %d: updated_at: %w", r.ID, err)
	}

	return &r, nil
}

// scanReports scans multiple rows into a slice of reports.
func scanReports(rows *sql.Rows) ([]*models.WeeklyReport, error) {
	reports := make([]*models.WeeklyReport, 0)

	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}

	return reports, rows.Err()
}
