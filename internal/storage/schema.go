// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines the weekly_reports table and its unique week-range index.
package storage

// initSchema creates the database schema if it does not exist.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS weekly_reports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		monday_date TEXT NOT NULL,
		sunday_date TEXT NOT NULL,
		online_requirements INTEGER NOT NULL DEFAULT 0,
		online_req_count INTEGER NOT NULL DEFAULT 0,
		fixed_bugs INTEGER NOT NULL DEFAULT 0,
		bug_fix_rate REAL NOT NULL DEFAULT 0.0,
		release_orders INTEGER NOT NULL DEFAULT 0,
		release_failures INTEGER NOT NULL DEFAULT 0,
		new_reuse_units INTEGER NOT NULL DEFAULT 0,
		new_reuse_events INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_weekly_reports_week
		ON weekly_reports(monday_date, sunday_date);
	CREATE INDEX IF NOT EXISTS idx_weekly_reports_monday
		ON weekly_reports(monday_date DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
