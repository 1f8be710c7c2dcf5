// ABOUTME: Storage error kinds for weekly reports.
// ABOUTME: Sentinel errors plus a typed duplicate-week error carrying the conflict.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harperreed/weekly/internal/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound is returned when no report matches the requested ID or week.
	ErrNotFound = errors.New("report not found")
	// ErrDuplicateWeek is returned when a week range already has a report.
	ErrDuplicateWeek = errors.New("week already has a report")
)

// DuplicateWeekError describes a rejected write whose week range is taken.
type DuplicateWeekError struct {
	Monday     models.Date
	Sunday     models.Date
	ExistingID int64
}

func (e *DuplicateWeekError) Error() string {
	if e.ExistingID > 0 {
		return fmt.Sprintf("week %s ~ %s already has a report (ID: %d)", e.Monday, e.Sunday, e.ExistingID)
	}
	return fmt.Sprintf("week %s ~ %s already has a report", e.Monday, e.Sunday)
}

// Is lets errors.Is(err, ErrDuplicateWeek) match.
func (e *DuplicateWeekError) Is(target error) bool {
	return target == ErrDuplicateWeek
}

// isUniqueViolation reports whether err came from a UNIQUE constraint.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return true
		}
		if code&0xff == sqlite3.SQLITE_CONSTRAINT {
			return strings.Contains(se.Error(), "UNIQUE")
		}
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
