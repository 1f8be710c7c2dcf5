// ABOUTME: Tests for storage error kinds.
// ABOUTME: Checks errors.Is matching and unique-violation detection.
package storage

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/harperreed/weekly/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDuplicateWeekErrorIs(t *testing.T) {
	dup := &DuplicateWeekError{
		Monday:     models.MustParseDate("2024-01-01"),
		Sunday:     models.MustParseDate("2024-01-07"),
		ExistingID: 4,
	}
	wrapped := fmt.Errorf("save: %w", dup)

	assert.ErrorIs(t, wrapped, ErrDuplicateWeek)
	assert.NotErrorIs(t, wrapped, ErrNotFound)
	assert.Contains(t, dup.Error(), "2024-01-01 ~ 2024-01-07")
	assert.Contains(t, dup.Error(), "ID: 4")

	noID := &DuplicateWeekError{Monday: dup.Monday, Sunday: dup.Sunday}
	assert.False(t, strings.Contains(noID.Error(), "ID:"))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(errors.New("disk I/O error")))
	assert.True(t, isUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: weekly_reports.monday_date, weekly_reports.sunday_date (2067)")))
}
