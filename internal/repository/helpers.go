package repository

import (
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/arothstein/ritual/internal/domain"
)

const dateLayout = domain.DateLayout

// parseNullableTime parses a sql.NullString into a *time.Time using the given layout.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise returns the formatted string.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// weekdaysToString encodes a weekday set as a comma-separated column value.
// Returns nil (SQL NULL) for an empty set.
func weekdaysToString(days []domain.Weekday) interface{} {
	if len(days) == 0 {
		return nil
	}
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}

// parseWeekdays decodes a days_of_week column value. Unparseable fragments
// are dropped rather than failing the row.
func parseWeekdays(s sql.NullString) []domain.Weekday {
	if !s.Valid || s.String == "" {
		return nil
	}
	var days []domain.Weekday
	for _, part := range strings.Split(s.String, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		days = append(days, domain.Weekday(n))
	}
	return days
}

// isUniqueViolation reports whether err is a SQLite unique-constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
