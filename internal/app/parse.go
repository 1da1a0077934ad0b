package app

import (
	"time"

	"github.com/arothstein/ritual/internal/domain"
)

const monthLayout = "2006-01"

// ParseDate validates and parses a YYYY-MM-DD request parameter.
// Rejection happens before any entity lookup.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, &domain.ValidationError{Field: "date", Message: "invalid date, expected YYYY-MM-DD"}
	}
	return domain.DateOf(t), nil
}

// ParseMonth validates and parses a YYYY-MM request parameter.
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return 0, 0, &domain.ValidationError{Field: "month", Message: "invalid month, expected YYYY-MM"}
	}
	return t.Year(), t.Month(), nil
}

// FormatMonth renders a year+month pair back to the YYYY-MM wire form.
func FormatMonth(year int, month time.Month) string {
	return domain.NewDate(year, month, 1).Format(monthLayout)
}
