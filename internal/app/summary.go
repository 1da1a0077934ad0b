package app

import (
	"time"

	"github.com/arothstein/ritual/internal/domain"
)

// DayRequest asks for the single-day classification of a user's habits.
// Now is injectable for tests; nil means the wall clock.
type DayRequest struct {
	UserID string
	Date   string // YYYY-MM-DD
	Now    *time.Time
}

// MonthRequest asks for the whole-month rollup.
type MonthRequest struct {
	UserID string
	Month  string // YYYY-MM
	Now    *time.Time
}

// HabitDayView is one due habit's status on the requested date.
type HabitDayView struct {
	HabitID   string
	Name      string
	Completed bool
	Status    domain.HabitDayStatus
}

type DaySummaryResponse struct {
	Date    string
	Entries []HabitDayView
}

// DayCellView is one calendar day in the month rollup. Completed and Total
// are zero when the status carries no counts (future, inactive).
type DayCellView struct {
	Status    domain.DayStatus
	Completed int
	Total     int
}

type MonthSummaryResponse struct {
	Month string
	Days  map[string]DayCellView // keyed by YYYY-MM-DD
}
