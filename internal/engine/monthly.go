package engine

import (
	"time"

	"github.com/arothstein/ritual/internal/domain"
)

// DayTotals is one calendar day's rollup across a habit set.
// Completed and Total are zero for future and inactive days.
type DayTotals struct {
	Status    domain.DayStatus
	Completed int
	Total     int
}

// MonthSummary classifies every day of the month, day 1 through the last day
// inclusive. Each day's counts are derived from the same DaySummary the
// single-day query uses, so the two can never disagree.
func MonthSummary(habits []*domain.Habit, logs *LogIndex, year int, month time.Month, today time.Time) map[time.Time]DayTotals {
	first := domain.NewDate(year, month, 1)
	last := first.AddDate(0, 1, -1)
	t := domain.DateOf(today)

	out := make(map[time.Time]DayTotals, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if d.After(t) {
			out[d] = DayTotals{Status: domain.DayFuture}
			continue
		}
		entries := DaySummary(habits, logs, d, t)
		if len(entries) == 0 {
			out[d] = DayTotals{Status: domain.DayInactive}
			continue
		}
		done := 0
		for _, e := range entries {
			if e.Completed {
				done++
			}
		}
		totals := DayTotals{Completed: done, Total: len(entries)}
		switch {
		case done == 0:
			totals.Status = domain.DayIncomplete
		case done < len(entries):
			totals.Status = domain.DayPartial
		default:
			totals.Status = domain.DayComplete
		}
		out[d] = totals
	}
	return out
}
