package engine

import (
	"time"

	"github.com/arothstein/ritual/internal/domain"
)

// HabitStatus is one due habit's classification for a single date.
type HabitStatus struct {
	HabitID   string
	Name      string
	Completed bool
	Status    domain.HabitDayStatus
}

// DaySummary classifies every habit due on date. Habits not due are omitted.
// Output order follows the input habit order. A due, unlogged habit counts
// as missed once the date is in the past relative to today, and unlogged
// otherwise.
func DaySummary(habits []*domain.Habit, logs *LogIndex, date, today time.Time) []HabitStatus {
	d := domain.DateOf(date)
	t := domain.DateOf(today)

	var out []HabitStatus
	for _, h := range habits {
		if !IsDue(h, d) {
			continue
		}
		st := HabitStatus{HabitID: h.ID, Name: h.Name}
		switch {
		case logs.IsLogged(h.ID, d):
			st.Completed = true
			st.Status = domain.HabitComplete
		case d.Before(t):
			st.Status = domain.HabitMissed
		default:
			st.Status = domain.HabitUnlogged
		}
		out = append(out, st)
	}
	return out
}
