// Package engine holds the pure habit applicability and aggregation core.
// Nothing in this package touches storage; callers load habits (with pauses
// attached) and logs, and every function here is a total, deterministic
// computation over those values.
package engine

import (
	"time"

	"github.com/arothstein/ritual/internal/domain"
)

// IsDue reports whether a habit is expected to be acted on at the given date.
// It is the single applicability predicate: the daily and monthly aggregators
// and the log write policy all route through it, so they cannot drift apart.
func IsDue(h *domain.Habit, date time.Time) bool {
	d := domain.DateOf(date)
	if d.Before(domain.DateOf(h.StartDate)) {
		return false
	}
	for i := range h.Pauses {
		if h.Pauses[i].Covers(d) {
			return false
		}
	}
	return h.Schedule.Matches(d)
}
