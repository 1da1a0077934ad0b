package domain

import "time"

// PauseInterval suspends a habit for a date range. A nil EndDate means the
// interval is open: the habit is archived.
type PauseInterval struct {
	ID        string
	HabitID   string
	StartDate time.Time
	EndDate   *time.Time
}

// Covers reports whether date falls inside the interval. Open intervals
// cover every date on or after their start.
func (p PauseInterval) Covers(date time.Time) bool {
	d := DateOf(date)
	if d.Before(DateOf(p.StartDate)) {
		return false
	}
	return p.EndDate == nil || !DateOf(*p.EndDate).Before(d)
}

// Open reports whether the interval has no end date.
func (p PauseInterval) Open() bool {
	return p.EndDate == nil
}
