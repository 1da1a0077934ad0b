package domain

import (
	"sort"
	"strings"
	"time"
)

// Schedule is a habit's recurrence rule: either every day, or a fixed set of
// weekdays. The zero value behaves as a daily schedule. Weekly schedules are
// only constructible with a non-empty day set; defective stored data (weekly
// with no days) can still be restored and simply never matches.
type Schedule struct {
	frequency Frequency
	days      []Weekday
}

// DailySchedule returns the every-day schedule.
func DailySchedule() Schedule {
	return Schedule{frequency: FrequencyDaily}
}

// WeeklySchedule returns a schedule matching the given weekdays.
// Days are deduplicated and kept sorted. Fails on an empty or out-of-range set.
func WeeklySchedule(days []Weekday) (Schedule, error) {
	if len(days) == 0 {
		return Schedule{}, &ValidationError{Field: "days_of_week", Message: "weekly schedule requires at least one weekday"}
	}
	seen := make(map[Weekday]bool, len(days))
	var uniq []Weekday
	for _, d := range days {
		if !d.Valid() {
			return Schedule{}, &ValidationError{Field: "days_of_week", Message: "weekday index out of range 0-6"}
		}
		if !seen[d] {
			seen[d] = true
			uniq = append(uniq, d)
		}
	}
	sort.Slice(uniq, func(i, j int) bool { return uniq[i] < uniq[j] })
	return Schedule{frequency: FrequencyWeekly, days: uniq}, nil
}

// RestoreSchedule rebuilds a schedule from stored values without validation.
// Used by repositories; the write path must never produce a weekly schedule
// with an empty day set, but the read path tolerates one.
func RestoreSchedule(frequency Frequency, days []Weekday) Schedule {
	return Schedule{frequency: frequency, days: days}
}

func (s Schedule) Frequency() Frequency {
	if s.frequency == "" {
		return FrequencyDaily
	}
	return s.frequency
}

// Days returns the weekday set for weekly schedules, nil for daily ones.
func (s Schedule) Days() []Weekday {
	if len(s.days) == 0 {
		return nil
	}
	out := make([]Weekday, len(s.days))
	copy(out, s.days)
	return out
}

// Matches reports whether the schedule applies on the given date, ignoring
// start date and pauses. A weekly schedule with no days never matches.
func (s Schedule) Matches(date time.Time) bool {
	if s.Frequency() == FrequencyDaily {
		return true
	}
	wd := WeekdayOf(date)
	for _, d := range s.days {
		if d == wd {
			return true
		}
	}
	return false
}

func (s Schedule) String() string {
	if s.Frequency() == FrequencyDaily {
		return "daily"
	}
	if len(s.days) == 0 {
		return "weekly (no days)"
	}
	names := make([]string, len(s.days))
	for i, d := range s.days {
		names[i] = d.String()
	}
	return "weekly on " + strings.Join(names, ",")
}
