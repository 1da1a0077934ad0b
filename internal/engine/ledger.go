package engine

import (
	"time"

	"github.com/arothstein/ritual/internal/domain"
)

// LogIndex is an in-memory membership index over completion logs.
// Duplicate (habit, date) pairs collapse to one entry, so a benign storage
// anomaly cannot change any answer computed from the index.
type LogIndex struct {
	byHabit map[string]map[time.Time]bool
}

// NewLogIndex builds an index from a slice of logs.
func NewLogIndex(logs []domain.HabitLog) *LogIndex {
	ix := &LogIndex{byHabit: make(map[string]map[time.Time]bool, len(logs))}
	for _, l := range logs {
		days := ix.byHabit[l.HabitID]
		if days == nil {
			days = make(map[time.Time]bool)
			ix.byHabit[l.HabitID] = days
		}
		days[domain.DateOf(l.Date)] = true
	}
	return ix
}

// IsLogged reports whether the habit has a completion log on the date.
func (ix *LogIndex) IsLogged(habitID string, date time.Time) bool {
	return ix.byHabit[habitID][domain.DateOf(date)]
}

// LogsOn returns the subset of habitIDs that have a log on the date.
func (ix *LogIndex) LogsOn(habitIDs []string, date time.Time) map[string]bool {
	d := domain.DateOf(date)
	out := make(map[string]bool)
	for _, id := range habitIDs {
		if ix.byHabit[id][d] {
			out[id] = true
		}
	}
	return out
}
