package domain

import (
	"time"
)

// MaxNameLen caps habit names at the write boundary.
const MaxNameLen = 64

type Habit struct {
	ID        string
	UserID    string
	Name      string
	StartDate time.Time
	Schedule  Schedule

	// Pauses are eagerly attached by the repository; the engine never loads
	// them lazily.
	Pauses []PauseInterval

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateName checks the name constraints shared by create and rename.
func (h *Habit) ValidateName() error {
	if h.Name == "" {
		return &ValidationError{Field: "name", Message: "habit name is required"}
	}
	if len(h.Name) > MaxNameLen {
		return &ValidationError{Field: "name", Message: "habit name exceeds 64 characters"}
	}
	return nil
}

// OpenPause returns the habit's open-ended pause interval, or nil.
func (h *Habit) OpenPause() *PauseInterval {
	for i := range h.Pauses {
		if h.Pauses[i].EndDate == nil {
			return &h.Pauses[i]
		}
	}
	return nil
}

// Archived reports whether the habit currently has an open pause interval.
func (h *Habit) Archived() bool {
	return h.OpenPause() != nil
}

type User struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

type HabitLog struct {
	ID        string
	HabitID   string
	Date      time.Time
	CreatedAt time.Time
}
