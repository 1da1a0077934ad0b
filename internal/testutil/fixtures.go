package testutil

import (
	"time"

	"github.com/arothstein/ritual/internal/domain"
	"github.com/google/uuid"
)

// User fixtures

func NewTestUser(name string) *domain.User {
	return &domain.User{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// Habit options
type HabitOption func(*domain.Habit)

func WithStartDate(d time.Time) HabitOption {
	return func(h *domain.Habit) {
		h.StartDate = d
	}
}

func WithWeekdays(days ...domain.Weekday) HabitOption {
	return func(h *domain.Habit) {
		sched, err := domain.WeeklySchedule(days)
		if err != nil {
			panic(err)
		}
		h.Schedule = sched
	}
}

func WithCreatedAt(t time.Time) HabitOption {
	return func(h *domain.Habit) {
		h.CreatedAt = t
		h.UpdatedAt = t
	}
}

// NewTestHabit builds a daily habit starting a month ago.
func NewTestHabit(userID, name string, opts ...HabitOption) *domain.Habit {
	now := time.Now().UTC()
	h := &domain.Habit{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		StartDate: domain.DateOf(now.AddDate(0, -1, 0)),
		Schedule:  domain.DailySchedule(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewTestLog builds a completion log for the habit on the given date.
func NewTestLog(habitID string, date time.Time) *domain.HabitLog {
	return &domain.HabitLog{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		Date:      domain.DateOf(date),
		CreatedAt: time.Now().UTC(),
	}
}

// NewTestPause builds a closed pause interval.
func NewTestPause(habitID string, start, end time.Time) *domain.PauseInterval {
	e := domain.DateOf(end)
	return &domain.PauseInterval{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		StartDate: domain.DateOf(start),
		EndDate:   &e,
	}
}

// NewTestOpenPause builds an open-ended pause interval (archived state).
func NewTestOpenPause(habitID string, start time.Time) *domain.PauseInterval {
	return &domain.PauseInterval{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		StartDate: domain.DateOf(start),
	}
}
