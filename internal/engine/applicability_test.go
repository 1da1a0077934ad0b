package engine

import (
	"testing"
	"time"

	"github.com/arothstein/ritual/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dailyHabit(start time.Time) *domain.Habit {
	return &domain.Habit{ID: "h1", Name: "Daily", StartDate: start, Schedule: domain.DailySchedule()}
}

func TestIsDue_BeforeStartDate(t *testing.T) {
	h := dailyHabit(domain.NewDate(2024, time.January, 5))
	assert.False(t, IsDue(h, domain.NewDate(2024, time.January, 4)))
	assert.True(t, IsDue(h, domain.NewDate(2024, time.January, 5)))
}

func TestIsDue_WeeklyOnlyOnListedDays(t *testing.T) {
	sched, err := domain.WeeklySchedule([]domain.Weekday{domain.Tuesday, domain.Thursday})
	require.NoError(t, err)
	h := &domain.Habit{ID: "h1", StartDate: domain.NewDate(2024, time.January, 1), Schedule: sched}

	// 2024-01-01 is a Monday.
	assert.False(t, IsDue(h, domain.NewDate(2024, time.January, 1)), "Mon")
	assert.True(t, IsDue(h, domain.NewDate(2024, time.January, 2)), "Tue")
	assert.False(t, IsDue(h, domain.NewDate(2024, time.January, 3)), "Wed")
	assert.True(t, IsDue(h, domain.NewDate(2024, time.January, 4)), "Thu")
	assert.False(t, IsDue(h, domain.NewDate(2024, time.January, 6)), "Sat")

	// Before the start date even a matching weekday is not due.
	assert.False(t, IsDue(h, domain.NewDate(2023, time.December, 26)), "Tue before start")
}

func TestIsDue_PauseMasksRecurrence(t *testing.T) {
	end := domain.NewDate(2024, time.January, 10)
	h := dailyHabit(domain.NewDate(2024, time.January, 1))
	h.Pauses = []domain.PauseInterval{{HabitID: h.ID, StartDate: domain.NewDate(2024, time.January, 5), EndDate: &end}}

	assert.True(t, IsDue(h, domain.NewDate(2024, time.January, 4)))
	assert.False(t, IsDue(h, domain.NewDate(2024, time.January, 5)))
	assert.False(t, IsDue(h, domain.NewDate(2024, time.January, 10)))
	assert.True(t, IsDue(h, domain.NewDate(2024, time.January, 11)))
}

func TestIsDue_OpenPauseMasksForever(t *testing.T) {
	h := dailyHabit(domain.NewDate(2024, time.January, 1))
	h.Pauses = []domain.PauseInterval{{HabitID: h.ID, StartDate: domain.NewDate(2024, time.January, 5)}}

	assert.True(t, IsDue(h, domain.NewDate(2024, time.January, 4)))
	assert.False(t, IsDue(h, domain.NewDate(2024, time.January, 10)))
	assert.False(t, IsDue(h, domain.NewDate(2030, time.June, 1)))
}

func TestIsDue_DuplicateOpenPausesBehaveAsOne(t *testing.T) {
	h := dailyHabit(domain.NewDate(2024, time.January, 1))
	h.Pauses = []domain.PauseInterval{
		{HabitID: h.ID, StartDate: domain.NewDate(2024, time.January, 5)},
		{HabitID: h.ID, StartDate: domain.NewDate(2024, time.January, 6)},
	}
	assert.False(t, IsDue(h, domain.NewDate(2024, time.February, 1)))
	assert.True(t, IsDue(h, domain.NewDate(2024, time.January, 4)))
}

func TestIsDue_ArchiveThenUnarchiveWindow(t *testing.T) {
	// Archived 2024-01-05, unarchived on 2024-01-15: the pause closes at
	// 2024-01-14, so the 15th is due again.
	end := domain.NewDate(2024, time.January, 14)
	h := dailyHabit(domain.NewDate(2024, time.January, 1))
	h.Pauses = []domain.PauseInterval{{HabitID: h.ID, StartDate: domain.NewDate(2024, time.January, 5), EndDate: &end}}

	assert.False(t, IsDue(h, domain.NewDate(2024, time.January, 10)))
	assert.False(t, IsDue(h, domain.NewDate(2024, time.January, 14)))
	assert.True(t, IsDue(h, domain.NewDate(2024, time.January, 15)))
}
