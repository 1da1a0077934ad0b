package engine

import (
	"testing"
	"time"

	"github.com/arothstein/ritual/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaySummary_ClassifiesCompleteMissedUnlogged(t *testing.T) {
	start := domain.NewDate(2024, time.January, 1)
	habits := []*domain.Habit{
		{ID: "done", Name: "Done", StartDate: start, Schedule: domain.DailySchedule()},
		{ID: "missed", Name: "Missed", StartDate: start, Schedule: domain.DailySchedule()},
	}
	logs := NewLogIndex([]domain.HabitLog{
		{HabitID: "done", Date: domain.NewDate(2024, time.January, 2)},
	})

	today := domain.NewDate(2024, time.January, 3)

	// Past date: unlogged habits are missed.
	past := DaySummary(habits, logs, domain.NewDate(2024, time.January, 2), today)
	require.Len(t, past, 2)
	assert.Equal(t, "done", past[0].HabitID)
	assert.True(t, past[0].Completed)
	assert.Equal(t, domain.HabitComplete, past[0].Status)
	assert.False(t, past[1].Completed)
	assert.Equal(t, domain.HabitMissed, past[1].Status)

	// Today: unlogged habits are still open.
	cur := DaySummary(habits, logs, today, today)
	require.Len(t, cur, 2)
	assert.Equal(t, domain.HabitUnlogged, cur[0].Status)
	assert.Equal(t, domain.HabitUnlogged, cur[1].Status)
}

func TestDaySummary_OmitsNotDueHabits(t *testing.T) {
	sched, err := domain.WeeklySchedule([]domain.Weekday{domain.Monday})
	require.NoError(t, err)
	habits := []*domain.Habit{
		{ID: "weekly", Name: "Weekly", StartDate: domain.NewDate(2024, time.January, 1), Schedule: sched},
	}
	logs := NewLogIndex(nil)

	// 2024-01-02 is a Tuesday: nothing due, nothing listed.
	out := DaySummary(habits, logs, domain.NewDate(2024, time.January, 2), domain.NewDate(2024, time.January, 2))
	assert.Empty(t, out)
}

func TestDaySummary_PreservesInputOrder(t *testing.T) {
	start := domain.NewDate(2024, time.January, 1)
	habits := []*domain.Habit{
		{ID: "c", Name: "C", StartDate: start, Schedule: domain.DailySchedule()},
		{ID: "a", Name: "A", StartDate: start, Schedule: domain.DailySchedule()},
		{ID: "b", Name: "B", StartDate: start, Schedule: domain.DailySchedule()},
	}
	out := DaySummary(habits, NewLogIndex(nil), start, start)
	require.Len(t, out, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{out[0].HabitID, out[1].HabitID, out[2].HabitID})
}

func TestLogIndex_Membership(t *testing.T) {
	ix := NewLogIndex([]domain.HabitLog{
		{HabitID: "h1", Date: domain.NewDate(2024, time.May, 1)},
		{HabitID: "h1", Date: domain.NewDate(2024, time.May, 1)}, // duplicate collapses
		{HabitID: "h2", Date: domain.NewDate(2024, time.May, 2)},
	})

	assert.True(t, ix.IsLogged("h1", domain.NewDate(2024, time.May, 1)))
	assert.False(t, ix.IsLogged("h1", domain.NewDate(2024, time.May, 2)))
	assert.False(t, ix.IsLogged("h3", domain.NewDate(2024, time.May, 1)))

	on := ix.LogsOn([]string{"h1", "h2", "h3"}, domain.NewDate(2024, time.May, 1))
	assert.Equal(t, map[string]bool{"h1": true}, on)
}
