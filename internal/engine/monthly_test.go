package engine

import (
	"testing"
	"time"

	"github.com/arothstein/ritual/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthSummary_CoversEveryDayOfMonth(t *testing.T) {
	out := MonthSummary(nil, NewLogIndex(nil), 2024, time.February, domain.NewDate(2024, time.February, 15))
	assert.Len(t, out, 29, "2024 is a leap year")
	for d := 1; d <= 29; d++ {
		_, ok := out[domain.NewDate(2024, time.February, d)]
		assert.True(t, ok, "day %d missing", d)
	}
}

func TestMonthSummary_Statuses(t *testing.T) {
	start := domain.NewDate(2024, time.January, 3)
	habits := []*domain.Habit{
		{ID: "h1", Name: "One", StartDate: start, Schedule: domain.DailySchedule()},
		{ID: "h2", Name: "Two", StartDate: start, Schedule: domain.DailySchedule()},
	}
	logs := NewLogIndex([]domain.HabitLog{
		{HabitID: "h1", Date: domain.NewDate(2024, time.January, 3)},
		{HabitID: "h2", Date: domain.NewDate(2024, time.January, 3)},
		{HabitID: "h1", Date: domain.NewDate(2024, time.January, 4)},
	})
	today := domain.NewDate(2024, time.January, 6)

	out := MonthSummary(habits, logs, 2024, time.January, today)

	// Before every start date: no habit due.
	assert.Equal(t, DayTotals{Status: domain.DayInactive}, out[domain.NewDate(2024, time.January, 1)])
	// Both logged.
	assert.Equal(t, DayTotals{Status: domain.DayComplete, Completed: 2, Total: 2}, out[domain.NewDate(2024, time.January, 3)])
	// One of two logged.
	assert.Equal(t, DayTotals{Status: domain.DayPartial, Completed: 1, Total: 2}, out[domain.NewDate(2024, time.January, 4)])
	// Due but nothing logged.
	assert.Equal(t, DayTotals{Status: domain.DayIncomplete, Completed: 0, Total: 2}, out[domain.NewDate(2024, time.January, 5)])
	// After today.
	assert.Equal(t, DayTotals{Status: domain.DayFuture}, out[domain.NewDate(2024, time.January, 7)])
	assert.Equal(t, DayTotals{Status: domain.DayFuture}, out[domain.NewDate(2024, time.January, 31)])
}

func TestMonthSummary_TodayCountsAsOpenNotFuture(t *testing.T) {
	habits := []*domain.Habit{
		{ID: "h1", Name: "One", StartDate: domain.NewDate(2024, time.January, 1), Schedule: domain.DailySchedule()},
	}
	today := domain.NewDate(2024, time.January, 10)
	out := MonthSummary(habits, NewLogIndex(nil), 2024, time.January, today)
	require.Equal(t, domain.DayIncomplete, out[today].Status)
}
