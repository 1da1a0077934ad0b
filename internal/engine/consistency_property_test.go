package engine

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/arothstein/ritual/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMonthSummary_AgreesWithDaySummary property-tests the consistency law:
// for every past-or-present day of the month, the monthly rollup's done/total
// must equal what the single-day summary reports for that day.
func TestMonthSummary_AgreesWithDaySummary(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 100; trial++ {
		habits := randomHabits(rng, rng.Intn(10)+1)
		logs := NewLogIndex(randomLogs(rng, habits))
		today := domain.NewDate(2024, time.March, rng.Intn(31)+1)

		month := MonthSummary(habits, logs, 2024, time.March, today)

		for d := domain.NewDate(2024, time.March, 1); d.Month() == time.March; d = d.AddDate(0, 0, 1) {
			totals := month[d]
			if d.After(today) {
				assert.Equal(t, domain.DayFuture, totals.Status, "trial %d day %s", trial, d.Format(domain.DateLayout))
				continue
			}

			entries := DaySummary(habits, logs, d, today)
			done := 0
			for _, e := range entries {
				if e.Completed {
					done++
				}
			}
			require.Equal(t, len(entries), totals.Total,
				"trial %d day %s: monthly total must match daily entry count", trial, d.Format(domain.DateLayout))
			require.Equal(t, done, totals.Completed,
				"trial %d day %s: monthly done must match daily completed count", trial, d.Format(domain.DateLayout))
		}
	}
}

func randomHabits(rng *rand.Rand, n int) []*domain.Habit {
	habits := make([]*domain.Habit, n)
	for i := range habits {
		h := &domain.Habit{
			ID:        fmt.Sprintf("h-%d", i),
			Name:      fmt.Sprintf("Habit %d", i),
			StartDate: domain.NewDate(2024, time.February, rng.Intn(45)+1), // Feb 1 .. mid-March
			Schedule:  domain.DailySchedule(),
		}
		if rng.Intn(2) == 1 {
			var days []domain.Weekday
			for d := domain.Monday; d <= domain.Sunday; d++ {
				if rng.Intn(3) == 0 {
					days = append(days, d)
				}
			}
			if len(days) == 0 {
				days = []domain.Weekday{domain.Weekday(rng.Intn(7))}
			}
			sched, err := domain.WeeklySchedule(days)
			if err != nil {
				panic(err)
			}
			h.Schedule = sched
		}
		// Sprinkle pause intervals, occasionally open-ended.
		for p := 0; p < rng.Intn(3); p++ {
			start := domain.NewDate(2024, time.March, rng.Intn(31)+1)
			pause := domain.PauseInterval{HabitID: h.ID, StartDate: start}
			if rng.Intn(3) > 0 {
				end := start.AddDate(0, 0, rng.Intn(10))
				pause.EndDate = &end
			}
			h.Pauses = append(h.Pauses, pause)
		}
		habits[i] = h
	}
	return habits
}

func randomLogs(rng *rand.Rand, habits []*domain.Habit) []domain.HabitLog {
	var logs []domain.HabitLog
	for _, h := range habits {
		for d := 0; d < rng.Intn(20); d++ {
			logs = append(logs, domain.HabitLog{
				HabitID: h.ID,
				Date:    domain.NewDate(2024, time.March, rng.Intn(31)+1),
			})
		}
	}
	return logs
}
