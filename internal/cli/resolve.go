package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arothstein/ritual/internal/app"
	"github.com/arothstein/ritual/internal/domain"
	"github.com/spf13/pflag"
)

// resolveHabit maps a command-line argument to a habit: exact id, unique id
// prefix, or case-insensitive name, in that order. Archived habits resolve
// too, so they can be unarchived or removed.
func resolveHabit(ctx context.Context, a *App, arg string) (*domain.Habit, error) {
	habits, err := a.Habits.List(ctx, a.UserID, true)
	if err != nil {
		return nil, err
	}

	for _, h := range habits {
		if h.ID == arg {
			return h, nil
		}
	}

	var prefixMatches []*domain.Habit
	for _, h := range habits {
		if strings.HasPrefix(h.ID, arg) {
			prefixMatches = append(prefixMatches, h)
		}
	}
	if len(prefixMatches) == 1 {
		return prefixMatches[0], nil
	}
	if len(prefixMatches) > 1 {
		return nil, fmt.Errorf("habit id prefix %q is ambiguous (%d matches)", arg, len(prefixMatches))
	}

	for _, h := range habits {
		if strings.EqualFold(h.Name, arg) {
			return h, nil
		}
	}
	return nil, &domain.NotFoundError{Entity: "habit", ID: arg}
}

// addDateFlag registers the shared --date flag on a command's flag set.
func addDateFlag(fs *pflag.FlagSet, value *string) {
	fs.StringVar(value, "date", "", "Target date (YYYY-MM-DD, default today)")
}

// dateOrToday parses a --date value, defaulting to today when blank.
func dateOrToday(s string) (time.Time, error) {
	if s == "" {
		return domain.DateOf(time.Now()), nil
	}
	return app.ParseDate(s)
}

var weekdayAliases = map[string]domain.Weekday{
	"mon": domain.Monday, "monday": domain.Monday,
	"tue": domain.Tuesday, "tuesday": domain.Tuesday,
	"wed": domain.Wednesday, "wednesday": domain.Wednesday,
	"thu": domain.Thursday, "thursday": domain.Thursday,
	"fri": domain.Friday, "friday": domain.Friday,
	"sat": domain.Saturday, "saturday": domain.Saturday,
	"sun": domain.Sunday, "sunday": domain.Sunday,
}

// parseWeekdayNames converts --on values ("tue", "Thursday") into weekdays.
func parseWeekdayNames(names []string) ([]domain.Weekday, error) {
	var days []domain.Weekday
	for _, name := range names {
		wd, ok := weekdayAliases[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, &domain.ValidationError{Field: "days_of_week", Message: fmt.Sprintf("unknown weekday %q", name)}
		}
		days = append(days, wd)
	}
	return days, nil
}
