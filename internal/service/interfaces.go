package service

import (
	"context"
	"time"

	"github.com/arothstein/ritual/internal/app"
	"github.com/arothstein/ritual/internal/domain"
)

// Write-boundary caps per user. The pure engine never sees these.
const (
	MaxActiveHabits = 100
	MaxTotalHabits  = 200
)

// LogOutcome distinguishes the idempotent results of ledger writes.
type LogOutcome string

const (
	OutcomeLogged          LogOutcome = "logged"
	OutcomeAlreadyLogged   LogOutcome = "already-logged"
	OutcomeUnmarked        LogOutcome = "unmarked"
	OutcomeNothingToUnmark LogOutcome = "nothing-to-unmark"
)

// UserService resolves CLI profiles to user records.
type UserService interface {
	// Resolve returns the user with the given name, creating it on first use.
	Resolve(ctx context.Context, name string) (*domain.User, error)
}

// HabitService enforces the write-boundary policy around habits: name
// validation and case-insensitive uniqueness, the active/total caps, and the
// single-open-pause archive invariant.
type HabitService interface {
	Create(ctx context.Context, userID, name string, startDate time.Time, schedule domain.Schedule) (*domain.Habit, error)
	GetByID(ctx context.Context, userID, id string) (*domain.Habit, error)
	// List returns the user's habits in creation order. Archived habits are
	// filtered out unless includeArchived is set.
	List(ctx context.Context, userID string, includeArchived bool) ([]*domain.Habit, error)
	Rename(ctx context.Context, userID, id, name string) (*domain.Habit, error)
	Reschedule(ctx context.Context, userID, id string, schedule domain.Schedule) (*domain.Habit, error)
	// Archive opens a pause interval starting at asOf. Archiving an already
	// archived habit changes nothing and reports changed=false.
	Archive(ctx context.Context, userID, id string, asOf time.Time) (changed bool, err error)
	// Unarchive closes the open pause interval at asOf-1, so the habit is
	// inapplicable through yesterday and due again from asOf on.
	Unarchive(ctx context.Context, userID, id string, asOf time.Time) (changed bool, err error)
	// Delete permanently removes the habit and cascades its logs and pauses.
	Delete(ctx context.Context, userID, id string) error
}

// LogService is the policy layer over the completion ledger: writes are
// idempotent, and both directions reject dates the habit is not due on.
type LogService interface {
	MarkDone(ctx context.Context, userID, habitID string, date time.Time) (LogOutcome, error)
	Unmark(ctx context.Context, userID, habitID string, date time.Time) (LogOutcome, error)
	History(ctx context.Context, userID, habitID string, from, to time.Time) ([]domain.HabitLog, error)
}

// SummaryService runs the pure aggregators against a user's stored habits.
type SummaryService interface {
	Day(ctx context.Context, req app.DayRequest) (*app.DaySummaryResponse, error)
	Month(ctx context.Context, req app.MonthRequest) (*app.MonthSummaryResponse, error)
}
