package repository

import (
	"context"
	"time"

	"github.com/arothstein/ritual/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByName(ctx context.Context, name string) (*domain.User, error)
}

// HabitRepo loads habits with their pause intervals eagerly attached; the
// engine never sees a habit without them. All lookups are scoped by user, so
// a habit owned by someone else is indistinguishable from a missing one.
type HabitRepo interface {
	Create(ctx context.Context, h *domain.Habit) error
	GetByID(ctx context.Context, userID, id string) (*domain.Habit, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Habit, error)
	Update(ctx context.Context, h *domain.Habit) error
	Delete(ctx context.Context, userID, id string) error
}

type PauseRepo interface {
	Create(ctx context.Context, p *domain.PauseInterval) error
	Close(ctx context.Context, id string, endDate time.Time) error
	ListByHabit(ctx context.Context, habitID string) ([]domain.PauseInterval, error)
}

type LogRepo interface {
	// Insert surfaces a duplicate (habit, date) as a ConflictError with code
	// ConflictDuplicateLog, never as a generic failure.
	Insert(ctx context.Context, l *domain.HabitLog) error
	// Delete returns the number of rows removed (0 or 1).
	Delete(ctx context.Context, habitID string, date time.Time) (int, error)
	ListByHabit(ctx context.Context, habitID string, from, to time.Time) ([]domain.HabitLog, error)
	ListByHabits(ctx context.Context, habitIDs []string, from, to time.Time) ([]domain.HabitLog, error)
}
