package service

import (
	"context"
	"errors"
	"time"

	"github.com/arothstein/ritual/internal/domain"
	"github.com/arothstein/ritual/internal/engine"
	"github.com/arothstein/ritual/internal/repository"
	"github.com/google/uuid"
)

type logService struct {
	habits   repository.HabitRepo
	logs     repository.LogRepo
	observer UseCaseObserver
}

func NewLogService(habits repository.HabitRepo, logs repository.LogRepo, observers ...UseCaseObserver) LogService {
	return &logService{
		habits:   habits,
		logs:     logs,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *logService) MarkDone(ctx context.Context, userID, habitID string, date time.Time) (outcome LogOutcome, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "mark-done",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"user": userID, "habit": habitID, "outcome": string(outcome)},
		})
	}()

	d := domain.DateOf(date)
	h, err := s.habits.GetByID(ctx, userID, habitID)
	if err != nil {
		return "", err
	}
	if !engine.IsDue(h, d) {
		return "", &domain.SchedulingError{HabitID: habitID, Date: d}
	}

	err = s.logs.Insert(ctx, &domain.HabitLog{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		Date:      d,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		// A duplicate log is the already-achieved end state, not a failure.
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) && conflict.Code == domain.ConflictDuplicateLog {
			return OutcomeAlreadyLogged, nil
		}
		return "", err
	}
	return OutcomeLogged, nil
}

func (s *logService) Unmark(ctx context.Context, userID, habitID string, date time.Time) (outcome LogOutcome, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "unmark",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"user": userID, "habit": habitID, "outcome": string(outcome)},
		})
	}()

	d := domain.DateOf(date)
	h, err := s.habits.GetByID(ctx, userID, habitID)
	if err != nil {
		return "", err
	}
	if !engine.IsDue(h, d) {
		return "", &domain.SchedulingError{HabitID: habitID, Date: d}
	}

	n, err := s.logs.Delete(ctx, habitID, d)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return OutcomeNothingToUnmark, nil
	}
	return OutcomeUnmarked, nil
}

func (s *logService) History(ctx context.Context, userID, habitID string, from, to time.Time) ([]domain.HabitLog, error) {
	// Ownership check first; a foreign habit id must read as not found.
	if _, err := s.habits.GetByID(ctx, userID, habitID); err != nil {
		return nil, err
	}
	return s.logs.ListByHabit(ctx, habitID, domain.DateOf(from), domain.DateOf(to))
}
