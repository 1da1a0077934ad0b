package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arothstein/ritual/internal/db"
	"github.com/arothstein/ritual/internal/domain"
	"github.com/arothstein/ritual/internal/repository"
	"github.com/google/uuid"
)

type habitService struct {
	habits   repository.HabitRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewHabitService(habits repository.HabitRepo, uow db.UnitOfWork, observers ...UseCaseObserver) HabitService {
	return &habitService{
		habits:   habits,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *habitService) Create(ctx context.Context, userID, name string, startDate time.Time, schedule domain.Schedule) (h *domain.Habit, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "habit-create",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"user": userID},
		})
	}()

	now := time.Now().UTC()
	h = &domain.Habit{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      strings.TrimSpace(name),
		StartDate: domain.DateOf(startDate),
		Schedule:  schedule,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = h.ValidateName(); err != nil {
		return nil, err
	}

	// Caps and name uniqueness are read-then-write; the transaction keeps the
	// window small.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txHabits := repository.NewSQLiteHabitRepo(tx)
		existing, err := txHabits.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(existing) >= MaxTotalHabits {
			return &domain.ConflictError{
				Code:    domain.ConflictHabitLimit,
				Message: fmt.Sprintf("limit of %d habits reached", MaxTotalHabits),
			}
		}
		if countActive(existing) >= MaxActiveHabits {
			return &domain.ConflictError{
				Code:    domain.ConflictHabitLimit,
				Message: fmt.Sprintf("limit of %d active habits reached", MaxActiveHabits),
			}
		}
		if err := checkNameConflict(existing, h.Name, ""); err != nil {
			return err
		}
		return txHabits.Create(ctx, h)
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (s *habitService) GetByID(ctx context.Context, userID, id string) (*domain.Habit, error) {
	return s.habits.GetByID(ctx, userID, id)
}

func (s *habitService) List(ctx context.Context, userID string, includeArchived bool) ([]*domain.Habit, error) {
	all, err := s.habits.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if includeArchived {
		return all, nil
	}
	var active []*domain.Habit
	for _, h := range all {
		if !h.Archived() {
			active = append(active, h)
		}
	}
	return active, nil
}

func (s *habitService) Rename(ctx context.Context, userID, id, name string) (*domain.Habit, error) {
	name = strings.TrimSpace(name)
	probe := &domain.Habit{Name: name}
	if err := probe.ValidateName(); err != nil {
		return nil, err
	}

	var renamed *domain.Habit
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txHabits := repository.NewSQLiteHabitRepo(tx)
		h, err := txHabits.GetByID(ctx, userID, id)
		if err != nil {
			return err
		}
		existing, err := txHabits.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		if err := checkNameConflict(existing, name, id); err != nil {
			return err
		}
		h.Name = name
		h.UpdatedAt = time.Now().UTC()
		if err := txHabits.Update(ctx, h); err != nil {
			return err
		}
		renamed = h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return renamed, nil
}

func (s *habitService) Reschedule(ctx context.Context, userID, id string, schedule domain.Schedule) (*domain.Habit, error) {
	h, err := s.habits.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	h.Schedule = schedule
	h.UpdatedAt = time.Now().UTC()
	if err := s.habits.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *habitService) Archive(ctx context.Context, userID, id string, asOf time.Time) (bool, error) {
	changed := false
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txHabits := repository.NewSQLiteHabitRepo(tx)
		txPauses := repository.NewSQLitePauseRepo(tx)

		h, err := txHabits.GetByID(ctx, userID, id)
		if err != nil {
			return err
		}
		// Open-pause exclusivity: archiving an archived habit is a no-op.
		if h.Archived() {
			return nil
		}
		changed = true
		return txPauses.Create(ctx, &domain.PauseInterval{
			ID:        uuid.New().String(),
			HabitID:   h.ID,
			StartDate: domain.DateOf(asOf),
		})
	})
	return changed, err
}

func (s *habitService) Unarchive(ctx context.Context, userID, id string, asOf time.Time) (bool, error) {
	changed := false
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txHabits := repository.NewSQLiteHabitRepo(tx)
		txPauses := repository.NewSQLitePauseRepo(tx)

		h, err := txHabits.GetByID(ctx, userID, id)
		if err != nil {
			return err
		}
		open := h.OpenPause()
		if open == nil {
			return nil
		}
		existing, err := txHabits.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		if countActive(existing) >= MaxActiveHabits {
			return &domain.ConflictError{
				Code:    domain.ConflictHabitLimit,
				Message: fmt.Sprintf("limit of %d active habits reached", MaxActiveHabits),
			}
		}
		changed = true
		// Close through yesterday, so the habit is due again starting asOf.
		return txPauses.Close(ctx, open.ID, domain.DateOf(asOf).AddDate(0, 0, -1))
	})
	return changed, err
}

func (s *habitService) Delete(ctx context.Context, userID, id string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "habit-delete",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"user": userID, "habit": id},
		})
	}()
	return s.habits.Delete(ctx, userID, id)
}

func countActive(habits []*domain.Habit) int {
	n := 0
	for _, h := range habits {
		if !h.Archived() {
			n++
		}
	}
	return n
}

// checkNameConflict enforces case-insensitive name uniqueness within one
// user's habits, excluding excludeID (the habit being renamed). An active
// holder and an archived holder are distinct outcomes so the caller can
// suggest unarchiving.
func checkNameConflict(existing []*domain.Habit, name, excludeID string) error {
	archivedHolder := false
	for _, other := range existing {
		if other.ID == excludeID || !strings.EqualFold(other.Name, name) {
			continue
		}
		if !other.Archived() {
			return &domain.ConflictError{
				Code:    domain.ConflictActiveName,
				Message: fmt.Sprintf("an active habit is already named %q", other.Name),
			}
		}
		archivedHolder = true
	}
	if archivedHolder {
		return &domain.ConflictError{
			Code:    domain.ConflictArchivedName,
			Message: fmt.Sprintf("an archived habit is already named %q", name),
		}
	}
	return nil
}
