package domain

import (
	"fmt"
	"time"
)

// ValidationError rejects malformed input before any entity is touched.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// NotFoundError reports a missing entity, or one owned by a different user.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

type ConflictCode string

const (
	// ConflictActiveName: another non-archived habit of the same user
	// already carries this name (case-insensitive).
	ConflictActiveName ConflictCode = "ACTIVE_NAME"
	// ConflictArchivedName: the name is free among active habits but an
	// archived habit holds it; callers may offer to unarchive instead.
	ConflictArchivedName ConflictCode = "ARCHIVED_NAME"
	// ConflictHabitLimit: the user is at the active or total habit cap.
	ConflictHabitLimit ConflictCode = "HABIT_LIMIT"
	// ConflictDuplicateLog: the storage unique constraint on (habit, date)
	// fired. Idempotent callers treat this as the already-achieved state.
	ConflictDuplicateLog ConflictCode = "DUPLICATE_LOG"
)

type ConflictError struct {
	Code    ConflictCode
	Message string
}

func (e *ConflictError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// SchedulingError rejects log writes for dates on which the habit is not due.
type SchedulingError struct {
	HabitID string
	Date    time.Time
}

func (e *SchedulingError) Error() string {
	return fmt.Sprintf("habit %s is not due on %s", e.HabitID, e.Date.Format(DateLayout))
}
