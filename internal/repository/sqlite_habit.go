package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/arothstein/ritual/internal/db"
	"github.com/arothstein/ritual/internal/domain"
)

// SQLiteHabitRepo implements HabitRepo over a DBTX.
type SQLiteHabitRepo struct {
	db db.DBTX
}

func NewSQLiteHabitRepo(conn db.DBTX) *SQLiteHabitRepo {
	return &SQLiteHabitRepo{db: conn}
}

const habitColumns = `id, user_id, name, start_date, frequency, days_of_week, created_at, updated_at`

func (r *SQLiteHabitRepo) Create(ctx context.Context, h *domain.Habit) error {
	query := `INSERT INTO habits (` + habitColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		h.UserID,
		h.Name,
		h.StartDate.Format(dateLayout),
		string(h.Schedule.Frequency()),
		weekdaysToString(h.Schedule.Days()),
		h.CreatedAt.Format(time.RFC3339),
		h.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting habit: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) GetByID(ctx context.Context, userID, id string) (*domain.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE id = ? AND user_id = ?`
	row := r.db.QueryRowContext(ctx, query, id, userID)
	h, err := r.scanHabit(row, id)
	if err != nil {
		return nil, err
	}
	if err := r.attachPauses(ctx, []*domain.Habit{h}); err != nil {
		return nil, err
	}
	return h, nil
}

func (r *SQLiteHabitRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE user_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing habits: %w", err)
	}
	defer rows.Close()

	var habits []*domain.Habit
	for rows.Next() {
		h, err := r.scanHabitFromRows(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating habits: %w", err)
	}
	if err := r.attachPauses(ctx, habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func (r *SQLiteHabitRepo) Update(ctx context.Context, h *domain.Habit) error {
	query := `UPDATE habits SET name = ?, start_date = ?, frequency = ?, days_of_week = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query,
		h.Name,
		h.StartDate.Format(dateLayout),
		string(h.Schedule.Frequency()),
		weekdaysToString(h.Schedule.Days()),
		h.UpdatedAt.Format(time.RFC3339),
		h.ID,
		h.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating habit: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "habit", ID: h.ID}
	}
	return nil
}

func (r *SQLiteHabitRepo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting habit: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "habit", ID: id}
	}
	return nil
}

// attachPauses loads the pause intervals for all given habits in one query.
func (r *SQLiteHabitRepo) attachPauses(ctx context.Context, habits []*domain.Habit) error {
	if len(habits) == 0 {
		return nil
	}
	byID := make(map[string]*domain.Habit, len(habits))
	placeholders := make([]string, len(habits))
	args := make([]any, len(habits))
	for i, h := range habits {
		byID[h.ID] = h
		placeholders[i] = "?"
		args[i] = h.ID
	}

	query := `SELECT id, habit_id, start_date, end_date FROM habit_pauses
		WHERE habit_id IN (` + strings.Join(placeholders, ", ") + `) ORDER BY start_date, id`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("listing habit pauses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.PauseInterval
		var startStr string
		var endStr sql.NullString
		if err := rows.Scan(&p.ID, &p.HabitID, &startStr, &endStr); err != nil {
			return fmt.Errorf("scanning pause row: %w", err)
		}
		p.StartDate, err = time.Parse(dateLayout, startStr)
		if err != nil {
			return fmt.Errorf("parsing pause start_date: %w", err)
		}
		p.EndDate = parseNullableTime(endStr, dateLayout)
		if h := byID[p.HabitID]; h != nil {
			h.Pauses = append(h.Pauses, p)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating pauses: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) scanHabit(row *sql.Row, ref string) (*domain.Habit, error) {
	var h domain.Habit
	var startStr, freqStr, createdAtStr, updatedAtStr string
	var daysStr sql.NullString

	err := row.Scan(&h.ID, &h.UserID, &h.Name, &startStr, &freqStr, &daysStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &domain.NotFoundError{Entity: "habit", ID: ref}
		}
		return nil, fmt.Errorf("scanning habit: %w", err)
	}
	return finishHabitScan(&h, startStr, freqStr, daysStr, createdAtStr, updatedAtStr)
}

func (r *SQLiteHabitRepo) scanHabitFromRows(rows *sql.Rows) (*domain.Habit, error) {
	var h domain.Habit
	var startStr, freqStr, createdAtStr, updatedAtStr string
	var daysStr sql.NullString

	err := rows.Scan(&h.ID, &h.UserID, &h.Name, &startStr, &freqStr, &daysStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning habit row: %w", err)
	}
	return finishHabitScan(&h, startStr, freqStr, daysStr, createdAtStr, updatedAtStr)
}

func finishHabitScan(h *domain.Habit, startStr, freqStr string, daysStr sql.NullString, createdAtStr, updatedAtStr string) (*domain.Habit, error) {
	var parseErr error
	h.StartDate, parseErr = time.Parse(dateLayout, startStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_date: %w", parseErr)
	}
	h.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	h.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	h.Schedule = domain.RestoreSchedule(domain.Frequency(freqStr), parseWeekdays(daysStr))
	return h, nil
}
