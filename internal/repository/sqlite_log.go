package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arothstein/ritual/internal/db"
	"github.com/arothstein/ritual/internal/domain"
)

// SQLiteLogRepo implements LogRepo over a DBTX.
type SQLiteLogRepo struct {
	db db.DBTX
}

func NewSQLiteLogRepo(conn db.DBTX) *SQLiteLogRepo {
	return &SQLiteLogRepo{db: conn}
}

func (r *SQLiteLogRepo) Insert(ctx context.Context, l *domain.HabitLog) error {
	query := `INSERT INTO habit_logs (id, habit_id, date, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.HabitID,
		l.Date.Format(dateLayout),
		l.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{
				Code:    domain.ConflictDuplicateLog,
				Message: fmt.Sprintf("habit %s already logged on %s", l.HabitID, l.Date.Format(dateLayout)),
			}
		}
		return fmt.Errorf("inserting log: %w", err)
	}
	return nil
}

func (r *SQLiteLogRepo) Delete(ctx context.Context, habitID string, date time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM habit_logs WHERE habit_id = ? AND date = ?`,
		habitID, date.Format(dateLayout))
	if err != nil {
		return 0, fmt.Errorf("deleting log: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted logs: %w", err)
	}
	return int(n), nil
}

func (r *SQLiteLogRepo) ListByHabit(ctx context.Context, habitID string, from, to time.Time) ([]domain.HabitLog, error) {
	return r.ListByHabits(ctx, []string{habitID}, from, to)
}

// ListByHabits returns logs for the candidate habit set within [from, to],
// ordered by date. An empty habit set yields no logs.
func (r *SQLiteLogRepo) ListByHabits(ctx context.Context, habitIDs []string, from, to time.Time) ([]domain.HabitLog, error) {
	if len(habitIDs) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(habitIDs))
	args := make([]any, 0, len(habitIDs)+2)
	for i, id := range habitIDs {
		placeholders[i] = "?"
		args = append(args, id)
	}
	args = append(args, from.Format(dateLayout), to.Format(dateLayout))

	query := `SELECT id, habit_id, date, created_at FROM habit_logs
		WHERE habit_id IN (` + strings.Join(placeholders, ", ") + `)
		AND date >= ? AND date <= ? ORDER BY date, habit_id`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.HabitLog
	for rows.Next() {
		var l domain.HabitLog
		var dateStr, createdAtStr string
		if err := rows.Scan(&l.ID, &l.HabitID, &dateStr, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning log row: %w", err)
		}
		l.Date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing log date: %w", err)
		}
		l.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing log created_at: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating logs: %w", err)
	}
	return logs, nil
}
