package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/arothstein/ritual/internal/db"
	"github.com/arothstein/ritual/internal/domain"
)

// SQLitePauseRepo implements PauseRepo over a DBTX.
type SQLitePauseRepo struct {
	db db.DBTX
}

func NewSQLitePauseRepo(conn db.DBTX) *SQLitePauseRepo {
	return &SQLitePauseRepo{db: conn}
}

func (r *SQLitePauseRepo) Create(ctx context.Context, p *domain.PauseInterval) error {
	query := `INSERT INTO habit_pauses (id, habit_id, start_date, end_date) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.HabitID,
		p.StartDate.Format(dateLayout),
		nullableTimeToString(p.EndDate, dateLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting pause interval: %w", err)
	}
	return nil
}

func (r *SQLitePauseRepo) Close(ctx context.Context, id string, endDate time.Time) error {
	query := `UPDATE habit_pauses SET end_date = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, endDate.Format(dateLayout), id)
	if err != nil {
		return fmt.Errorf("closing pause interval: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.NotFoundError{Entity: "pause interval", ID: id}
	}
	return nil
}

func (r *SQLitePauseRepo) ListByHabit(ctx context.Context, habitID string) ([]domain.PauseInterval, error) {
	query := `SELECT id, habit_id, start_date, end_date FROM habit_pauses WHERE habit_id = ? ORDER BY start_date, id`
	rows, err := r.db.QueryContext(ctx, query, habitID)
	if err != nil {
		return nil, fmt.Errorf("listing pause intervals: %w", err)
	}
	defer rows.Close()

	var pauses []domain.PauseInterval
	for rows.Next() {
		var p domain.PauseInterval
		var startStr string
		var endStr sql.NullString
		if err := rows.Scan(&p.ID, &p.HabitID, &startStr, &endStr); err != nil {
			return nil, fmt.Errorf("scanning pause row: %w", err)
		}
		p.StartDate, err = time.Parse(dateLayout, startStr)
		if err != nil {
			return nil, fmt.Errorf("parsing pause start_date: %w", err)
		}
		p.EndDate = parseNullableTime(endStr, dateLayout)
		pauses = append(pauses, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pause intervals: %w", err)
	}
	return pauses, nil
}
