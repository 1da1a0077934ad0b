package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/arothstein/ritual/internal/db"
	"github.com/arothstein/ritual/internal/domain"
)

// SQLiteUserRepo implements UserRepo over a DBTX.
type SQLiteUserRepo struct {
	db db.DBTX
}

func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, name, created_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Name, u.CreatedAt.Format(time.RFC3339))
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Code: domain.ConflictActiveName, Message: fmt.Sprintf("user %q already exists", u.Name)}
		}
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, created_at FROM users WHERE id = ?`, id)
	return r.scanUser(row, id)
}

func (r *SQLiteUserRepo) GetByName(ctx context.Context, name string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, created_at FROM users WHERE name = ?`, name)
	return r.scanUser(row, name)
}

func (r *SQLiteUserRepo) scanUser(row *sql.Row, ref string) (*domain.User, error) {
	var u domain.User
	var createdAtStr string
	if err := row.Scan(&u.ID, &u.Name, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, &domain.NotFoundError{Entity: "user", ID: ref}
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	var parseErr error
	u.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return &u, nil
}
