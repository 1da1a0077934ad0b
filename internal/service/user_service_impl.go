package service

import (
	"context"
	"errors"
	"time"

	"github.com/arothstein/ritual/internal/domain"
	"github.com/arothstein/ritual/internal/repository"
	"github.com/google/uuid"
)

type userService struct {
	users repository.UserRepo
}

func NewUserService(users repository.UserRepo) UserService {
	return &userService{users: users}
}

// Resolve looks a profile up by name and creates it on first use. A create
// that loses a race to another process falls back to the winner's row.
func (s *userService) Resolve(ctx context.Context, name string) (*domain.User, error) {
	if name == "" {
		return nil, &domain.ValidationError{Field: "user", Message: "user name is required"}
	}
	u, err := s.users.GetByName(ctx, name)
	if err == nil {
		return u, nil
	}
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		return nil, err
	}

	u = &domain.User{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			return s.users.GetByName(ctx, name)
		}
		return nil, err
	}
	return u, nil
}
