package service

import (
	"context"
	"testing"

	"github.com/arothstein/ritual/internal/domain"
	"github.com/arothstein/ritual/internal/repository"
	"github.com/arothstein/ritual/internal/testutil"
	"github.com/stretchr/testify/require"
)

type serviceFixture struct {
	users     UserService
	habits    HabitService
	logs      LogService
	summaries SummaryService

	habitRepo repository.HabitRepo
	pauseRepo repository.PauseRepo
	logRepo   repository.LogRepo
}

func setupServices(t *testing.T) *serviceFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	userRepo := repository.NewSQLiteUserRepo(database)
	habitRepo := repository.NewSQLiteHabitRepo(database)
	pauseRepo := repository.NewSQLitePauseRepo(database)
	logRepo := repository.NewSQLiteLogRepo(database)

	return &serviceFixture{
		users:     NewUserService(userRepo),
		habits:    NewHabitService(habitRepo, uow),
		logs:      NewLogService(habitRepo, logRepo),
		summaries: NewSummaryService(habitRepo, logRepo),
		habitRepo: habitRepo,
		pauseRepo: pauseRepo,
		logRepo:   logRepo,
	}
}

func resolveUser(t *testing.T, f *serviceFixture, name string) *domain.User {
	t.Helper()
	u, err := f.users.Resolve(context.Background(), name)
	require.NoError(t, err)
	return u
}
