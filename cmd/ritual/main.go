package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arothstein/ritual/internal/cli"
	"github.com/arothstein/ritual/internal/db"
	"github.com/arothstein/ritual/internal/repository"
	"github.com/arothstein/ritual/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.ritual/ritual.db
	dbPath := os.Getenv("RITUAL_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".ritual", "ritual.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	userRepo := repository.NewSQLiteUserRepo(database)
	habitRepo := repository.NewSQLiteHabitRepo(database)
	logRepo := repository.NewSQLiteLogRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	// Use-case logging goes to stderr when RITUAL_LOG is set.
	var logWriter io.Writer
	if os.Getenv("RITUAL_LOG") != "" {
		logWriter = os.Stderr
	}
	observer := service.NewLogUseCaseObserver(logWriter)

	// Resolve the profile this invocation runs as.
	profile := os.Getenv("RITUAL_USER")
	if profile == "" {
		profile = "default"
	}
	user, err := service.NewUserService(userRepo).Resolve(context.Background(), profile)
	if err != nil {
		return fmt.Errorf("resolving user %q: %w", profile, err)
	}

	app := &cli.App{
		Habits:    service.NewHabitService(habitRepo, uow, observer),
		Logs:      service.NewLogService(habitRepo, logRepo, observer),
		Summaries: service.NewSummaryService(habitRepo, logRepo),
		UserID:    user.ID,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
