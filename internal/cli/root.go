package cli

import (
	"github.com/arothstein/ritual/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands, plus
// the user the invocation runs as.
type App struct {
	Habits    service.HabitService
	Logs      service.LogService
	Summaries service.SummaryService

	// UserID is the resolved profile all commands act for.
	UserID string

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// and the calendar TUI are gated on it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "ritual" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ritual",
		Short: "Track recurring habits and their completion",
	}

	root.AddCommand(
		newHabitCmd(app),
		newDoneCmd(app),
		newUndoCmd(app),
		newDayCmd(app),
		newMonthCmd(app),
		newStatsCmd(app),
		newCalCmd(app),
	)

	return root
}
