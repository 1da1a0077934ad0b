package cli

import (
	"context"
	"fmt"

	"github.com/arothstein/ritual/internal/cli/formatter"
	"github.com/arothstein/ritual/internal/domain"
	"github.com/arothstein/ritual/internal/service"
	"github.com/spf13/cobra"
)

func newDoneCmd(a *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "done HABIT",
		Short: "Mark a habit done for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			h, err := resolveHabit(ctx, a, args[0])
			if err != nil {
				return err
			}
			d, err := dateOrToday(date)
			if err != nil {
				return err
			}

			outcome, err := a.Logs.MarkDone(ctx, a.UserID, h.ID, d)
			if err != nil {
				return err
			}
			day := d.Format(domain.DateLayout)
			if outcome == service.OutcomeAlreadyLogged {
				fmt.Printf("%s was already done on %s\n", h.Name, day)
				return nil
			}
			fmt.Printf("%s %s done on %s\n", formatter.StyleGreen.Render("✓"), h.Name, day)
			return nil
		},
	}

	addDateFlag(cmd.Flags(), &date)
	return cmd
}

func newUndoCmd(a *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "undo HABIT",
		Short: "Unmark a habit for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			h, err := resolveHabit(ctx, a, args[0])
			if err != nil {
				return err
			}
			d, err := dateOrToday(date)
			if err != nil {
				return err
			}

			outcome, err := a.Logs.Unmark(ctx, a.UserID, h.ID, d)
			if err != nil {
				return err
			}
			day := d.Format(domain.DateLayout)
			if outcome == service.OutcomeNothingToUnmark {
				fmt.Printf("%s was not done on %s\n", h.Name, day)
				return nil
			}
			fmt.Printf("Unmarked %s on %s\n", h.Name, day)
			return nil
		},
	}

	addDateFlag(cmd.Flags(), &date)
	return cmd
}
