package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arothstein/ritual/internal/app"
	"github.com/arothstein/ritual/internal/cli/formatter"
	"github.com/arothstein/ritual/internal/domain"
	"github.com/spf13/cobra"
)

func newHabitCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits",
	}

	cmd.AddCommand(
		newHabitAddCmd(a),
		newHabitListCmd(a),
		newHabitShowCmd(a),
		newHabitRenameCmd(a),
		newHabitEditCmd(a),
		newHabitArchiveCmd(a),
		newHabitUnarchiveCmd(a),
		newHabitRemoveCmd(a),
		newHabitLogsCmd(a),
	)

	return cmd
}

func newHabitAddCmd(a *App) *cobra.Command {
	var start string
	var on []string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add [NAME]",
		Short: "Create a new habit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			if interactive || name == "" {
				if a.IsInteractive != nil && !a.IsInteractive() {
					return errors.New("habit name required in non-interactive mode")
				}
				return runHabitAddForm(ctx, a, name)
			}

			startDate, err := dateOrToday(start)
			if err != nil {
				return err
			}
			schedule, err := scheduleFromFlags(on)
			if err != nil {
				return err
			}

			h, err := a.Habits.Create(ctx, a.UserID, name, startDate, schedule)
			if err != nil {
				return describeConflict(err)
			}
			fmt.Printf("Created habit %s (%s, %s)\n", h.Name, h.Schedule.String(), formatter.TruncID(h.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, default today)")
	cmd.Flags().StringSliceVar(&on, "on", nil, "Weekdays for a weekly habit (e.g. --on tue,thu); omit for daily")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in the habit via an interactive form")

	return cmd
}

func scheduleFromFlags(on []string) (domain.Schedule, error) {
	if len(on) == 0 {
		return domain.DailySchedule(), nil
	}
	days, err := parseWeekdayNames(on)
	if err != nil {
		return domain.Schedule{}, err
	}
	return domain.WeeklySchedule(days)
}

func newHabitListCmd(a *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			habits, err := a.Habits.List(context.Background(), a.UserID, all)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderHabitList(habits))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived habits")
	return cmd
}

func newHabitShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show HABIT",
		Short: "Show one habit with its pause history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := resolveHabit(context.Background(), a, args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderHabitDetail(h))
			return nil
		},
	}
}

func newHabitRenameCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename HABIT NEW_NAME",
		Short: "Rename a habit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			h, err := resolveHabit(ctx, a, args[0])
			if err != nil {
				return err
			}
			renamed, err := a.Habits.Rename(ctx, a.UserID, h.ID, args[1])
			if err != nil {
				return describeConflict(err)
			}
			fmt.Printf("Renamed to %s\n", renamed.Name)
			return nil
		},
	}
}

func newHabitEditCmd(a *App) *cobra.Command {
	var daily bool
	var on []string

	cmd := &cobra.Command{
		Use:   "edit HABIT",
		Short: "Change a habit's schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			h, err := resolveHabit(ctx, a, args[0])
			if err != nil {
				return err
			}

			var schedule domain.Schedule
			switch {
			case daily && len(on) > 0:
				return errors.New("--daily and --on are mutually exclusive")
			case daily:
				schedule = domain.DailySchedule()
			case len(on) > 0:
				schedule, err = scheduleFromFlags(on)
				if err != nil {
					return err
				}
			default:
				return errors.New("nothing to change: pass --daily or --on")
			}

			updated, err := a.Habits.Reschedule(ctx, a.UserID, h.ID, schedule)
			if err != nil {
				return err
			}
			fmt.Printf("Updated %s: %s\n", updated.Name, updated.Schedule.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&daily, "daily", false, "Switch to a daily schedule")
	cmd.Flags().StringSliceVar(&on, "on", nil, "Switch to a weekly schedule on these weekdays")
	return cmd
}

func newHabitArchiveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive HABIT",
		Short: "Archive a habit (stops being due from today)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			h, err := resolveHabit(ctx, a, args[0])
			if err != nil {
				return err
			}
			changed, err := a.Habits.Archive(ctx, a.UserID, h.ID, time.Now())
			if err != nil {
				return err
			}
			if !changed {
				fmt.Printf("%s is already archived\n", h.Name)
				return nil
			}
			fmt.Printf("Archived %s\n", h.Name)
			return nil
		},
	}
}

func newHabitUnarchiveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unarchive HABIT",
		Short: "Unarchive a habit (due again from today)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			h, err := resolveHabit(ctx, a, args[0])
			if err != nil {
				return err
			}
			changed, err := a.Habits.Unarchive(ctx, a.UserID, h.ID, time.Now())
			if err != nil {
				return describeConflict(err)
			}
			if !changed {
				fmt.Printf("%s is not archived\n", h.Name)
				return nil
			}
			fmt.Printf("Unarchived %s\n", h.Name)
			return nil
		},
	}
}

func newHabitRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove HABIT",
		Short: "Permanently remove a habit and all its logs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			h, err := resolveHabit(ctx, a, args[0])
			if err != nil {
				return err
			}
			if err := a.Habits.Delete(ctx, a.UserID, h.ID); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", h.Name)
			return nil
		},
	}
}

func newHabitLogsCmd(a *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "logs HABIT",
		Short: "List a habit's completion logs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			h, err := resolveHabit(ctx, a, args[0])
			if err != nil {
				return err
			}

			toDate, err := dateOrToday(to)
			if err != nil {
				return err
			}
			fromDate := toDate.AddDate(0, -1, 0)
			if from != "" {
				fromDate, err = app.ParseDate(from)
				if err != nil {
					return err
				}
			}

			logs, err := a.Logs.History(ctx, a.UserID, h.ID, fromDate, toDate)
			if err != nil {
				return err
			}
			if len(logs) == 0 {
				fmt.Println(formatter.Dim("no logs in this range"))
				return nil
			}
			fmt.Println(formatter.Header(fmt.Sprintf("%s: %d completions", h.Name, len(logs))))
			for _, l := range logs {
				fmt.Printf("  %s %s\n", formatter.StyleGreen.Render("✓"), l.Date.Format(domain.DateLayout))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD, default one month before --to)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD, default today)")
	return cmd
}

// describeConflict rephrases conflict outcomes with a remedy hint; other
// errors pass through untouched.
func describeConflict(err error) error {
	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		return err
	}
	switch conflict.Code {
	case domain.ConflictArchivedName:
		return fmt.Errorf("%s (unarchive it or pick another name)", conflict.Message)
	case domain.ConflictHabitLimit:
		return fmt.Errorf("%s (archive or remove a habit first)", conflict.Message)
	default:
		return err
	}
}

// runHabitAddForm collects the habit via an interactive form.
func runHabitAddForm(ctx context.Context, a *App, name string) error {
	values, err := collectHabitForm(name)
	if err != nil {
		return err
	}

	startDate, err := app.ParseDate(values.start)
	if err != nil {
		return err
	}
	schedule := domain.DailySchedule()
	if values.frequency == string(domain.FrequencyWeekly) {
		schedule, err = domain.WeeklySchedule(values.days)
		if err != nil {
			return err
		}
	}

	h, err := a.Habits.Create(ctx, a.UserID, values.name, startDate, schedule)
	if err != nil {
		return describeConflict(err)
	}
	fmt.Printf("Created habit %s (%s, %s)\n", h.Name, h.Schedule.String(), formatter.TruncID(h.ID))
	return nil
}
