package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/arothstein/ritual/internal/cli/formatter"
	"github.com/arothstein/ritual/internal/contract"
	"github.com/arothstein/ritual/internal/domain"
	"github.com/spf13/cobra"
)

func newDayCmd(a *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show habit status for one day",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := date
			if target == "" {
				target = time.Now().Format(domain.DateLayout)
			}
			resp, err := a.Summaries.Day(context.Background(), contract.DayRequest{
				UserID: a.UserID,
				Date:   target,
			})
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderDaySummary(resp))
			return nil
		},
	}

	addDateFlag(cmd.Flags(), &date)
	return cmd
}

func newMonthCmd(a *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show the month's completion calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := month
			if target == "" {
				target = time.Now().Format("2006-01")
			}
			resp, err := a.Summaries.Month(context.Background(), contract.MonthRequest{
				UserID: a.UserID,
				Month:  target,
			})
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderMonthSummary(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Target month (YYYY-MM, default current)")
	return cmd
}
