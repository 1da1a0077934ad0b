package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/arothstein/ritual/internal/cli/formatter"
	"github.com/arothstein/ritual/internal/contract"
	"github.com/arothstein/ritual/internal/domain"
	"github.com/spf13/cobra"
)

func newStatsCmd(a *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Chart completions per day for a month",
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

			fmt.Println(formatter.Header("Completions " + resp.Month))
			fmt.Println(renderStatsChart(resp))
			fmt.Println("  " + formatter.StyleGreen.Render("■ done") + "  " + formatter.StyleRed.Render("■ missed"))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Target month (YYYY-MM, default current)")
	return cmd
}

// renderStatsChart draws one stacked bar per day: completed habits in green,
// due-but-uncompleted in red. Future and inactive days stay empty.
func renderStatsChart(resp *contract.MonthSummaryResponse) string {
	dates := formatter.MonthDates(resp)

	chart := barchart.New(2*len(dates)+4, 12)
	var bars []barchart.BarData
	for _, date := range dates {
		cell := resp.Days[date]

		day, err := time.Parse(domain.DateLayout, date)
		if err != nil {
			continue
		}
		label := ""
		if day.Day() == 1 || day.Day()%5 == 0 {
			label = fmt.Sprintf("%d", day.Day())
		}

		values := []barchart.BarValue{
			{Name: "done", Value: float64(cell.Completed), Style: formatter.StyleGreen},
			{Name: "missed", Value: float64(cell.Total - cell.Completed), Style: formatter.StyleRed},
		}
		bars = append(bars, barchart.BarData{Label: label, Values: values})
	}

	chart.PushAll(bars)
	chart.Draw()
	return chart.View()
}
