package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/arothstein/ritual/internal/contract"
	"github.com/arothstein/ritual/internal/domain"
)

// RenderDaySummary renders the per-habit classification for one date.
func RenderDaySummary(resp *contract.DaySummaryResponse) string {
	var b strings.Builder
	b.WriteString(Header("Habits on " + resp.Date))
	b.WriteString("\n")

	if len(resp.Entries) == 0 {
		b.WriteString(Dim("  nothing due on this day"))
		b.WriteString("\n")
		return b.String()
	}

	done := 0
	for _, e := range resp.Entries {
		if e.Completed {
			done++
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", HabitStatusIndicator(e.Status), StyleFg.Render(e.Name)))
	}
	b.WriteString(fmt.Sprintf("\n  %s\n", Dim(fmt.Sprintf("%d of %d complete", done, len(resp.Entries)))))
	return b.String()
}

// RenderMonthSummary renders the month rollup as a Mon-first calendar grid.
// Each cell shows the day number colored by its status, with done/total
// counts underneath for days that carry counts.
func RenderMonthSummary(resp *contract.MonthSummaryResponse) string {
	first, err := time.Parse("2006-01", resp.Month)
	if err != nil {
		return ""
	}
	year, month := first.Year(), first.Month()
	last := domain.NewDate(year, month, 1).AddDate(0, 1, -1)

	var b strings.Builder
	b.WriteString(Header(first.Format("January 2006")))
	b.WriteString("\n  ")
	for wd := domain.Monday; wd <= domain.Sunday; wd++ {
		b.WriteString(StyleBlue.Render(fmt.Sprintf("%-8s", wd.String())))
	}
	b.WriteString("\n")

	// Leading blanks up to the first day's weekday column.
	col := int(domain.WeekdayOf(domain.NewDate(year, month, 1)))
	b.WriteString("  ")
	b.WriteString(strings.Repeat("        ", col))

	for day := 1; day <= last.Day(); day++ {
		date := domain.NewDate(year, month, day)
		cell := resp.Days[date.Format(domain.DateLayout)]
		b.WriteString(renderDayCell(day, cell))
		col++
		if col == 7 {
			col = 0
			b.WriteString("\n  ")
		}
	}
	b.WriteString("\n\n")
	b.WriteString(renderMonthLegend())
	return b.String()
}

func renderDayCell(day int, cell contract.DayCellView) string {
	label := fmt.Sprintf("%2d", day)
	switch cell.Status {
	case domain.DayFuture:
		return StyleDim.Render(label) + "      "
	case domain.DayInactive:
		return StyleDim.Render(label+" ·") + "    "
	default:
		counts := fmt.Sprintf("%d/%d", cell.Completed, cell.Total)
		pad := 5 - len(counts)
		if pad < 0 {
			pad = 0
		}
		return DayStatusStyle(cell.Status).Render(label) + " " +
			Dim(counts) + strings.Repeat(" ", pad)
	}
}

func renderMonthLegend() string {
	parts := []string{
		StyleGreen.Render("■ complete"),
		StyleYellow.Render("■ partial"),
		StyleRed.Render("■ incomplete"),
		StyleDim.Render("· inactive"),
	}
	return "  " + strings.Join(parts, "  ") + "\n"
}

// MonthDates returns the month's dates that carry counts, in calendar order.
// Used by the stats chart to keep bar order stable.
func MonthDates(resp *contract.MonthSummaryResponse) []string {
	dates := make([]string, 0, len(resp.Days))
	for d := range resp.Days {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
