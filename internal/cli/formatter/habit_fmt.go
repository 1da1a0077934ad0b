package formatter

import (
	"fmt"
	"strings"

	"github.com/arothstein/ritual/internal/domain"
)

// RenderHabitList renders the user's habits as a table.
func RenderHabitList(habits []*domain.Habit) string {
	if len(habits) == 0 {
		return Dim("no habits yet — try: ritual habit add") + "\n"
	}

	headers := []string{"ID", "NAME", "SCHEDULE", "SINCE", "STATE"}
	rows := make([][]string, 0, len(habits))
	for _, h := range habits {
		state := StyleGreen.Render("active")
		if h.Archived() {
			state = StyleDim.Render("archived")
		}
		rows = append(rows, []string{
			TruncID(h.ID),
			StyleFg.Render(h.Name),
			h.Schedule.String(),
			h.StartDate.Format(domain.DateLayout),
			state,
		})
	}
	return RenderTable(headers, rows)
}

// RenderHabitDetail renders one habit with its pause history.
func RenderHabitDetail(h *domain.Habit) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n\n", Bold(h.Name)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("ID      "), TruncID(h.ID)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("SCHEDULE"), h.Schedule.String()))
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("SINCE   "), h.StartDate.Format(domain.DateLayout)))
	if h.Archived() {
		b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("STATE   "), StyleDim.Render("archived")))
	} else {
		b.WriteString(fmt.Sprintf("  %s  %s\n", Dim("STATE   "), StyleGreen.Render("active")))
	}

	if len(h.Pauses) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Pauses"))
		b.WriteString("\n")
		for _, p := range h.Pauses {
			end := "open"
			if p.EndDate != nil {
				end = p.EndDate.Format(domain.DateLayout)
			}
			b.WriteString(fmt.Sprintf("  %s — %s\n",
				p.StartDate.Format(domain.DateLayout), Dim(end)))
		}
	}
	return b.String()
}
