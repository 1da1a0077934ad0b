package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arothstein/ritual/internal/cli/formatter"
	"github.com/arothstein/ritual/internal/contract"
	"github.com/arothstein/ritual/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type calKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Quit      key.Binding
}

func (k calKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.PrevMonth, k.NextMonth, k.Today, k.Quit}
}

func (k calKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right, k.Up, k.Down}, {k.PrevMonth, k.NextMonth, k.Today, k.Quit}}
}

var calKeys = calKeyMap{
	Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "day")),
	Right:     key.NewBinding(key.WithKeys("right")),
	Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "week")),
	Down:      key.NewBinding(key.WithKeys("down")),
	PrevMonth: key.NewBinding(key.WithKeys("h", "pgup"), key.WithHelp("h", "prev month")),
	NextMonth: key.NewBinding(key.WithKeys("l", "pgdown"), key.WithHelp("l", "next month")),
	Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

type calModel struct {
	app *App

	year     int
	month    time.Month
	selected time.Time

	summary *contract.MonthSummaryResponse
	detail  *contract.DaySummaryResponse
	err     error

	help help.Model
}

type calMonthMsg struct {
	summary *contract.MonthSummaryResponse
	err     error
}

type calDayMsg struct {
	detail *contract.DaySummaryResponse
	err    error
}

func newCalModel(a *App) calModel {
	today := domain.DateOf(time.Now())
	return calModel{
		app:      a,
		year:     today.Year(),
		month:    today.Month(),
		selected: today,
		help:     help.New(),
	}
}

func (m calModel) Init() tea.Cmd {
	return tea.Batch(m.loadMonth(), m.loadDay())
}

func (m calModel) loadMonth() tea.Cmd {
	year, month, userID := m.year, m.month, m.app.UserID
	summaries := m.app.Summaries
	return func() tea.Msg {
		resp, err := summaries.Month(context.Background(), contract.MonthRequest{
			UserID: userID,
			Month:  domain.NewDate(year, month, 1).Format("2006-01"),
		})
		return calMonthMsg{summary: resp, err: err}
	}
}

func (m calModel) loadDay() tea.Cmd {
	date, userID := m.selected, m.app.UserID
	summaries := m.app.Summaries
	return func() tea.Msg {
		resp, err := summaries.Day(context.Background(), contract.DayRequest{
			UserID: userID,
			Date:   date.Format(domain.DateLayout),
		})
		return calDayMsg{detail: resp, err: err}
	}
}

func (m calModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case calMonthMsg:
		m.summary, m.err = msg.summary, msg.err
		return m, nil

	case calDayMsg:
		m.detail, m.err = msg.detail, msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, calKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, calKeys.Left):
			return m.moveSelection(-1)
		case key.Matches(msg, calKeys.Right):
			return m.moveSelection(1)
		case key.Matches(msg, calKeys.Up):
			return m.moveSelection(-7)
		case key.Matches(msg, calKeys.Down):
			return m.moveSelection(7)
		case key.Matches(msg, calKeys.PrevMonth):
			return m.shiftMonth(-1)
		case key.Matches(msg, calKeys.NextMonth):
			return m.shiftMonth(1)
		case key.Matches(msg, calKeys.Today):
			today := domain.DateOf(time.Now())
			m.selected = today
			m.year, m.month = today.Year(), today.Month()
			return m, tea.Batch(m.loadMonth(), m.loadDay())
		}
	}
	return m, nil
}

func (m calModel) moveSelection(days int) (tea.Model, tea.Cmd) {
	m.selected = m.selected.AddDate(0, 0, days)
	if m.selected.Year() != m.year || m.selected.Month() != m.month {
		m.year, m.month = m.selected.Year(), m.selected.Month()
		return m, tea.Batch(m.loadMonth(), m.loadDay())
	}
	return m, m.loadDay()
}

func (m calModel) shiftMonth(months int) (tea.Model, tea.Cmd) {
	first := domain.NewDate(m.year, m.month, 1).AddDate(0, months, 0)
	m.year, m.month = first.Year(), first.Month()
	day := m.selected.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	m.selected = domain.NewDate(m.year, m.month, day)
	return m, tea.Batch(m.loadMonth(), m.loadDay())
}

func (m calModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("error: "+m.err.Error()) + "\n"
	}
	var b strings.Builder
	b.WriteString(m.viewGrid())
	b.WriteString("\n")
	b.WriteString(m.viewDetail())
	b.WriteString("\n")
	b.WriteString(m.help.View(calKeys))
	return b.String()
}

func (m calModel) viewGrid() string {
	var b strings.Builder
	b.WriteString(formatter.Header(domain.NewDate(m.year, m.month, 1).Format("January 2006")))
	b.WriteString("\n  ")
	for wd := domain.Monday; wd <= domain.Sunday; wd++ {
		b.WriteString(formatter.StyleBlue.Render(fmt.Sprintf("%-5s", wd.String())))
	}
	b.WriteString("\n")

	first := domain.NewDate(m.year, m.month, 1)
	last := first.AddDate(0, 1, -1)
	col := int(domain.WeekdayOf(first))
	b.WriteString("  ")
	b.WriteString(strings.Repeat("     ", col))

	for day := 1; day <= last.Day(); day++ {
		date := domain.NewDate(m.year, m.month, day)
		label := fmt.Sprintf(" %2d ", day)

		style := lipgloss.NewStyle().Foreground(formatter.ColorDim)
		if m.summary != nil {
			cell := m.summary.Days[date.Format(domain.DateLayout)]
			style = formatter.DayStatusStyle(cell.Status)
		}
		if date.Equal(m.selected) {
			style = style.Reverse(true)
		}
		b.WriteString(style.Render(label))
		b.WriteString(" ")

		col++
		if col == 7 {
			col = 0
			b.WriteString("\n  ")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (m calModel) viewDetail() string {
	if m.detail == nil {
		return formatter.Dim("  loading…") + "\n"
	}
	return formatter.RenderDaySummary(m.detail)
}
