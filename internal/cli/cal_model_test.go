package cli

import (
	"testing"
	"time"

	"github.com/arothstein/ritual/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedCalModel(t *testing.T, a *App) calModel {
	t.Helper()
	m := newCalModel(a)
	m.year, m.month = 2024, time.January
	m.selected = domain.NewDate(2024, time.January, 10)
	return m
}

func TestCalModel_LoadsMonthAndDay(t *testing.T) {
	a := setupApp(t)
	require.NoError(t, execute(t, a, "habit", "add", "Read", "--start", "2024-01-01"))
	require.NoError(t, execute(t, a, "done", "Read", "--date", "2024-01-10"))

	m := fixedCalModel(t, a)

	monthMsg := m.loadMonth()()
	model, _ := m.Update(monthMsg)
	m = model.(calModel)
	require.NoError(t, m.err)
	require.NotNil(t, m.summary)
	assert.Equal(t, "2024-01", m.summary.Month)

	dayMsg := m.loadDay()()
	model, _ = m.Update(dayMsg)
	m = model.(calModel)
	require.NotNil(t, m.detail)
	require.Len(t, m.detail.Entries, 1)
	assert.True(t, m.detail.Entries[0].Completed)

	view := m.View()
	assert.Contains(t, view, "January 2024")
	assert.Contains(t, view, "Read")
}

func TestCalModel_Navigation(t *testing.T) {
	a := setupApp(t)
	m := fixedCalModel(t, a)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = model.(calModel)
	assert.Equal(t, domain.NewDate(2024, time.January, 11), m.selected)
	assert.NotNil(t, cmd, "day reload scheduled")

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = model.(calModel)
	assert.Equal(t, domain.NewDate(2024, time.January, 18), m.selected)

	// Crossing the month boundary reloads the month.
	m.selected = domain.NewDate(2024, time.January, 31)
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = model.(calModel)
	assert.Equal(t, time.February, m.month)
	assert.Equal(t, domain.NewDate(2024, time.February, 1), m.selected)

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	m = model.(calModel)
	assert.Equal(t, time.January, m.month)
}

func TestCalModel_QuitKey(t *testing.T) {
	a := setupApp(t)
	m := fixedCalModel(t, a)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
