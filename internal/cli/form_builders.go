package cli

import (
	"errors"
	"time"

	"github.com/arothstein/ritual/internal/cli/formatter"
	"github.com/arothstein/ritual/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ritualHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func ritualHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

type habitFormValues struct {
	name      string
	start     string
	frequency string
	days      []domain.Weekday
}

func validateHabitName(s string) error {
	probe := &domain.Habit{Name: s}
	return probe.ValidateName()
}

func validateDate(s string) error {
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return errors.New("expected YYYY-MM-DD")
	}
	return nil
}

// collectHabitForm runs the interactive habit form. The weekday group only
// appears when the weekly frequency is picked.
func collectHabitForm(name string) (*habitFormValues, error) {
	values := &habitFormValues{
		name:      name,
		start:     time.Now().Format(domain.DateLayout),
		frequency: string(domain.FrequencyDaily),
	}

	weekdayOptions := make([]huh.Option[domain.Weekday], 0, 7)
	for wd := domain.Monday; wd <= domain.Sunday; wd++ {
		weekdayOptions = append(weekdayOptions, huh.NewOption(wd.String(), wd))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Placeholder("Drink water").
				Value(&values.name).
				Validate(validateHabitName),
			huh.NewInput().
				Title("Start Date (YYYY-MM-DD)").
				Value(&values.start).
				Validate(validateDate),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Every day", string(domain.FrequencyDaily)),
					huh.NewOption("Specific weekdays", string(domain.FrequencyWeekly)),
				).
				Value(&values.frequency),
		),
		huh.NewGroup(
			huh.NewMultiSelect[domain.Weekday]().
				Title("Which Weekdays?").
				Options(weekdayOptions...).
				Value(&values.days).
				Validate(func(days []domain.Weekday) error {
					if len(days) == 0 {
						return errors.New("pick at least one weekday")
					}
					return nil
				}),
		).WithHideFunc(func() bool {
			return values.frequency != string(domain.FrequencyWeekly)
		}),
	).WithTheme(ritualHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, err
	}
	return values, nil
}
