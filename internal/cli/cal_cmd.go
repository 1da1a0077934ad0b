package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newCalCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cal",
		Short: "Browse the completion calendar interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.IsInteractive != nil && !a.IsInteractive() {
				return errors.New("cal needs an interactive terminal; use 'ritual month' instead")
			}
			p := tea.NewProgram(newCalModel(a), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
