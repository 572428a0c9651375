package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashCmd(app *App) *cobra.Command {
	var refreshSec int

	cmd := &cobra.Command{
		Use:   "dash <whatsapp-number>",
		Short: "Live dashboard for a number's streak and adherence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("dash needs an interactive terminal; use `sapo stats` instead")
			}

			model := newDashModel(app.Stats, args[0], refreshSec)
			_, err := tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().IntVar(&refreshSec, "refresh", 5, "Refresh interval in seconds")

	return cmd
}
