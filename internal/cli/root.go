package cli

import (
	"github.com/spf13/cobra"

	"github.com/rmaldonado/sapo/internal/config"
	"github.com/rmaldonado/sapo/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Inbound    service.InboundService
	Onboarding service.OnboardingService
	Stats      service.StatsService

	Config config.Config

	// Serve runs the webhook server and the reminder scanner; main injects
	// it so the CLI package stays free of transport wiring.
	Serve ServeFunc

	// IsInteractive reports whether stdin is a terminal; interactive
	// commands fall back to flags when it is not.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "sapo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "sapo",
		Short: "Habit tracker engine with WhatsApp reminders",
	}

	root.AddCommand(
		newServeCmd(app),
		newStatsCmd(app),
		newHabitCmd(app),
		newDashCmd(app),
	)

	return root
}
