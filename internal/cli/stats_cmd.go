package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmaldonado/sapo/internal/cli/formatter"
)

func newStatsCmd(app *App) *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "stats <whatsapp-number>",
		Short: "Show streak and adherence stats for a number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number := args[0]

			if verify {
				status, err := app.Stats.VerifyNumber(context.Background(), number)
				if err != nil {
					return err
				}
				fmt.Print(formatter.FormatVerify(number, status))
				return nil
			}

			stats, err := app.Stats.StatsForNumber(context.Background(), number)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatStats(number, stats))
			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "Only check whether the number is registered")

	return cmd
}
