package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rmaldonado/sapo/internal/domain"
)

func newHabitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits",
	}
	cmd.AddCommand(newHabitAddCmd(app))
	return cmd
}

func newHabitAddCmd(app *App) *cobra.Command {
	var number, name, reminderTime string
	var frog bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a habit for a WhatsApp number",
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := app.IsInteractive != nil && app.IsInteractive()
			if interactive && (number == "" || name == "") {
				if err := habitAddForm(&number, &name, &reminderTime, &frog).Run(); err != nil {
					return err
				}
			}
			if number == "" || name == "" {
				return fmt.Errorf("both --number and --name are required")
			}

			ctx := context.Background()
			u, err := app.Onboarding.RegisterUser(ctx, number, "")
			if err != nil {
				return err
			}

			h := &domain.Habit{
				UserID:       u.ID,
				Name:         name,
				ReminderTime: reminderTime,
			}
			if frog {
				h.Priority = domain.FrogPriority
			}
			if err := app.Onboarding.CreateHabit(ctx, h); err != nil {
				return err
			}

			fmt.Printf("Hábito %q creado para %s (recordatorio %s)\n", h.Name, number, h.ReminderTime)
			return nil
		},
	}

	cmd.Flags().StringVar(&number, "number", "", "WhatsApp number with country code")
	cmd.Flags().StringVar(&name, "name", "", "Habit name")
	cmd.Flags().StringVar(&reminderTime, "time", "", "Reminder time (HH:MM, default 09:00)")
	cmd.Flags().BoolVar(&frog, "frog", false, "Mark as the day's most important task")

	return cmd
}

func habitAddForm(number, name, reminderTime *string, frog *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Tu WhatsApp (con código de país)").
				Placeholder("56912345678").
				Value(number).
				Validate(validateNumber),
			huh.NewInput().
				Title("¿Qué tarea vas a dejar de procrastinar?").
				Placeholder("Terminar propuesta técnica").
				Value(name).
				Validate(validateRequired),
			huh.NewInput().
				Title("Hora del recordatorio (HH:MM)").
				Placeholder("09:00").
				Value(reminderTime).
				Validate(validateOptionalTime),
			huh.NewConfirm().
				Title("¿Es tu sapo del día? (prioridad máxima)").
				Value(frog),
		),
	).WithShowHelp(false)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("este campo es obligatorio")
	}
	return nil
}

func validateNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("este campo es obligatorio")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("solo dígitos, con código de país")
		}
	}
	return nil
}

func validateOptionalTime(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var hh, mm int
	if _, err := fmt.Sscanf(s, "%d:%d", &hh, &mm); err != nil {
		return fmt.Errorf("formato HH:MM")
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return fmt.Errorf("hora fuera de rango")
	}
	return nil
}
