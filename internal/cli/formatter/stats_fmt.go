package formatter

import (
	"fmt"
	"strings"

	"github.com/rmaldonado/sapo/internal/service"
)

// FormatStats renders the adherence aggregates for one WhatsApp number.
func FormatStats(number string, stats *service.UserStats) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Stats · %s", number)))
	b.WriteString("\n\n")

	streakStyle := StyleDim
	if stats.CurrentStreak > 0 {
		streakStyle = StyleGreen
	}
	b.WriteString(fmt.Sprintf("  %s  %s\n",
		StyleBold.Render("Racha actual:"),
		streakStyle.Render(fmt.Sprintf("%d días 🔥", stats.CurrentStreak))))

	b.WriteString(fmt.Sprintf("  %s  %s\n",
		StyleBold.Render("Éxito (7 días):"),
		RateStyle(stats.SuccessRate7d).Render(fmt.Sprintf("%d%%", stats.SuccessRate7d))))

	b.WriteString(fmt.Sprintf("  %s  %s\n",
		StyleBold.Render("Sapos comidos:"),
		StyleGreen.Render(fmt.Sprintf("%d", stats.FrogsDefeated))))

	if stats.TotalDelays > 0 {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			StyleBold.Render("Posposiciones:"),
			StyleYellow.Render(fmt.Sprintf("%d", stats.TotalDelays))))
	}

	return b.String()
}

// FormatVerify renders the registration status of a number.
func FormatVerify(number string, status *service.NumberStatus) string {
	if !status.Registered {
		return Dim(fmt.Sprintf("%s no está registrado.", number)) + "\n"
	}
	return fmt.Sprintf("%s %s\n",
		StyleGreen.Render("✓"),
		fmt.Sprintf("%s registrado · %d hábito(s) activo(s)", number, status.ActiveHabits))
}
