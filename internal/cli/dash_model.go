package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rmaldonado/sapo/internal/cli/formatter"
	"github.com/rmaldonado/sapo/internal/service"
)

type statsLoadedMsg struct {
	stats *service.UserStats
	err   error
}

type refreshTickMsg struct{}

// dashModel polls the stats service on a fixed cadence and renders the
// latest snapshot.
type dashModel struct {
	stats   service.StatsService
	number  string
	refresh time.Duration

	spinner spinner.Model
	current *service.UserStats
	err     error
	loaded  bool
}

func newDashModel(stats service.StatsService, number string, refreshSec int) dashModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleGreen
	return dashModel{
		stats:   stats,
		number:  number,
		refresh: time.Duration(refreshSec) * time.Second,
		spinner: sp,
	}
}

func (m dashModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadStats())
}

func (m dashModel) loadStats() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.stats.StatsForNumber(context.Background(), m.number)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m dashModel) scheduleRefresh() tea.Cmd {
	return tea.Tick(m.refresh, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

func (m dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.loadStats()
		}
		return m, nil

	case statsLoadedMsg:
		m.loaded = true
		m.err = msg.err
		if msg.err == nil {
			m.current = msg.stats
		}
		return m, m.scheduleRefresh()

	case refreshTickMsg:
		return m, m.loadStats()

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m dashModel) View() string {
	if !m.loaded {
		return fmt.Sprintf("\n  %s cargando stats de %s...\n", m.spinner.View(), m.number)
	}
	if m.err != nil {
		return fmt.Sprintf("\n  %s\n\n  %s\n",
			formatter.StyleRed.Render("Error: "+m.err.Error()),
			formatter.Dim("r para reintentar · q para salir"))
	}
	return "\n" + formatter.FormatStats(m.number, m.current) + "\n" +
		formatter.Dim(fmt.Sprintf("  actualiza cada %s · r para refrescar · q para salir", m.refresh)) + "\n"
}
