package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive TUI. Session restoration has already happened
// by the time the program starts; the model begins on the dashboard when a
// session exists, on the login view otherwise.
func Run(deps Deps) error {
	applyColorProfilePreference()
	m := newAppModel(deps)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

// The watchdog deadline is minute-granular; a coarse tick is plenty and
// keeps the idle TUI cheap.
const watchdogTickInterval = 15 * time.Second

func watchdogTick() tea.Cmd {
	return tea.Tick(watchdogTickInterval, func(t time.Time) tea.Msg {
		return watchdogTickMsg{now: t}
	})
}

const minibufferClearDelay = 5 * time.Second

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{watchdogTick(), m.spin.Tick}
	if m.view == viewDashboard {
		cmds = append(cmds, m.loadProjectsCmd())
	}
	return tea.Batch(cmds...)
}

func (m appModel) View() string {
	switch m.view {
	case viewDashboard:
		return m.viewDashboard()
	case viewWizard:
		return m.viewWizard()
	case viewEditor:
		return m.viewEditor()
	default:
		return m.viewLoginScreen()
	}
}
