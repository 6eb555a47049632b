package tui

import (
	"strings"

	"docugen-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && !m.projectsList.SettingFilter() {
		switch key.String() {
		case "enter":
			if it, ok := m.projectsList.SelectedItem().(projectItem); ok {
				m.openEditor()
				return m, m.loadProjectCmd(it.project.ID)
			}
			return m, nil
		case "n":
			// Full wizard: ChooseType first.
			m.startWizard("")
			return m, nil
		case "D":
			// Pre-seeded shortcut entry: straight to ConfigureDetails.
			m.startWizard(model.ProjectTypeDocx)
			return m, nil
		case "P":
			m.startWizard(model.ProjectTypePptx)
			return m, nil
		case "r":
			m.loadingProjects = true
			return m, m.loadProjectsCmd()
		case "L":
			if err := m.deps.Sessions.Logout(); err != nil {
				return m, m.toast("Logout failed: " + err.Error())
			}
			m.forceLogin("")
			return m, nil
		case "q":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.projectsList, cmd = m.projectsList.Update(msg)
	return m, cmd
}

func (m appModel) viewDashboard() string {
	email := ""
	if s := m.deps.Sessions.Current(); s != nil {
		email = s.Email
	}
	header := styleHeader().Render("My Projects") + "  " + styleMuted().Render(email)

	var body string
	switch {
	case m.loadingProjects:
		body = m.spin.View() + " " + styleMuted().Render("Loading projects…")
	case len(m.projectsList.Items()) == 0:
		body = strings.Join([]string{
			styleHeader().Render("No projects found"),
			styleMuted().Render("Press n to create your first project."),
		}, "\n")
	default:
		body = m.projectsList.View()
	}

	footer := styleMuted().Render("enter: open  n: new  D/P: new docx/pptx  /: filter  r: reload  L: log out  q: quit")
	return m.frame(header+"\n\n"+body, footer)
}
