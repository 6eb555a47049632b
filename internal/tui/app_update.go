package tui

import (
	"errors"
	"time"

	"docugen-cli/internal/api"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.seenWindowSize = true
		m.resize()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case watchdogTickMsg:
		if m.deps.Sessions.ExpireIfIdle(msg.now) {
			cmd := m.toast("Session expired after 15 minutes of inactivity.")
			m.forceLogin("")
			return m, tea.Batch(watchdogTick(), cmd)
		}
		return m, watchdogTick()

	case minibufferClearMsg:
		if msg.seq == m.minibufferSeq {
			m.minibufferText = ""
		}
		return m, nil

	case tea.KeyMsg:
		// Every keypress is user activity for the inactivity countdown.
		m.deps.Sessions.Activity(time.Now())
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tea.MouseMsg:
		// Pointer press/motion/wheel all count as activity; the views
		// themselves are keyboard-driven.
		m.deps.Sessions.Activity(time.Now())
		return m, nil

	case loginDoneMsg:
		return m.handleLoginDone(msg)
	case registerDoneMsg:
		return m.handleRegisterDone(msg)
	case projectsLoadedMsg:
		return m.handleProjectsLoaded(msg)
	case projectLoadedMsg:
		return m.handleProjectLoaded(msg)
	case outlineSuggestedMsg:
		return m.handleOutlineSuggested(msg)
	case projectCreatedMsg:
		return m.handleProjectCreated(msg)
	case refineDoneMsg:
		return m.handleRefineDone(msg)
	case commentSavedMsg:
		m.savingComment = false
		if msg.err != nil {
			return m, m.toast("Failed to save comment.")
		}
		return m, m.toast("Comment saved.")
	case feedbackSavedMsg:
		m.savingFeedback = false
		if msg.err != nil {
			return m, m.toast("Failed to send feedback.")
		}
		m.feedback = msg.value
		return m, nil
	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.deps.Log.Warn("export failed", zap.Error(msg.err))
			return m, m.toast("Export failed.")
		}
		return m, m.toast("Exported to " + msg.path)
	}

	// Route guard: authenticated views render only while a session exists.
	// Re-checked on every message, so a watchdog logout (or any other
	// session teardown) redirects on the very next cycle.
	if m.view != viewLogin && m.deps.Sessions.Current() == nil {
		m.forceLogin("")
		return m, nil
	}

	switch m.view {
	case viewLogin:
		return m.updateLogin(msg)
	case viewDashboard:
		return m.updateDashboard(msg)
	case viewWizard:
		return m.updateWizard(msg)
	case viewEditor:
		return m.updateEditor(msg)
	default:
		return m, nil
	}
}

func (m appModel) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	m.loggingIn = false
	if msg.err != nil {
		return m, m.toast("Error: " + api.Detail(msg.err, "Login Failed"))
	}
	m.passwordInput.SetValue("")
	m.view = viewDashboard
	m.loadingProjects = true
	return m, m.loadProjectsCmd()
}

func (m appModel) handleRegisterDone(msg registerDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.loggingIn = false
		return m, m.toast("Error: " + api.Detail(msg.err, "Registration Failed"))
	}
	// Auto-login after register; loggingIn stays set for the login call.
	cmd := m.toast("Registration successful! Logging you in…")
	return m, tea.Batch(cmd, m.loginCmd(msg.email, msg.password))
}

func (m appModel) handleProjectsLoaded(msg projectsLoadedMsg) (tea.Model, tea.Cmd) {
	m.loadingProjects = false
	if msg.err != nil {
		m.deps.Log.Warn("project list load failed", zap.Error(msg.err))
		return m, m.toast("Failed to load projects.")
	}
	m.projectsList.SetItems(projectListItems(msg.projects))
	return m, nil
}

func (m appModel) handleProjectLoaded(msg projectLoadedMsg) (tea.Model, tea.Cmd) {
	m.loadingProject = false
	if msg.err != nil {
		m.deps.Log.Warn("project load failed", zap.Error(msg.err))
		m.view = viewDashboard
		return m, m.toast("Failed to load project.")
	}
	project := msg.project
	m.project = &project
	m.activeSectionID = 0
	if len(project.Sections) > 0 {
		m.activeSectionID = project.Sections[0].ID
	}
	m.sectionsList.SetItems(sectionListItems(project.Sections, m.activeSectionID))
	m.sectionsList.Select(0)
	m.resetSectionTransients()
	return m, nil
}

func (m appModel) handleOutlineSuggested(msg outlineSuggestedMsg) (tea.Model, tea.Cmd) {
	m.suggesting = false
	if msg.err != nil {
		switch {
		case api.IsUnauthorized(msg.err):
			return m.wizardUnauthorized()
		case errors.Is(msg.err, api.ErrEmptyOutline):
			return m, m.toast("AI Suggestion returned no outline. Please try again.")
		default:
			m.deps.Log.Warn("outline suggestion failed", zap.Error(msg.err))
			return m, m.toast("AI Suggestion failed.")
		}
	}
	// Full replace, never append.
	m.outline.ReplaceAll(msg.titles)
	m.outlineSel = 0
	return m, nil
}

func (m appModel) handleProjectCreated(msg projectCreatedMsg) (tea.Model, tea.Cmd) {
	m.creating = false
	if msg.err != nil {
		if api.IsUnauthorized(msg.err) {
			return m.wizardUnauthorized()
		}
		m.deps.Log.Warn("project creation failed", zap.Error(msg.err))
		return m, m.toast("Failed to create project.")
	}
	// The create response already carries the sections; enter the editor
	// directly on it.
	m.openEditor()
	project := msg.project
	m.project = &project
	m.loadingProject = false
	if len(project.Sections) > 0 {
		m.activeSectionID = project.Sections[0].ID
	}
	m.sectionsList.SetItems(sectionListItems(project.Sections, m.activeSectionID))
	m.sectionsList.Select(0)
	return m, nil
}

// wizardUnauthorized handles an expired credential during wizard actions:
// notify and force navigation to login. Whether the session itself is also
// cleared is a policy choice (auth.clear_session_on_unauthorized).
func (m appModel) wizardUnauthorized() (tea.Model, tea.Cmd) {
	if m.deps.Config.Auth.ClearSessionOnUnauthorized {
		_ = m.deps.Sessions.Logout()
	}
	cmd := m.toast("Session expired. Please log in again.")
	m.forceLogin("")
	return m, cmd
}

func (m appModel) handleRefineDone(msg refineDoneMsg) (tea.Model, tea.Cmd) {
	m.refining = false
	if msg.err != nil {
		m.deps.Log.Warn("refine failed", zap.Error(msg.err))
		return m, m.toast("Refinement failed: " + api.Detail(msg.err, "Backend Error"))
	}
	if m.project != nil {
		m.project.SetSectionContent(msg.sectionID, msg.content)
	}
	m.refineInput.SetValue("")
	m.contentScroll = 0
	return m, nil
}

func (m *appModel) resize() {
	h := m.height - 8
	if h < 6 {
		h = 6
	}
	w := m.width
	if w < 40 {
		w = 40
	}
	m.projectsList.SetSize(w-4, h)
	m.sectionsList.SetSize(sidebarWidth, h)

	contentW := w - sidebarWidth - 6
	if contentW < 30 {
		contentW = 30
	}
	m.refineInput.Width = contentW - 4
	m.commentArea.SetWidth(contentW - 4)
}
