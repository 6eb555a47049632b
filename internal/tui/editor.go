package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 28

func (m appModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}

	if m.loadingProject {
		if s := key.String(); s == "esc" || s == "q" {
			return m.leaveEditor()
		}
		return m, nil
	}

	if key.String() == "tab" {
		m.cycleEditorFocus()
		return m, nil
	}

	switch m.editorFocus {
	case editorFocusRefine:
		return m.updateEditorRefine(key)
	case editorFocusComment:
		return m.updateEditorComment(key)
	default:
		return m.updateEditorSections(key)
	}
}

func (m appModel) updateEditorSections(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc", "q":
		return m.leaveEditor()

	case "enter":
		item, ok := m.sectionsList.SelectedItem().(sectionItem)
		if !ok || item.section.ID == m.activeSectionID {
			return m, nil
		}
		m.activeSectionID = item.section.ID
		m.resetSectionTransients()
		if m.project != nil {
			m.sectionsList.SetItems(sectionListItems(m.project.Sections, m.activeSectionID))
		}
		return m, nil

	case "e":
		if m.exporting || m.project == nil {
			return m, nil
		}
		m.exporting = true
		return m, m.exportCmd(*m.project)

	case "l":
		return m.sendFeedback(feedbackLike)

	case "x":
		return m.sendFeedback(feedbackDislike)

	case "pgdown", "ctrl+v":
		m.contentScroll += m.contentHeight() / 2
		return m, nil

	case "pgup":
		m.contentScroll -= m.contentHeight() / 2
		if m.contentScroll < 0 {
			m.contentScroll = 0
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.sectionsList, cmd = m.sectionsList.Update(key)
	return m, cmd
}

func (m appModel) updateEditorRefine(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.editorFocus = editorFocusSections
		m.refineInput.Blur()
		return m, nil

	case "enter":
		sec := m.activeSection()
		prompt := strings.TrimSpace(m.refineInput.Value())
		if m.refining || sec == nil || prompt == "" {
			return m, nil
		}
		m.refining = true
		return m, m.refineCmd(sec.ID, prompt, sec.Content)
	}

	var cmd tea.Cmd
	m.refineInput, cmd = m.refineInput.Update(key)
	return m, cmd
}

func (m appModel) updateEditorComment(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.editorFocus = editorFocusSections
		m.commentArea.Blur()
		return m, nil

	case "ctrl+s":
		sec := m.activeSection()
		comment := strings.TrimSpace(m.commentArea.Value())
		if m.savingComment || sec == nil || comment == "" {
			return m, nil
		}
		m.savingComment = true
		return m, m.saveCommentCmd(sec.ID, comment)
	}

	var cmd tea.Cmd
	m.commentArea, cmd = m.commentArea.Update(key)
	return m, cmd
}

func (m appModel) sendFeedback(value feedbackState) (tea.Model, tea.Cmd) {
	sec := m.activeSection()
	if m.savingFeedback || sec == nil {
		return m, nil
	}
	m.savingFeedback = true
	// Any comment text rides along with the rating.
	return m, m.sendFeedbackCmd(sec.ID, value, strings.TrimSpace(m.commentArea.Value()))
}

func (m *appModel) cycleEditorFocus() {
	switch m.editorFocus {
	case editorFocusSections:
		m.editorFocus = editorFocusRefine
		m.refineInput.Focus()
	case editorFocusRefine:
		m.editorFocus = editorFocusComment
		m.refineInput.Blur()
		m.commentArea.Focus()
	default:
		m.editorFocus = editorFocusSections
		m.commentArea.Blur()
	}
}

func (m appModel) leaveEditor() (tea.Model, tea.Cmd) {
	m.view = viewDashboard
	m.project = nil
	m.refineInput.Blur()
	m.commentArea.Blur()
	m.editorFocus = editorFocusSections
	m.loadingProjects = true
	return m, m.loadProjectsCmd()
}

func (m appModel) contentWidth() int {
	w := m.width - sidebarWidth - 6
	if w < 30 {
		w = 30
	}
	return w
}

func (m appModel) contentHeight() int {
	h := m.height - 14
	if h < 4 {
		h = 4
	}
	return h
}

func (m appModel) viewEditor() string {
	if m.loadingProject || m.project == nil {
		body := m.spin.View() + " " + styleMuted().Render("Loading project…")
		return m.frame(body, styleMuted().Render("esc: back"))
	}

	header := styleHeader().Render(m.project.Title) + "  " + typeBadge(m.project.ProjectType)
	if m.exporting {
		header += "  " + m.spin.View() + styleMuted().Render(" exporting…")
	}

	sidebar := lipgloss.NewStyle().Width(sidebarWidth).Render(
		styleAccent().Render("Sections") + "\n" + m.sectionsList.View(),
	)

	content := m.viewSectionContent()
	pane := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", content)

	body := header + "\n\n" + pane
	return m.frame(body, m.editorFooter())
}

func (m appModel) viewSectionContent() string {
	contentW := m.contentWidth()
	sec := m.activeSection()
	if sec == nil {
		return styleMuted().Render("This project has no " + m.project.ProjectType.SectionLabel() + "s.")
	}

	title := styleAccent().Render(sec.Title) + "  " + m.feedbackIndicator()

	rendered := renderMarkdown(sec.Content, contentW)
	lines := strings.Split(rendered, "\n")
	scroll := m.contentScroll
	if scroll > len(lines)-1 {
		scroll = len(lines) - 1
	}
	if scroll < 0 {
		scroll = 0
	}
	visible := lines[scroll:]
	if max := m.contentHeight(); len(visible) > max {
		visible = visible[:max]
	}

	refine := "Refine  " + m.refineInput.View()
	if m.refining {
		refine = m.spin.View() + " " + styleMuted().Render("refining…")
	}

	comment := "Comment\n" + m.commentArea.View()
	if m.savingComment {
		comment = m.spin.View() + " " + styleMuted().Render("saving comment…")
	}

	return lipgloss.NewStyle().Width(contentW).Render(strings.Join([]string{
		title,
		"",
		strings.Join(visible, "\n"),
		"",
		refine,
		"",
		comment,
	}, "\n"))
}

func (m appModel) feedbackIndicator() string {
	if m.savingFeedback {
		return m.spin.View()
	}
	switch m.feedback {
	case feedbackLike:
		return stylePositive().Render("▲ liked")
	case feedbackDislike:
		return styleNegative().Render("▼ disliked")
	default:
		return styleMuted().Render("l: like  x: dislike")
	}
}

func (m appModel) editorFooter() string {
	switch m.editorFocus {
	case editorFocusRefine:
		return styleMuted().Render("enter: refine with AI  tab: next pane  esc: sections")
	case editorFocusComment:
		return styleMuted().Render("ctrl+s: save comment  tab: next pane  esc: sections")
	default:
		return styleMuted().Render("↑/↓: sections  enter: switch  e: export  l/x: rate  tab: refine  pgup/pgdn: scroll  q: dashboard")
	}
}
