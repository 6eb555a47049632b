package tui

import (
	"fmt"
	"strings"

	"docugen-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.wizardStep {
	case stepChooseType:
		return m.updateWizardChooseType(msg)
	case stepDetails:
		return m.updateWizardDetails(msg)
	case stepOutline:
		return m.updateWizardOutline(msg)
	default:
		return m, nil
	}
}

func (m appModel) updateWizardChooseType(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "left", "right", "tab", "h", "l":
		m.typeChoice = (m.typeChoice + 1) % len(wizardTypes)
		return m, nil
	case "enter":
		m.docType = wizardTypes[m.typeChoice]
		m.wizardStep = stepDetails
		m.detailsFocus = detailsFocusTitle
		m.focusDetails()
		return m, nil
	case "esc":
		m.view = viewDashboard
		return m, nil
	}
	return m, nil
}

func (m appModel) updateWizardDetails(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}

	switch key.String() {
	case "tab", "shift+tab":
		if m.detailsFocus == detailsFocusTitle {
			m.detailsFocus = detailsFocusTopic
		} else {
			m.detailsFocus = detailsFocusTitle
		}
		m.focusDetails()
		return m, nil

	case "esc":
		// Backward transition only; never skips.
		m.wizardStep = stepChooseType
		m.titleInput.Blur()
		m.topicArea.Blur()
		return m, nil

	case "ctrl+n":
		// Forward transition is disabled while the topic is empty.
		if strings.TrimSpace(m.topicArea.Value()) == "" {
			return m, m.toast("Enter a topic first.")
		}
		m.wizardStep = stepOutline
		m.titleInput.Blur()
		m.topicArea.Blur()
		m.sectionInput.Focus()
		return m, nil

	case "enter":
		if m.detailsFocus == detailsFocusTitle {
			m.detailsFocus = detailsFocusTopic
			m.focusDetails()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.detailsFocus == detailsFocusTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.topicArea, cmd = m.topicArea.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateWizardOutline(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.wizardStep = stepDetails
		m.sectionInput.Blur()
		m.focusDetails()
		return m, nil

	case "up":
		if m.outlineSel > 0 {
			m.outlineSel--
		}
		return m, nil

	case "down":
		if m.outlineSel < m.outline.Len()-1 {
			m.outlineSel++
		}
		return m, nil

	case "enter":
		if m.outline.Append(m.sectionInput.Value()) {
			m.sectionInput.SetValue("")
			m.outlineSel = m.outline.Len() - 1
		}
		return m, nil

	case "ctrl+d":
		if m.outline.RemoveAt(m.outlineSel) && m.outlineSel >= m.outline.Len() && m.outlineSel > 0 {
			m.outlineSel--
		}
		return m, nil

	case "ctrl+s":
		if m.suggesting {
			return m, nil
		}
		m.suggesting = true
		return m, m.suggestOutlineCmd(strings.TrimSpace(m.topicArea.Value()), m.docType)

	case "ctrl+g":
		// Submission is disabled while the outline is empty.
		if m.creating {
			return m, nil
		}
		if m.outline.Empty() {
			return m, m.toast("Add at least one " + m.docType.SectionLabel() + " first.")
		}
		m.creating = true
		title := strings.TrimSpace(m.titleInput.Value())
		if title == "" {
			title = strings.TrimSpace(m.topicArea.Value())
		}
		return m, m.createProjectCmd(title, m.docType, m.outline.Titles())
	}

	var cmd tea.Cmd
	m.sectionInput, cmd = m.sectionInput.Update(msg)
	return m, cmd
}

func (m appModel) viewWizard() string {
	switch m.wizardStep {
	case stepChooseType:
		return m.viewWizardChooseType()
	case stepDetails:
		return m.viewWizardDetails()
	default:
		return m.viewWizardOutline()
	}
}

func (m appModel) viewWizardChooseType() string {
	cards := make([]string, 0, len(wizardTypes))
	for i, t := range wizardTypes {
		label := t.Label()
		if i == m.typeChoice {
			cards = append(cards, styleButton(true).Render("● "+label))
		} else {
			cards = append(cards, styleButton(false).Render("○ "+label))
		}
	}
	body := strings.Join([]string{
		styleHeader().Render("Choose Document Type"),
		styleMuted().Render("Select the type of document you want to create"),
		"",
		strings.Join(cards, "   "),
	}, "\n")
	footer := styleMuted().Render("←/→: choose  enter: next  esc: cancel")
	return m.frame(body, footer)
}

func (m appModel) viewWizardDetails() string {
	body := strings.Join([]string{
		styleHeader().Render("Configure Project") + "  " + typeBadge(m.docType),
		styleMuted().Render("Set up your project details"),
		"",
		"Project Name",
		m.titleInput.View(),
		"",
		"Main Topic / Prompt",
		m.topicArea.View(),
	}, "\n")

	next := "ctrl+n: next step"
	if strings.TrimSpace(m.topicArea.Value()) == "" {
		next = styleMuted().Render("ctrl+n: next step (topic required)")
	}
	footer := styleMuted().Render("tab: fields  " + next + "  esc: back")
	return m.frame(body, footer)
}

func (m appModel) viewWizardOutline() string {
	heading := "Section Headers"
	if m.docType == model.ProjectTypePptx {
		heading = "Slide Titles"
	}

	var rows []string
	for i, title := range m.outline.Titles() {
		row := fmt.Sprintf("%2d. %s", i+1, title)
		if i == m.outlineSel {
			row = styleButton(true).Render(row)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		rows = append(rows, styleMuted().Render("(no "+m.docType.SectionLabel()+"s yet — type a title and press enter, or ctrl+s for AI Suggest)"))
	}

	suggest := "ctrl+s: AI Suggest"
	if m.suggesting {
		suggest = m.spin.View() + " " + styleMuted().Render("suggesting…")
	}
	generate := "ctrl+g: Generate Content"
	if m.creating {
		generate = m.spin.View() + " " + styleMuted().Render("creating…")
	} else if m.outline.Empty() {
		generate = styleMuted().Render("ctrl+g: Generate Content (add a " + m.docType.SectionLabel() + " first)")
	}

	body := strings.Join([]string{
		styleHeader().Render("Structure & Outline") + "  " + typeBadge(m.docType),
		styleMuted().Render("Define the " + m.docType.SectionLabel() + "s for your document"),
		"",
		styleAccent().Render(heading),
		strings.Join(rows, "\n"),
		"",
		"Add  " + m.sectionInput.View(),
	}, "\n")

	footer := styleMuted().Render("enter: add  ↑/↓: select  ctrl+d: remove  " + suggest + "  " + generate + "  esc: back")
	return m.frame(body, footer)
}
