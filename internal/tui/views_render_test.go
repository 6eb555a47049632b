package tui

import (
	"strings"
	"testing"

	"docugen-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

func plainView(m appModel) string {
	return xansi.Strip(m.View())
}

func TestView_LoginScreenShowsModeToggle(t *testing.T) {
	deps := newTestDeps(t)
	_ = deps.Sessions.Logout()
	m := newAppModel(deps)

	out := plainView(m)
	if !strings.Contains(out, "Welcome Back") {
		t.Fatalf("expected sign-in heading, got:\n%s", out)
	}

	m = press(t, m, key(tea.KeyCtrlR))
	out = plainView(m)
	if !strings.Contains(out, "Create Account") {
		t.Fatalf("expected sign-up heading after toggle, got:\n%s", out)
	}
}

func TestView_DashboardEmptyState(t *testing.T) {
	m := newAppModel(newTestDeps(t))
	m = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = press(t, m, projectsLoadedMsg{projects: nil})

	out := plainView(m)
	if !strings.Contains(out, "No projects found") {
		t.Fatalf("expected empty state, got:\n%s", out)
	}
	if !strings.Contains(out, "user@example.com") {
		t.Fatalf("expected session email in header, got:\n%s", out)
	}
}

func TestView_DashboardListsProjects(t *testing.T) {
	m := newAppModel(newTestDeps(t))
	m = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = press(t, m, projectsLoadedMsg{projects: []model.Project{
		{ID: 1, Title: "EV Report", ProjectType: model.ProjectTypeDocx},
		{ID: 2, Title: "Sales Deck", ProjectType: model.ProjectTypePptx},
	}})

	out := plainView(m)
	for _, want := range []string{"EV Report", "Sales Deck", "DOCX", "PPTX"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in dashboard, got:\n%s", want, out)
		}
	}
}

func TestView_WizardOutlineShowsSlideWordingForPptx(t *testing.T) {
	m := newAppModel(newTestDeps(t))
	m = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m.startWizard(model.ProjectTypePptx)
	m.topicArea.SetValue("topic")
	m = press(t, m, key(tea.KeyCtrlN))

	out := plainView(m)
	if !strings.Contains(out, "Slide Titles") {
		t.Fatalf("expected slide wording for pptx, got:\n%s", out)
	}
}

func TestView_EditorShowsSectionsAndContent(t *testing.T) {
	m := newAppModel(newTestDeps(t))
	m = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = openTestEditor(t, m)

	out := plainView(m)
	for _, want := range []string{"EV Market Analysis", "Introduction", "Forecast", "Intro text."} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in editor view, got:\n%s", want, out)
		}
	}
}
