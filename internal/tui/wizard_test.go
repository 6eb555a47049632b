package tui

import (
	"errors"
	"reflect"
	"testing"

	"docugen-cli/internal/api"
	"docugen-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func TestWizard_TypeChoiceThenDetails(t *testing.T) {
	m := newAppModel(newTestDeps(t))
	m.startWizard("")
	if m.wizardStep != stepChooseType {
		t.Fatalf("expected stepChooseType, got %v", m.wizardStep)
	}

	m = press(t, m, key(tea.KeyRight))
	if m.typeChoice != 1 {
		t.Fatalf("expected typeChoice=1, got %d", m.typeChoice)
	}

	m = press(t, m, key(tea.KeyEnter))
	if m.wizardStep != stepDetails {
		t.Fatalf("expected stepDetails, got %v", m.wizardStep)
	}
	if m.docType != model.ProjectTypePptx {
		t.Fatalf("expected pptx, got %q", m.docType)
	}
}

func TestWizard_SeededEntrySkipsTypeStep(t *testing.T) {
	m := newAppModel(newTestDeps(t))
	m.startWizard(model.ProjectTypeDocx)
	if m.wizardStep != stepDetails {
		t.Fatalf("expected stepDetails, got %v", m.wizardStep)
	}
	if m.docType != model.ProjectTypeDocx {
		t.Fatalf("expected docx, got %q", m.docType)
	}
}

func TestWizard_ForwardBlockedUntilTopicNonEmpty(t *testing.T) {
	m := newAppModel(newTestDeps(t))
	m.startWizard(model.ProjectTypeDocx)

	m.topicArea.SetValue("   ")
	m = press(t, m, key(tea.KeyCtrlN))
	if m.wizardStep != stepDetails {
		t.Fatalf("whitespace topic must not advance, got %v", m.wizardStep)
	}
	if m.minibufferText == "" {
		t.Fatal("expected a notice explaining the blocked transition")
	}

	m.topicArea.SetValue("EV market in 2025")
	m = press(t, m, key(tea.KeyCtrlN))
	if m.wizardStep != stepOutline {
		t.Fatalf("expected stepOutline, got %v", m.wizardStep)
	}
}

func TestWizard_EscNeverSkipsSteps(t *testing.T) {
	m := newAppModel(newTestDeps(t))
	m.startWizard(model.ProjectTypeDocx)
	m.topicArea.SetValue("topic")
	m = press(t, m, key(tea.KeyCtrlN))

	m = press(t, m, key(tea.KeyEsc))
	if m.wizardStep != stepDetails {
		t.Fatalf("expected stepDetails after esc, got %v", m.wizardStep)
	}
	m = press(t, m, key(tea.KeyEsc))
	if m.wizardStep != stepChooseType {
		t.Fatalf("expected stepChooseType after esc, got %v", m.wizardStep)
	}
}

func TestWizard_OutlineAddBlankIgnoredAndRemove(t *testing.T) {
	m := newAppModel(newTestDeps(t))
	m.startWizard(model.ProjectTypeDocx)
	m.topicArea.SetValue("topic")
	m = press(t, m, key(tea.KeyCtrlN))

	m.sectionInput.SetValue("  ")
	m = press(t, m, key(tea.KeyEnter))
	if m.outline.Len() != 0 {
		t.Fatalf("blank title must be ignored, got %d entries", m.outline.Len())
	}

	m.sectionInput.SetValue("Introduction")
	m = press(t, m, key(tea.KeyEnter))
	m.sectionInput.SetValue("Forecast")
	m = press(t, m, key(tea.KeyEnter))
	if got := m.outline.Titles(); !reflect.DeepEqual(got, []string{"Introduction", "Forecast"}) {
		t.Fatalf("unexpected outline %v", got)
	}
	if m.sectionInput.Value() != "" {
		t.Fatal("input should clear after add")
	}

	m = press(t, m, key(tea.KeyCtrlD))
	if got := m.outline.Titles(); !reflect.DeepEqual(got, []string{"Introduction"}) {
		t.Fatalf("expected remove of selected entry, got %v", got)
	}
	if m.outlineSel != 0 {
		t.Fatalf("selection should clamp, got %d", m.outlineSel)
	}
}

func TestWizard_SubmitBlockedOnEmptyOutline(t *testing.T) {
	m := newAppModel(newTestDeps(t))
	m.startWizard(model.ProjectTypeDocx)
	m.topicArea.SetValue("topic")
	m = press(t, m, key(tea.KeyCtrlN))

	m = press(t, m, key(tea.KeyCtrlG))
	if m.creating {
		t.Fatal("empty outline must not start creation")
	}
	if m.minibufferText == "" {
		t.Fatal("expected a notice for the blocked submit")
	}

	m.sectionInput.SetValue("Introduction")
	m = press(t, m, key(tea.KeyEnter))
	m = press(t, m, key(tea.KeyCtrlG))
	if !m.creating {
		t.Fatal("non-empty outline should start creation")
	}
}

func TestWizard_SuggestReplacesOutlineWholesale(t *testing.T) {
	m := newAppModel(newTestDeps(t))
	m.startWizard(model.ProjectTypeDocx)
	m.topicArea.SetValue("topic")
	m = press(t, m, key(tea.KeyCtrlN))
	m.outline.ReplaceAll([]string{"Old A", "Old B"})
	m.outlineSel = 1
	m.suggesting = true

	m = press(t, m, outlineSuggestedMsg{titles: []string{"New 1", "New 2", "New 3"}})
	if m.suggesting {
		t.Fatal("suggesting flag should clear")
	}
	if got := m.outline.Titles(); !reflect.DeepEqual(got, []string{"New 1", "New 2", "New 3"}) {
		t.Fatalf("suggestion must replace, not merge: %v", got)
	}
	if m.outlineSel != 0 {
		t.Fatalf("selection should reset, got %d", m.outlineSel)
	}
}

func TestWizard_EmptySuggestionKeepsOutline(t *testing.T) {
	m := newAppModel(newTestDeps(t))
	m.startWizard(model.ProjectTypeDocx)
	m.topicArea.SetValue("topic")
	m = press(t, m, key(tea.KeyCtrlN))
	m.outline.ReplaceAll([]string{"Keep me"})
	m.suggesting = true

	m = press(t, m, outlineSuggestedMsg{err: api.ErrEmptyOutline})
	if got := m.outline.Titles(); !reflect.DeepEqual(got, []string{"Keep me"}) {
		t.Fatalf("empty suggestion must leave outline unchanged: %v", got)
	}
	if m.minibufferText == "" {
		t.Fatal("expected a notification for the empty suggestion")
	}
	if m.suggesting {
		t.Fatal("suggesting flag should clear")
	}
}

func TestWizard_CreatedProjectOpensEditorDirectly(t *testing.T) {
	m := newAppModel(newTestDeps(t))
	m.startWizard(model.ProjectTypeDocx)
	m.creating = true

	m = press(t, m, projectCreatedMsg{project: twoSectionProject()})
	if m.view != viewEditor {
		t.Fatalf("expected editor, got %v", viewToString(m.view))
	}
	if m.project == nil || m.project.ID != 7 {
		t.Fatal("expected created project to be loaded")
	}
	if m.activeSectionID != 41 {
		t.Fatalf("expected first section active, got %d", m.activeSectionID)
	}
	if m.loadingProject {
		t.Fatal("create response already carries sections; no extra load")
	}
}

func TestWizard_CreateFailureStaysInWizard(t *testing.T) {
	m := newAppModel(newTestDeps(t))
	m.startWizard(model.ProjectTypeDocx)
	m.creating = true

	m = press(t, m, projectCreatedMsg{err: errors.New("boom")})
	if m.view != viewWizard {
		t.Fatalf("expected wizard, got %v", viewToString(m.view))
	}
	if m.creating {
		t.Fatal("creating flag should clear on failure")
	}
}
