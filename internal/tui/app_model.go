package tui

import (
	"time"

	"docugen-cli/internal/api"
	"docugen-cli/internal/config"
	"docugen-cli/internal/model"
	"docugen-cli/internal/session"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"go.uber.org/zap"
)

// Deps are the long-lived collaborators injected into the TUI. The app model
// itself holds only view state.
type Deps struct {
	Client   *api.Client
	Sessions *session.Manager
	Config   config.Config
	Log      *zap.Logger
}

type appModel struct {
	deps Deps

	width  int
	height int
	// We treat the very first WindowSizeMsg as "initial sizing" rather than
	// a user-driven resize.
	seenWindowSize bool

	view view

	// Login form. registerMode switches the same form between sign-in and
	// sign-up (register then auto-login).
	emailInput    textinput.Model
	passwordInput textinput.Model
	loginFocus    loginFocus
	registerMode  bool
	loggingIn     bool

	// Dashboard.
	projectsList    list.Model
	loadingProjects bool

	// Creation wizard.
	wizardStep   wizardStep
	typeChoice   int // index into wizardTypes
	docType      model.ProjectType
	titleInput   textinput.Model
	topicArea    textarea.Model
	detailsFocus detailsFocus
	outline      model.OutlineDraft
	outlineSel   int
	sectionInput textinput.Model
	suggesting   bool
	creating     bool

	// Editor. The project's section slice is the single source of truth;
	// activeSectionID is a derived lookup into it.
	project         *model.Project
	activeSectionID int
	loadingProject  bool
	sectionsList    list.Model
	editorFocus     editorFocus
	refineInput     textinput.Model
	commentArea     textarea.Model
	feedback        feedbackState
	refining        bool
	savingComment   bool
	savingFeedback  bool
	exporting       bool
	contentScroll   int

	spin spinner.Model

	minibufferText string
	minibufferSeq  int
}

var wizardTypes = []model.ProjectType{model.ProjectTypeDocx, model.ProjectTypePptx}

func newAppModel(deps Deps) appModel {
	m := appModel{
		deps: deps,
		view: viewLogin,
	}
	if deps.Sessions.Current() != nil {
		m.view = viewDashboard
		m.loadingProjects = true
	}

	m.emailInput = textinput.New()
	m.emailInput.Placeholder = "name@company.com"
	m.emailInput.CharLimit = 120
	m.emailInput.Width = 40
	m.emailInput.Focus()

	m.passwordInput = textinput.New()
	m.passwordInput.Placeholder = "password"
	m.passwordInput.EchoMode = textinput.EchoPassword
	m.passwordInput.CharLimit = 120
	m.passwordInput.Width = 40

	m.projectsList = newList("Projects", []list.Item{})
	m.projectsList.SetFilteringEnabled(true)
	m.projectsList.SetShowFilter(true)

	m.titleInput = textinput.New()
	m.titleInput.Placeholder = "e.g. Q4 Market Analysis"
	m.titleInput.CharLimit = 200
	m.titleInput.Width = 56

	m.topicArea = textarea.New()
	m.topicArea.Placeholder = "e.g. A comprehensive market analysis of the EV industry in 2025…"
	m.topicArea.CharLimit = 0
	m.topicArea.SetWidth(56)
	m.topicArea.SetHeight(4)
	m.topicArea.ShowLineNumbers = false

	m.sectionInput = textinput.New()
	m.sectionInput.Placeholder = "Add section header…"
	m.sectionInput.CharLimit = 200
	m.sectionInput.Width = 48

	m.sectionsList = newList("Sections", []list.Item{})

	m.refineInput = textinput.New()
	m.refineInput.Placeholder = "Tell AI how to improve this section…"
	m.refineInput.CharLimit = 500
	m.refineInput.Width = 60

	m.commentArea = textarea.New()
	m.commentArea.Placeholder = "Add notes or comments about this section…"
	m.commentArea.CharLimit = 0
	m.commentArea.SetWidth(60)
	m.commentArea.SetHeight(3)
	m.commentArea.ShowLineNumbers = false

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot

	return m
}

// activeSection resolves the active section pointer from the project slice.
// Deriving it (rather than mirroring a copy) makes the refine dual-write
// invariant hold by construction.
func (m *appModel) activeSection() *model.Section {
	if m.project == nil {
		return nil
	}
	return m.project.Section(m.activeSectionID)
}

// startWizard resets wizard state. A pre-seeded type skips straight to the
// details step; that shortcut entry is intentional.
func (m *appModel) startWizard(seeded model.ProjectType) {
	m.view = viewWizard
	m.outline = model.OutlineDraft{}
	m.outlineSel = 0
	m.titleInput.SetValue("")
	m.topicArea.SetValue("")
	m.sectionInput.SetValue("")
	m.suggesting = false
	m.creating = false
	m.detailsFocus = detailsFocusTitle
	if seeded.Valid() {
		m.docType = seeded
		m.typeChoice = typeIndex(seeded)
		m.wizardStep = stepDetails
		m.focusDetails()
		return
	}
	m.docType = model.ProjectTypeDocx
	m.typeChoice = 0
	m.wizardStep = stepChooseType
}

func typeIndex(t model.ProjectType) int {
	for i, cand := range wizardTypes {
		if cand == t {
			return i
		}
	}
	return 0
}

// openEditor switches to the editor and kicks off the project load.
func (m *appModel) openEditor() {
	m.view = viewEditor
	m.project = nil
	m.activeSectionID = 0
	m.loadingProject = true
	m.editorFocus = editorFocusSections
	m.resetSectionTransients()
	m.refining = false
	m.savingComment = false
	m.savingFeedback = false
	m.exporting = false
}

// resetSectionTransients clears the per-section comment/feedback state.
// Called on every active-section switch so nothing leaks across sections.
func (m *appModel) resetSectionTransients() {
	m.commentArea.SetValue("")
	m.feedback = feedbackNone
	m.refineInput.SetValue("")
	m.contentScroll = 0
}

// forceLogin drops back to the unauthenticated entry view. The last known
// email is pre-filled when a session record is still around.
func (m *appModel) forceLogin(notice string) {
	m.view = viewLogin
	m.registerMode = false
	m.loggingIn = false
	m.passwordInput.SetValue("")
	m.loginFocus = loginFocusEmail
	m.emailInput.Focus()
	m.passwordInput.Blur()
	if s := m.deps.Sessions.Current(); s != nil {
		m.emailInput.SetValue(s.Email)
	}
	if notice != "" {
		m.minibufferText = notice
	}
}

func (m *appModel) focusDetails() {
	if m.detailsFocus == detailsFocusTitle {
		m.titleInput.Focus()
		m.topicArea.Blur()
	} else {
		m.titleInput.Blur()
		m.topicArea.Focus()
	}
}

func (m appModel) watchdogDeadlineHint() string {
	deadline, armed := m.deps.Sessions.Deadline()
	if !armed {
		return ""
	}
	left := time.Until(deadline).Round(time.Minute)
	if left < time.Minute {
		return "<1m"
	}
	return left.String()
}
