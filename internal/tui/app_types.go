package tui

import (
	"time"

	"docugen-cli/internal/model"
)

type view int

const (
	viewLogin view = iota
	viewDashboard
	viewWizard
	viewEditor
)

func viewToString(v view) string {
	switch v {
	case viewLogin:
		return "login"
	case viewDashboard:
		return "dashboard"
	case viewWizard:
		return "wizard"
	case viewEditor:
		return "editor"
	default:
		return "?"
	}
}

type wizardStep int

const (
	stepChooseType wizardStep = iota
	stepDetails
	stepOutline
)

type loginFocus int

const (
	loginFocusEmail loginFocus = iota
	loginFocusPassword
)

type detailsFocus int

const (
	detailsFocusTitle detailsFocus = iota
	detailsFocusTopic
)

type editorFocus int

const (
	editorFocusSections editorFocus = iota
	editorFocusRefine
	editorFocusComment
)

type feedbackState int

const (
	feedbackNone feedbackState = iota
	feedbackLike
	feedbackDislike
)

// Watchdog/minibuffer housekeeping.
type watchdogTickMsg struct{ now time.Time }

type minibufferClearMsg struct{ seq int }

// Backend call results. Every in-flight flag is cleared in the handler for
// its message, on success and on failure alike.
type loginDoneMsg struct{ err error }

type registerDoneMsg struct {
	email    string
	password string
	err      error
}

type projectsLoadedMsg struct {
	projects []model.Project
	err      error
}

type projectLoadedMsg struct {
	project model.Project
	err     error
}

type outlineSuggestedMsg struct {
	titles []string
	err    error
}

type projectCreatedMsg struct {
	project model.Project
	err     error
}

type refineDoneMsg struct {
	sectionID int
	content   string
	err       error
}

type commentSavedMsg struct{ err error }

type feedbackSavedMsg struct {
	value feedbackState
	err   error
}

type exportDoneMsg struct {
	path string
	err  error
}
