package tui

import (
	"context"
	"testing"
	"time"

	"docugen-cli/internal/api"
	"docugen-cli/internal/config"
	"docugen-cli/internal/model"
	"docugen-cli/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type staticAuth struct{ token string }

func (a staticAuth) Login(context.Context, string, string) (string, error) {
	return a.token, nil
}

// newTestDeps builds Deps over a temp credential store with a logged-in
// session, so the route guard lets the authenticated views run.
func newTestDeps(t *testing.T) Deps {
	t.Helper()
	mgr := session.NewManager(
		session.Store{Dir: t.TempDir()},
		staticAuth{token: "tok-1"},
		15*time.Minute,
		zap.NewNop(),
	)
	if err := mgr.Login(context.Background(), "user@example.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	cfg := config.Default()
	cfg.Export.Dir = t.TempDir()
	return Deps{
		Client:   api.New("http://127.0.0.1:1", time.Second, mgr.Token),
		Sessions: mgr,
		Config:   cfg,
		Log:      zap.NewNop(),
	}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func press(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(appModel)
	if !ok {
		t.Fatalf("Update returned %T, want appModel", next)
	}
	return out
}

func twoSectionProject() model.Project {
	return model.Project{
		ID:          7,
		Title:       "EV Market Analysis",
		ProjectType: model.ProjectTypeDocx,
		Sections: []model.Section{
			{ID: 41, Title: "Introduction", OrderIndex: 0, Content: "Intro text."},
			{ID: 42, Title: "Forecast", OrderIndex: 1, Content: "Forecast text."},
		},
	}
}
