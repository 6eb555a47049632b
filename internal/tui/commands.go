package tui

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"docugen-cli/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// Backend calls run as bubbletea commands: each suspends only the logical
// operation that issued it, guarded by its per-action in-flight flag in the
// model. None of them are cancellable once issued.

func (m appModel) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		return loginDoneMsg{err: m.deps.Sessions.Login(context.Background(), email, password)}
	}
}

func (m appModel) registerCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		err := m.deps.Client.Register(context.Background(), email, password)
		return registerDoneMsg{email: email, password: password, err: err}
	}
}

func (m appModel) loadProjectsCmd() tea.Cmd {
	return func() tea.Msg {
		projects, err := m.deps.Client.ListProjects(context.Background())
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

func (m appModel) loadProjectCmd(id int) tea.Cmd {
	return func() tea.Msg {
		project, err := m.deps.Client.GetProject(context.Background(), id)
		return projectLoadedMsg{project: project, err: err}
	}
}

func (m appModel) suggestOutlineCmd(topic string, projectType model.ProjectType) tea.Cmd {
	return func() tea.Msg {
		titles, err := m.deps.Client.SuggestOutline(context.Background(), topic, projectType)
		return outlineSuggestedMsg{titles: titles, err: err}
	}
}

func (m appModel) createProjectCmd(title string, projectType model.ProjectType, sectionTitles []string) tea.Cmd {
	return func() tea.Msg {
		project, err := m.deps.Client.CreateProject(context.Background(), title, projectType, sectionTitles)
		return projectCreatedMsg{project: project, err: err}
	}
}

func (m appModel) refineCmd(sectionID int, prompt, content string) tea.Cmd {
	return func() tea.Msg {
		newContent, err := m.deps.Client.RefineSection(context.Background(), sectionID, prompt, content)
		return refineDoneMsg{sectionID: sectionID, content: newContent, err: err}
	}
}

func (m appModel) saveCommentCmd(sectionID int, comment string) tea.Cmd {
	return func() tea.Msg {
		fb := model.Feedback{SectionID: sectionID, Comment: comment}
		return commentSavedMsg{err: m.deps.Client.SubmitFeedback(context.Background(), fb)}
	}
}

func (m appModel) sendFeedbackCmd(sectionID int, value feedbackState, comment string) tea.Cmd {
	return func() tea.Msg {
		liked := value == feedbackLike
		fb := model.Feedback{SectionID: sectionID, IsLiked: &liked, Comment: comment}
		return feedbackSavedMsg{value: value, err: m.deps.Client.SubmitFeedback(context.Background(), fb)}
	}
}

// exportCmd downloads the rendered document and writes it into the export
// dir. Nothing is written when the download fails.
func (m appModel) exportCmd(project model.Project) tea.Cmd {
	dir := m.deps.Config.Export.Dir
	return func() tea.Msg {
		data, err := m.deps.Client.ExportProject(context.Background(), project.ID)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		path := filepath.Join(dir, project.ExportFileName())
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

// toast shows a transient minibuffer notification. The sequence number keeps
// an old clear timer from wiping a newer message.
func (m *appModel) toast(text string) tea.Cmd {
	m.minibufferText = text
	m.minibufferSeq++
	seq := m.minibufferSeq
	return tea.Tick(minibufferClearDelay, func(time.Time) tea.Msg {
		return minibufferClearMsg{seq: seq}
	})
}
