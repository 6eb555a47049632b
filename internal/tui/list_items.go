package tui

import (
	"fmt"
	"io"
	"strings"

	"docugen-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type projectItem struct {
	project model.Project
}

func (i projectItem) FilterValue() string { return i.project.Title }
func (i projectItem) Title() string {
	badge := typeBadge(i.project.ProjectType)
	date := ""
	if !i.project.CreatedAt.IsZero() {
		date = "  " + i.project.CreatedAt.Format("2006-01-02")
	}
	return badge + " " + i.project.Title + styleMuted().Render(date)
}

func typeBadge(t model.ProjectType) string {
	switch t {
	case model.ProjectTypePptx:
		return stylePptxBadge().Render("PPTX")
	default:
		return styleDocxBadge().Render("DOCX")
	}
}

func projectListItems(projects []model.Project) []list.Item {
	items := make([]list.Item, 0, len(projects))
	for _, p := range projects {
		items = append(items, projectItem{project: p})
	}
	return items
}

type sectionItem struct {
	section model.Section
	active  bool
}

func (i sectionItem) FilterValue() string { return i.section.Title }
func (i sectionItem) Title() string {
	if i.active {
		return "› " + i.section.Title
	}
	return "  " + i.section.Title
}

func sectionListItems(sections []model.Section, activeID int) []list.Item {
	items := make([]list.Item, 0, len(sections))
	for _, s := range sections {
		items = append(items, sectionItem{section: s, active: s.ID == activeID})
	}
	return items
}

type compactItemDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
}

func newCompactItemDelegate() compactItemDelegate {
	return compactItemDelegate{
		normal: lipgloss.NewStyle(),
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
	}
}

func (d compactItemDelegate) Height() int  { return 1 }
func (d compactItemDelegate) Spacing() int { return 0 }
func (d compactItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d compactItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		fmt.Fprint(w, "")
		return
	}

	style := d.normal
	if index == m.Index() {
		style = d.selected
	}

	txt := ""
	if t, ok := item.(interface{ Title() string }); ok {
		txt = t.Title()
	} else {
		txt = fmt.Sprint(item)
	}

	line := txt
	lineW := xansi.StringWidth(line)
	if lineW < contentW {
		line += strings.Repeat(" ", contentW-lineW)
	} else if lineW > contentW {
		line = xansi.Cut(line, 0, contentW)
	}

	fmt.Fprint(w, style.Render(line))
}

func newList(title string, items []list.Item) list.Model {
	l := list.New(items, newCompactItemDelegate(), 0, 0)
	l.Title = title
	// We render our own header/footer, so keep the list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("ctrl+c")
	// Emacs-style navigation aliases.
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}
