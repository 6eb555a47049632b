package model

import (
	"strings"
	"time"
)

type ProjectType string

const (
	ProjectTypeDocx ProjectType = "docx"
	ProjectTypePptx ProjectType = "pptx"
)

func (t ProjectType) Valid() bool {
	return t == ProjectTypeDocx || t == ProjectTypePptx
}

// Extension returns the export file extension (without the dot).
func (t ProjectType) Extension() string { return string(t) }

func (t ProjectType) Label() string {
	if t == ProjectTypePptx {
		return "PowerPoint"
	}
	return "Word Document"
}

// SectionLabel is the user-facing name for a section of this document kind.
func (t ProjectType) SectionLabel() string {
	if t == ProjectTypePptx {
		return "slide"
	}
	return "section"
}

type Section struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	OrderIndex int    `json:"order_index"`
	Content    string `json:"content"`
}

type Project struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	ProjectType ProjectType `json:"project_type"`
	CreatedAt   time.Time   `json:"created_at"`
	Sections    []Section   `json:"sections"`
}

// Section returns a pointer into p.Sections for the given id, or nil.
func (p *Project) Section(id int) *Section {
	for i := range p.Sections {
		if p.Sections[i].ID == id {
			return &p.Sections[i]
		}
	}
	return nil
}

// SetSectionContent replaces one section's content in place. It reports
// whether a section with the given id existed.
func (p *Project) SetSectionContent(id int, content string) bool {
	s := p.Section(id)
	if s == nil {
		return false
	}
	s.Content = content
	return true
}

// ExportFileName is the suggested on-disk name for the exported document.
func (p Project) ExportFileName() string {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = "untitled"
	}
	return title + "." + p.ProjectType.Extension()
}

type Feedback struct {
	SectionID int    `json:"section_id"`
	IsLiked   *bool  `json:"is_liked,omitempty"`
	Comment   string `json:"comment,omitempty"`
}

// OutlineDraft is the ordered list of section titles assembled in the
// creation wizard. It is never persisted; project creation snapshots it.
type OutlineDraft struct {
	titles []string
}

// Append adds one title to the end. Blank titles are ignored; it reports
// whether the draft changed.
func (d *OutlineDraft) Append(title string) bool {
	title = strings.TrimSpace(title)
	if title == "" {
		return false
	}
	d.titles = append(d.titles, title)
	return true
}

// RemoveAt drops the title at index i; out-of-range indexes are a no-op.
func (d *OutlineDraft) RemoveAt(i int) bool {
	if i < 0 || i >= len(d.titles) {
		return false
	}
	d.titles = append(d.titles[:i], d.titles[i+1:]...)
	return true
}

// ReplaceAll swaps the entire list (AI Suggest semantics: full replace,
// never append).
func (d *OutlineDraft) ReplaceAll(titles []string) {
	d.titles = append([]string(nil), titles...)
}

// Titles returns a copy of the current list in order.
func (d *OutlineDraft) Titles() []string {
	return append([]string(nil), d.titles...)
}

func (d *OutlineDraft) Len() int    { return len(d.titles) }
func (d *OutlineDraft) Empty() bool { return len(d.titles) == 0 }
