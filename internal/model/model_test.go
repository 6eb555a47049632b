package model

import "testing"

func TestOutlineDraft_AppendIgnoresBlank(t *testing.T) {
	var d OutlineDraft
	if d.Append("   ") {
		t.Fatalf("expected blank append to be ignored")
	}
	if !d.Append("  Introduction ") {
		t.Fatalf("expected append to succeed")
	}
	got := d.Titles()
	if len(got) != 1 || got[0] != "Introduction" {
		t.Fatalf("unexpected titles: %v", got)
	}
}

func TestOutlineDraft_RemoveAt(t *testing.T) {
	var d OutlineDraft
	d.ReplaceAll([]string{"A", "B", "C"})

	if d.RemoveAt(3) || d.RemoveAt(-1) {
		t.Fatalf("out-of-range remove must be a no-op")
	}
	if !d.RemoveAt(1) {
		t.Fatalf("expected remove at 1 to succeed")
	}
	got := d.Titles()
	if len(got) != 2 || got[0] != "A" || got[1] != "C" {
		t.Fatalf("unexpected titles after remove: %v", got)
	}
}

func TestOutlineDraft_ReplaceAllIsFullReplace(t *testing.T) {
	var d OutlineDraft
	d.Append("Old")
	d.ReplaceAll([]string{"A", "B"})

	got := d.Titles()
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Fatalf("expected full replace, got %v", got)
	}

	// The draft must own its backing slice.
	src := []string{"X"}
	d.ReplaceAll(src)
	src[0] = "mutated"
	if d.Titles()[0] != "X" {
		t.Fatalf("draft aliased caller slice")
	}
}

func TestProject_SetSectionContent(t *testing.T) {
	p := Project{
		ID:          1,
		Title:       "Report",
		ProjectType: ProjectTypeDocx,
		Sections: []Section{
			{ID: 1, Title: "Intro", Content: "old"},
			{ID: 2, Title: "Body", Content: "keep"},
		},
	}

	if !p.SetSectionContent(1, "new") {
		t.Fatalf("expected section 1 to exist")
	}
	if p.Sections[0].Content != "new" {
		t.Fatalf("section 1 content not replaced: %q", p.Sections[0].Content)
	}
	if p.Sections[1].Content != "keep" {
		t.Fatalf("section 2 content must be untouched: %q", p.Sections[1].Content)
	}
	if p.SetSectionContent(99, "x") {
		t.Fatalf("unknown section id must report false")
	}
}

func TestProject_ExportFileName(t *testing.T) {
	p := Project{Title: "Q4 Analysis", ProjectType: ProjectTypePptx}
	if got := p.ExportFileName(); got != "Q4 Analysis.pptx" {
		t.Fatalf("unexpected export name: %q", got)
	}
	p = Project{Title: "  ", ProjectType: ProjectTypeDocx}
	if got := p.ExportFileName(); got != "untitled.docx" {
		t.Fatalf("unexpected export name for blank title: %q", got)
	}
}
