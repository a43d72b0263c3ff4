package tui

import (
	"strings"
	"testing"

	"github.com/alwaysganesh09/teamtitans06/pkg/domain"
)

func typeText(m formModel, s string) formModel {
	for _, r := range s {
		m, _ = m.Update(keyMsg(string(r)))
	}
	return m
}

func TestFormTypingAndFocus(t *testing.T) {
	m := newFormModel(domain.Resources, nil)
	m = typeText(m, "Go docs")
	if got := m.values["title"]; got != "Go docs" {
		t.Errorf("title = %q", got)
	}

	m, _ = m.Update(keyMsg("tab"))
	if m.fields[m.focus].Name != "description" {
		t.Fatalf("focus = %s, want description", m.fields[m.focus].Name)
	}
	m = typeText(m, "line one")
	m, _ = m.Update(keyMsg("enter"))
	m = typeText(m, "two")
	if got := m.values["description"]; got != "line one\ntwo" {
		t.Errorf("description = %q, want newline kept", got)
	}

	m, _ = m.Update(keyMsg("backspace"))
	if got := m.values["description"]; got != "line one\ntw" {
		t.Errorf("after backspace = %q", got)
	}

	m, _ = m.Update(keyMsg("shift+tab"))
	if m.fields[m.focus].Name != "title" {
		t.Errorf("shift+tab focus = %s, want title", m.fields[m.focus].Name)
	}
}

func TestFormSelectCycles(t *testing.T) {
	m := newFormModel(domain.Resources, nil)
	for m.fields[m.focus].Name != "category" {
		m, _ = m.Update(keyMsg("tab"))
	}
	if got := m.values["category"]; got != "frontend" {
		t.Fatalf("default category = %q", got)
	}
	m, _ = m.Update(keyMsg("l"))
	if got := m.values["category"]; got != "backend" {
		t.Errorf("after l = %q, want backend", got)
	}
	m, _ = m.Update(keyMsg("h"))
	m, _ = m.Update(keyMsg("h"))
	if got := m.values["category"]; got != "documentation" {
		t.Errorf("after h h = %q, want wrap to documentation", got)
	}
	m = typeText(m, "zzz")
	if got := m.values["category"]; got != "documentation" {
		t.Errorf("typing changed a select to %q", got)
	}
}

func TestCycleOption(t *testing.T) {
	opts := []string{"a", "b", "c"}
	tests := []struct {
		current string
		forward bool
		want    string
	}{
		{"a", true, "b"},
		{"c", true, "a"},
		{"a", false, "c"},
		{"unknown", true, "b"},
	}
	for _, tc := range tests {
		if got := cycleOption(opts, tc.current, tc.forward); got != tc.want {
			t.Errorf("cycleOption(%q, %v) = %q, want %q", tc.current, tc.forward, got, tc.want)
		}
	}
	if got := cycleOption(nil, "x", true); got != "x" {
		t.Errorf("cycleOption(nil) = %q", got)
	}
}

func TestFormPrefillAndTitle(t *testing.T) {
	rec := domain.Record{
		domain.IDField: "k1",
		"title":        "Go Basics",
		"modules":      []any{"Intro", "Types"},
		"level":        "advanced",
	}
	m := newFormModel(domain.Courses, rec)
	if !m.editing() || m.title() != "Edit Course" {
		t.Errorf("title = %q editing=%v", m.title(), m.editing())
	}
	if got := m.values["modules"]; got != "Intro, Types" {
		t.Errorf("modules = %q", got)
	}
	view := m.View()
	for _, want := range []string{"Edit Course", "Go Basics", "advanced", "Certificate URL"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if add := newFormModel(domain.Projects, nil); add.title() != "Add Project" {
		t.Errorf("add title = %q", add.title())
	}
}

func TestFormSubmitAndClose(t *testing.T) {
	m := newFormModel(domain.Projects, nil)
	m, _ = m.Update(keyMsg("ctrl+s"))
	if !m.submitted {
		t.Error("ctrl+s did not request submit")
	}
	m.submitted = false
	m.saving = true
	m, _ = m.Update(keyMsg("ctrl+s"))
	if m.submitted {
		t.Error("submit requested while saving")
	}
	m, _ = m.Update(keyMsg("esc"))
	if !m.closed {
		t.Error("esc did not close")
	}
}

func TestFormValuesCopyIsDetached(t *testing.T) {
	m := newFormModel(domain.Projects, nil)
	m.values["title"] = "A"
	v := m.valuesCopy()
	v["title"] = "B"
	if m.values["title"] != "A" {
		t.Error("valuesCopy shares the form map")
	}
}
