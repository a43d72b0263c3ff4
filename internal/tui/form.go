package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/alwaysganesh09/teamtitans06/pkg/domain"
)

// formModel edits any collection schema. The owner watches submitted and
// closed after each Update and clears submitted once it has acted.
type formModel struct {
	token      uuid.UUID // identifies this form's save results
	collection domain.Collection
	heading    string // overrides the Add/Edit title
	fields     []domain.Field
	values     map[string]string
	id         string // "" when creating
	focus      int
	err        string
	saving     bool
	submitted  bool
	closed     bool
}

// newFormModel opens a form for c, pre-filled from rec when rec is non-nil.
func newFormModel(c domain.Collection, rec domain.Record) formModel {
	m := formModel{
		token:      uuid.New(),
		collection: c,
		fields:     domain.Schemas[c],
		values:     domain.FormValues(c, rec),
	}
	if rec != nil {
		m.id = rec.ID()
	}
	return m
}

func (m formModel) editing() bool { return m.id != "" }

func (m formModel) title() string {
	if m.heading != "" {
		return m.heading
	}
	if m.editing() {
		return "Edit " + m.collection.Singular()
	}
	return "Add " + m.collection.Singular()
}

// valuesCopy returns the current input, detached from the form.
func (m formModel) valuesCopy() map[string]string {
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// fail reopens the form for input after a rejected submit.
func (m formModel) fail(err error) formModel {
	m.saving = false
	m.submitted = false
	if err != nil {
		m.err = err.Error()
	}
	return m
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.fields) == 0 {
		return m, nil
	}
	m.err = ""

	switch {
	case key.Matches(kmsg, keys.Submit):
		if !m.saving {
			m.submitted = true
		}
		return m, nil
	case key.Matches(kmsg, keys.Back):
		m.closed = true
		return m, nil
	case key.Matches(kmsg, keys.NextField):
		m.focus = (m.focus + 1) % len(m.fields)
		return m, nil
	case key.Matches(kmsg, keys.PrevField):
		m.focus = (m.focus - 1 + len(m.fields)) % len(m.fields)
		return m, nil
	}

	f := m.fields[m.focus]
	v := m.values[f.Name]

	if f.Kind == domain.KindSelect {
		if key.Matches(kmsg, keys.Cycle) {
			m.values[f.Name] = cycleOption(f.Options, v, kmsg.String() == "l")
		}
		return m, nil
	}

	switch kmsg.Type {
	case tea.KeyEnter:
		if f.Kind == domain.KindTextArea {
			m.values[f.Name] = insertText(v, []rune{'\n'})
		} else {
			m.focus = (m.focus + 1) % len(m.fields)
		}
	case tea.KeyBackspace:
		m.values[f.Name] = editRune(v, "backspace")
	case tea.KeySpace:
		m.values[f.Name] = insertText(v, []rune{' '})
	case tea.KeyRunes:
		m.values[f.Name] = insertText(v, kmsg.Runes)
	}
	return m, nil
}

// cycleOption steps through options, wrapping at both ends.
func cycleOption(options []string, current string, forward bool) string {
	if len(options) == 0 {
		return current
	}
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	if forward {
		idx = (idx + 1) % len(options)
	} else {
		idx = (idx - 1 + len(options)) % len(options)
	}
	return options[idx]
}

func (m formModel) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, " %s\n\n", titleStyle.Render(m.title()))

	for i, f := range m.fields {
		cursor := " "
		style := labelStyle
		if i == m.focus {
			cursor = accentStyle.Render(">")
			style = selectedStyle
		}
		label := f.Label
		if f.Required {
			label += " *"
		}
		value := m.values[f.Name]

		switch f.Kind {
		case domain.KindSelect:
			fmt.Fprintf(&b, " %s %s: %s  %s\n", cursor, style.Render(label),
				accentStyle.Render(value), metaStyle.Render("(h/l to cycle)"))
		case domain.KindTextArea:
			fmt.Fprintf(&b, " %s %s:\n", cursor, style.Render(label))
			text := value
			if i == m.focus {
				text += "█"
			}
			for _, line := range strings.Split(text, "\n") {
				fmt.Fprintf(&b, "     %s\n", normalStyle.Render(line))
			}
		default:
			text := value
			if i == m.focus {
				text += "█"
			} else if text == "" {
				text = inputPlaceholderStyle.Render("-")
			}
			fmt.Fprintf(&b, " %s %s: %s\n", cursor, style.Render(label), normalStyle.Render(text))
		}
	}

	b.WriteString("\n")
	switch {
	case m.saving:
		b.WriteString(" " + dimStyle.Render("saving..."))
	case m.err != "":
		b.WriteString(" " + errorStyle.Render(m.err))
	}
	return b.String()
}

func (m formModel) helpKeys() string {
	bindings := []key.Binding{keys.NextField, keys.PrevField}
	if m.focus < len(m.fields) && m.fields[m.focus].Kind == domain.KindSelect {
		bindings = append(bindings, keys.Cycle)
	}
	return helpBar(append(bindings, keys.Submit, keys.Back)...)
}
