package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestContactApp(b *fakeBackend) ContactApp {
	return NewContactApp(b, testOptions())
}

func contactStep(t *testing.T, m ContactApp, keyStr string) ContactApp {
	t.Helper()
	model, cmd := press(m, keyStr)
	return drive(t, model, cmd).(ContactApp)
}

func TestContactAppSends(t *testing.T) {
	b := newFakeBackend()
	m := newTestContactApp(b)
	m.form.values["name"] = " Ana "
	m.form.values["email"] = "ana@example.com"
	m.form.values["subject"] = "Collab"
	m.form.values["message"] = "Let's build something."

	m = contactStep(t, m, "ctrl+s")

	if len(b.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(b.sent))
	}
	if b.sent[0].Name != "Ana" {
		t.Errorf("name = %q, want trimmed", b.sent[0].Name)
	}
	if m.notice.text != contactSentText {
		t.Errorf("notice = %q", m.notice.text)
	}
	if m.form.values["message"] != "" {
		t.Error("form not reset after sending")
	}
}

func TestContactAppRejectsBadEmail(t *testing.T) {
	b := newFakeBackend()
	m := newTestContactApp(b)
	m.form.values["name"] = "Ana"
	m.form.values["email"] = "not-an-email"
	m.form.values["subject"] = "Hi"
	m.form.values["message"] = "Hello"

	m = contactStep(t, m, "ctrl+s")

	if len(b.calls) != 0 {
		t.Errorf("invalid message reached the API: %v", b.calls)
	}
	if !strings.Contains(m.form.err, "email") {
		t.Errorf("form error = %q", m.form.err)
	}
}

func TestContactAppFailureKeepsInput(t *testing.T) {
	b := newFakeBackend()
	b.failAll = true
	m := newTestContactApp(b)
	m.form.values["name"] = "Ana"
	m.form.values["email"] = "ana@example.com"
	m.form.values["subject"] = "Hi"
	m.form.values["message"] = "Hello"

	m = contactStep(t, m, "ctrl+s")

	if m.notice.text != contactFailedText {
		t.Errorf("notice = %q", m.notice.text)
	}
	if m.form.values["message"] != "Hello" || m.form.saving {
		t.Error("input lost or still saving after failure")
	}
}

func TestContactAppEscQuits(t *testing.T) {
	m := newTestContactApp(newFakeBackend())
	_, cmd := press(m, "esc")
	if cmd == nil {
		t.Fatal("expected quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc did not quit")
	}
	if view := m.View(); !strings.Contains(view, "Send a Message") {
		t.Errorf("view missing heading:\n%s", view)
	}
}
