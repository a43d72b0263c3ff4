package tui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alwaysganesh09/teamtitans06/pkg/client"
	"github.com/alwaysganesh09/teamtitans06/pkg/domain"
)

var errOffline = errors.New("dial tcp: connection refused")

// fakeBackend is an in-memory API.
type fakeBackend struct {
	mu       sync.Mutex
	data     map[domain.Collection][]domain.Record
	nextID   int
	password string
	offline  bool
	failAll  bool
	calls    []string
	sent     []domain.ContactRequest
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		data:     map[domain.Collection][]domain.Record{},
		password: "secret",
	}
}

func (f *fakeBackend) seed(c domain.Collection, recs ...domain.Record) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[c] = append(f.data[c], recs...)
}

func (f *fakeBackend) called(call string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (f *fakeBackend) record(call string) error {
	f.calls = append(f.calls, call)
	if f.offline {
		return errOffline
	}
	if f.failAll {
		return &client.HTTPError{StatusCode: http.StatusInternalServerError, Message: "boom"}
	}
	return nil
}

func (f *fakeBackend) List(_ context.Context, c domain.Collection) ([]domain.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GET " + string(c)); err != nil {
		return nil, err
	}
	out := make([]domain.Record, len(f.data[c]))
	for i, r := range f.data[c] {
		out[i] = r.Clone()
	}
	return out, nil
}

func (f *fakeBackend) Create(_ context.Context, c domain.Collection, p domain.Payload) (domain.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("POST " + string(c)); err != nil {
		return nil, err
	}
	f.nextID++
	rec := domain.Record{domain.IDField: fmt.Sprintf("new%d", f.nextID), "createdAt": time.Now().UTC().Format(time.RFC3339)}
	for k, v := range p {
		rec[k] = v
	}
	f.data[c] = append(f.data[c], rec)
	return rec, nil
}

func (f *fakeBackend) Update(_ context.Context, c domain.Collection, id string, p domain.Payload) (domain.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("PUT " + string(c) + "/" + id); err != nil {
		return nil, err
	}
	for i, r := range f.data[c] {
		if r.ID() == id {
			next := r.Clone()
			for k, v := range p {
				next[k] = v
			}
			f.data[c][i] = next
			return next, nil
		}
	}
	return nil, &client.HTTPError{StatusCode: http.StatusNotFound, Message: "Not found"}
}

func (f *fakeBackend) Delete(_ context.Context, c domain.Collection, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DELETE " + string(c) + "/" + id); err != nil {
		return err
	}
	for i, r := range f.data[c] {
		if r.ID() == id {
			f.data[c] = append(f.data[c][:i:i], f.data[c][i+1:]...)
			return nil
		}
	}
	return &client.HTTPError{StatusCode: http.StatusNotFound, Message: "Not found"}
}

func (f *fakeBackend) MarkContactRead(_ context.Context, id string) (domain.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("PUT contacts/" + id + "/read"); err != nil {
		return nil, err
	}
	for i, r := range f.data[domain.Contacts] {
		if r.ID() == id {
			next := r.Clone()
			next["isRead"] = true
			f.data[domain.Contacts][i] = next
			return next, nil
		}
	}
	return nil, &client.HTTPError{StatusCode: http.StatusNotFound, Message: "Not found"}
}

func (f *fakeBackend) Login(_ context.Context, password string) (*client.LoginResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "POST login")
	if f.offline {
		return nil, fmt.Errorf("client.Login: %w", errOffline)
	}
	if password != f.password {
		return &client.LoginResult{Message: "Invalid password"},
			fmt.Errorf("client.Login: %w", &client.HTTPError{StatusCode: http.StatusUnauthorized, Message: "Invalid password"})
	}
	return &client.LoginResult{Success: true, Message: "Login successful"}, nil
}

func (f *fakeBackend) SubmitContact(_ context.Context, req domain.ContactRequest) (*domain.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("POST contacts"); err != nil {
		return nil, err
	}
	f.sent = append(f.sent, req)
	return &domain.Contact{ID: "c-new", Name: req.Name, Email: req.Email, Subject: req.Subject, Message: req.Message}, nil
}

// memPrefs keeps client state in memory.
type memPrefs struct {
	authed bool
	theme  string
	err    error
}

func (p *memPrefs) Authenticated() bool { return p.authed }

func (p *memPrefs) SetAuthenticated(v bool) error {
	if p.err != nil {
		return p.err
	}
	p.authed = v
	return nil
}

func (p *memPrefs) Theme() string {
	if p.theme == "" {
		return "dark"
	}
	return p.theme
}

func (p *memPrefs) SetTheme(name string) error {
	if p.err != nil {
		return p.err
	}
	p.theme = name
	return nil
}

// drive runs cmd and every command that follows from it, feeding results
// back into m until nothing is left. Animation ticks and notice expiries are
// dropped so the loop settles.
func drive(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 200 {
			t.Fatal("command loop did not settle")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case spinner.TickMsg, cursor.BlinkMsg, noticeExpiredMsg, tea.QuitMsg, nil:
		default:
			var next tea.Cmd
			m, next = m.Update(msg)
			queue = append(queue, next)
		}
	}
	return m
}

func press(m tea.Model, keyStr string) (tea.Model, tea.Cmd) {
	return m.Update(keyMsg(keyStr))
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
