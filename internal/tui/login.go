package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alwaysganesh09/teamtitans06/pkg/client"
)

const (
	loginFallbackText  = "Incorrect password!"
	loginTransportText = "An error occurred. Please check the server connection."
)

// Authenticator checks the admin password.
type Authenticator interface {
	Login(ctx context.Context, password string) (*client.LoginResult, error)
}

// loginResultMsg carries the outcome of a password check.
type loginResultMsg struct {
	ok      bool
	message string
	err     error
}

type loginModel struct {
	input   textinput.Model
	err     string
	waiting bool
}

func newLoginModel() loginModel {
	ti := textinput.New()
	ti.Placeholder = "admin password"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 256
	ti.Prompt = "> "
	ti.Focus()
	return loginModel{input: ti}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

// submit sends the password and disables input until the answer arrives.
func (m loginModel) submit(auth Authenticator) (loginModel, tea.Cmd) {
	if m.waiting {
		return m, nil
	}
	m.waiting = true
	m.err = ""
	password := m.input.Value()
	return m, func() tea.Msg {
		res, err := auth.Login(context.Background(), password)
		return loginMessage(res, err)
	}
}

// loginMessage maps a login response to what the user sees.
func loginMessage(res *client.LoginResult, err error) loginResultMsg {
	if err == nil && res != nil && res.Success {
		return loginResultMsg{ok: true}
	}
	var httpErr *client.HTTPError
	if err == nil || errors.As(err, &httpErr) || errors.Is(err, client.ErrLoginRejected) {
		msg := ""
		if res != nil {
			msg = strings.TrimSpace(res.Message)
		}
		if msg == "" {
			msg = strings.TrimSpace(client.ServerMessage(err))
		}
		if msg == "" {
			msg = loginFallbackText
		}
		return loginResultMsg{message: msg, err: err}
	}
	return loginResultMsg{message: loginTransportText, err: err}
}

// failed shows the error and clears the password.
func (m loginModel) failed(msg loginResultMsg) loginModel {
	m.waiting = false
	m.err = msg.message
	m.input.Reset()
	return m
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	if m.waiting {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("\n " + titleStyle.Render("T E A M   T I T A N S") + "\n")
	b.WriteString(" " + dimStyle.Render("Admin Login") + "\n\n")
	b.WriteString(" " + m.input.View() + "\n\n")
	switch {
	case m.waiting:
		b.WriteString(" " + dimStyle.Render("checking..."))
	case m.err != "":
		b.WriteString(" " + errorStyle.Render(m.err))
	}
	return b.String()
}
