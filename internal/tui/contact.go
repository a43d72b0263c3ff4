package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/alwaysganesh09/teamtitans06/internal/logging"
	"github.com/alwaysganesh09/teamtitans06/pkg/domain"
)

const (
	contactSentText   = "Message sent successfully."
	contactFailedText = "Failed to send message. Please try again."
)

// ContactSender posts a public contact message.
type ContactSender interface {
	SubmitContact(ctx context.Context, req domain.ContactRequest) (*domain.Contact, error)
}

type contactSentMsg struct {
	err error
}

// ContactApp is the public contact form. It needs no login.
type ContactApp struct {
	sender ContactSender
	log    logrus.FieldLogger
	opts   Options
	form   formModel
	notice notice
	height int
}

// NewContactApp creates the contact form model.
func NewContactApp(s ContactSender, opts Options) ContactApp {
	log := opts.Log
	if log == nil {
		log = logging.Discard()
	}
	return ContactApp{
		sender: s,
		log:    log,
		opts:   opts,
		form:   newContactForm(),
	}
}

func newContactForm() formModel {
	f := newFormModel(domain.Contacts, nil)
	f.heading = "Send a Message"
	return f
}

func (m ContactApp) Init() tea.Cmd { return nil }

// request builds the submission from the form input.
func (m ContactApp) request() domain.ContactRequest {
	v := m.form.values
	return domain.ContactRequest{
		Name:    strings.TrimSpace(v["name"]),
		Email:   strings.TrimSpace(v["email"]),
		Subject: strings.TrimSpace(v["subject"]),
		Message: strings.TrimSpace(v["message"]),
	}
}

func (m ContactApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil

	case contactSentMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("contact submit failed")
			m.form = m.form.fail(nil)
			return m.show(noticeError, contactFailedText)
		}
		m.log.Info("contact message sent")
		m.form = newContactForm()
		return m.show(noticeSuccess, contactSentText)

	case noticeExpiredMsg:
		m.notice = m.notice.expire(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		if m.form.closed {
			return m, tea.Quit
		}
		if !m.form.submitted {
			return m, cmd
		}
		m.form.submitted = false
		req := m.request()
		if err := domain.ValidateContact(req); err != nil {
			m.form = m.form.fail(err)
			return m, cmd
		}
		m.form.saving = true
		sender := m.sender
		return m, tea.Batch(cmd, func() tea.Msg {
			_, err := sender.SubmitContact(context.Background(), req)
			return contactSentMsg{err: err}
		})
	}
	return m, nil
}

func (m ContactApp) show(kind noticeKind, text string) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.notice, cmd = newNotice(kind, text, m.opts.NoticeTTL)
	return m, cmd
}

func (m ContactApp) View() string {
	header := " " + titleStyle.Render("TEAM TITANS") + "  " + dimStyle.Render("get in touch")
	body := m.form.View()
	// Chrome: header(1) + spacer(1) + notice(1) + help(1)
	body = strings.TrimRight(truncateToHeight(body, m.height-4), "\n")
	return header + "\n\n" + body + "\n" + m.notice.View() + "\n" + m.form.helpKeys()
}
