package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alwaysganesh09/teamtitans06/internal/browser"
	"github.com/alwaysganesh09/teamtitans06/pkg/domain"
)

// Side effects behind package vars so tests can observe them.
var (
	copyToClipboard = clipboard.WriteAll
	openURL         = browser.Open
)

type copiedMsg struct {
	text string
	err  error
}

type openedMsg struct {
	url string
	err error
}

// detailModel shows one record in full.
type detailModel struct {
	collection domain.Collection
	record     domain.Record
	closed     bool
}

func newDetailModel(c domain.Collection, rec domain.Record) detailModel {
	return detailModel{collection: c, record: rec}
}

// refresh swaps in the mirror's current copy of the record, if it still exists.
func (m detailModel) refresh(find func(domain.Collection, string) (domain.Record, bool)) detailModel {
	if rec, ok := find(m.collection, m.record.ID()); ok {
		m.record = rec
	}
	return m
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(kmsg, keys.Back), key.Matches(kmsg, keys.Open):
		m.closed = true
	case m.collection == domain.Contacts && key.Matches(kmsg, keys.Copy):
		email := m.record.String("email")
		if email == "" {
			return m, nil
		}
		return m, func() tea.Msg {
			return copiedMsg{text: email, err: copyToClipboard(email)}
		}
	case m.collection != domain.Contacts && key.Matches(kmsg, keys.Browse):
		link := primaryLink(m.collection, m.record)
		if link == "" {
			return m, nil
		}
		return m, func() tea.Msg {
			return openedMsg{url: link, err: openURL(link)}
		}
	}
	return m, nil
}

// primaryLink picks the record's most useful external link.
func primaryLink(c domain.Collection, r domain.Record) string {
	switch c {
	case domain.Projects:
		p, err := domain.Decode[domain.Project](r)
		if err != nil {
			return ""
		}
		if p.DemoURL != "" {
			return p.DemoURL
		}
		return p.GitHubURL
	case domain.Resources:
		if res, err := domain.Decode[domain.Resource](r); err == nil {
			return res.URL
		}
	case domain.Courses:
		if course, err := domain.Decode[domain.Course](r); err == nil {
			return course.CertificateURL
		}
	}
	return ""
}

func (m detailModel) View() string {
	if m.collection == domain.Contacts {
		return m.contactView()
	}
	var b strings.Builder
	fmt.Fprintf(&b, " %s\n\n", titleStyle.Render(m.record.String("title")))
	for _, f := range domain.Schemas[m.collection] {
		if f.Name == "title" {
			continue
		}
		var value string
		if f.Kind == domain.KindList {
			value = domain.JoinList(m.record.Strings(f.Name))
		} else {
			value = m.record.String(f.Name)
		}
		if value == "" {
			value = metaStyle.Render("-")
		}
		if f.Kind == domain.KindTextArea {
			fmt.Fprintf(&b, " %s\n %s\n\n", labelStyle.Render(f.Label), normalStyle.Render(value))
			continue
		}
		fmt.Fprintf(&b, " %s  %s\n", labelStyle.Render(fmt.Sprintf("%-16s", f.Label)), normalStyle.Render(value))
	}
	if created := m.record.CreatedAt(); !created.IsZero() {
		fmt.Fprintf(&b, "\n %s\n", metaStyle.Render("created "+formatDate(created)))
	}
	return b.String()
}

func (m detailModel) contactView() string {
	r := m.record
	var b strings.Builder
	fmt.Fprintf(&b, " %s\n\n", titleStyle.Render(r.String("subject")))
	fmt.Fprintf(&b, " %s  %s\n", labelStyle.Render("From   "), selectedStyle.Render(r.String("name")))
	fmt.Fprintf(&b, " %s  %s\n", labelStyle.Render("Email  "), accentStyle.Render(r.String("email")))
	if created := r.CreatedAt(); !created.IsZero() {
		fmt.Fprintf(&b, " %s  %s %s\n", labelStyle.Render("Date   "),
			normalStyle.Render(formatDate(created)), metaStyle.Render("("+formatTime(created)+")"))
	}
	status := successStyle.Render("read")
	if !r.Bool("isRead") {
		status = unreadDot.Render("● unread")
	}
	fmt.Fprintf(&b, " %s  %s\n\n", labelStyle.Render("Status "), status)
	b.WriteString(normalStyle.Render(r.String("message")) + "\n")
	return b.String()
}

func (m detailModel) helpKeys() string {
	if m.collection == domain.Contacts {
		return helpBar(keys.Copy, keys.Delete, keys.Back)
	}
	return helpBar(keys.Browse, keys.Edit, keys.Delete, keys.Back)
}
