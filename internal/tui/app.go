package tui

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/alwaysganesh09/teamtitans06/internal/logging"
	"github.com/alwaysganesh09/teamtitans06/internal/mirror"
	"github.com/alwaysganesh09/teamtitans06/internal/state"
	"github.com/alwaysganesh09/teamtitans06/pkg/client"
	"github.com/alwaysganesh09/teamtitans06/pkg/domain"
)

// User-facing notice texts.
const (
	loadFailedText   = "Failed to load data. Please check server connection."
	saveFailedText   = "Failed to save data. Please try again."
	deleteFailedText = "Failed to delete item. Please try again."
	deletedText      = "Item deleted successfully."
	goneText         = "Item no longer exists."
	confirmText      = "Are you sure you want to delete this item?"
	copiedText       = "Email copied to clipboard."
	copyFailedText   = "Failed to copy email."
	openFailedText   = "Failed to open link."
)

// Backend is everything the console needs from the API.
type Backend interface {
	mirror.Remote
	Authenticator
}

// Prefs is the durable client state. *state.Store satisfies it.
type Prefs interface {
	Authenticated() bool
	SetAuthenticated(bool) error
	Theme() string
	SetTheme(string) error
}

// Options tunes the console.
type Options struct {
	Version   string
	NoticeTTL time.Duration
	Log       logrus.FieldLogger
}

// formSavedMsg ties a save result to the form that submitted it.
type formSavedMsg struct {
	form  uuid.UUID
	saved mirror.SavedMsg
}

// App is the root Bubbletea model of the admin console.
type App struct {
	backend Backend
	prefs   Prefs
	log     logrus.FieldLogger
	opts    Options

	authed bool
	login  loginModel

	sync       mirror.Synchronizer
	list       listModel
	form       formModel
	formOpen   bool
	detail     detailModel
	detailOpen bool
	confirmID  string

	initCmd  tea.Cmd
	notice   notice
	spinner  spinner.Model
	spinning bool
	theme    string
	width    int
	height   int
}

// NewApp creates the console. It starts on the login view unless prefs
// already records a successful login.
func NewApp(b Backend, prefs Prefs, opts Options) App {
	log := opts.Log
	if log == nil {
		log = logging.Discard()
	}
	theme := prefs.Theme()
	applyTheme(theme)

	a := App{
		backend: b,
		prefs:   prefs,
		log:     log,
		opts:    opts,
		authed:  prefs.Authenticated(),
		login:   newLoginModel(),
		sync:    mirror.NewSynchronizer(b, log),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		theme:   theme,
	}
	if a.authed {
		a.sync, a.initCmd = a.sync.SwitchTab(a.sync.Mirror().Active())
		a.spinning = true
	}
	return a
}

func (a App) Init() tea.Cmd {
	if !a.authed {
		return a.login.Init()
	}
	return tea.Batch(a.initCmd, a.spinner.Tick)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !a.authed && syncResult(msg) {
		// A request from before logout.
		return a, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.width = msg.Width
		// Chrome: header(1) + tabs(1) + spacer(1) + notice(1) + help(1)
		a.list.height = msg.Height - 5
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if !a.authed {
			return a.updateLogin(msg)
		}
		switch {
		case a.confirmID != "":
			return a.updateConfirm(msg)
		case a.formOpen:
			return a.updateForm(msg)
		case a.detailOpen:
			return a.updateDetail(msg)
		}
		return a.updateList(msg)

	case loginResultMsg:
		return a.loginDone(msg)

	case mirror.LoadedMsg:
		var cmd tea.Cmd
		a.sync, cmd = a.sync.Update(msg)
		a.list = a.list.clamp(a.activeLen())
		a.refreshDetail()
		if msg.Err != nil {
			return a.showNotice(noticeError, loadFailedText, cmd)
		}
		return a, cmd

	case formSavedMsg:
		var cmd tea.Cmd
		a.sync, cmd = a.sync.Update(msg.saved)
		owner := a.formOpen && a.form.token == msg.form
		if msg.saved.Err != nil {
			if owner {
				a.form = a.form.fail(nil)
			}
			return a.showNotice(noticeError, saveFailedText, cmd)
		}
		if owner {
			a.formOpen = false
		}
		verb := "updated"
		if msg.saved.Created() {
			verb = "added"
		}
		return withSpinner(a.showNotice(noticeSuccess, fmt.Sprintf("Item %s successfully.", verb), cmd))

	case mirror.RemovedMsg:
		var cmd tea.Cmd
		a.sync, cmd = a.sync.Update(msg)
		gone := client.IsStatus(msg.Err, http.StatusNotFound)
		if a.detailOpen && a.detail.record.ID() == msg.ID && (msg.Err == nil || gone) {
			a.detailOpen = false
		}
		if gone {
			a.sync, cmd = a.sync.Load(msg.Collection)
			return withSpinner(a.showNotice(noticeError, goneText, cmd))
		}
		if msg.Err != nil {
			return a.showNotice(noticeError, deleteFailedText, cmd)
		}
		return withSpinner(a.showNotice(noticeSuccess, deletedText, cmd))

	case mirror.MarkedReadMsg:
		a.sync, _ = a.sync.Update(msg)
		a.refreshDetail()
		return a, nil

	case copiedMsg:
		if msg.err != nil {
			a.log.WithError(msg.err).Warn("clipboard write failed")
			return a.showNotice(noticeError, copyFailedText, nil)
		}
		return a.showNotice(noticeSuccess, copiedText, nil)

	case openedMsg:
		if msg.err != nil {
			a.log.WithError(msg.err).WithField("url", msg.url).Warn("open link failed")
			return a.showNotice(noticeError, openFailedText, nil)
		}
		return a, nil

	case noticeExpiredMsg:
		a.notice = a.notice.expire(msg)
		return a, nil

	case spinner.TickMsg:
		if a.sync.Pending() == 0 && !a.login.waiting {
			a.spinning = false
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	if !a.authed {
		var cmd tea.Cmd
		a.login, cmd = a.login.Update(msg)
		return a, cmd
	}
	return a, nil
}

func syncResult(msg tea.Msg) bool {
	switch msg.(type) {
	case mirror.LoadedMsg, formSavedMsg, mirror.RemovedMsg, mirror.MarkedReadMsg:
		return true
	}
	return false
}

func (a App) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		return a, tea.Quit
	case key.Matches(msg, keys.Open):
		var cmd tea.Cmd
		a.login, cmd = a.login.submit(a.backend)
		return a.startSpinner(cmd)
	}
	var cmd tea.Cmd
	a.login, cmd = a.login.Update(msg)
	return a, cmd
}

func (a App) loginDone(msg loginResultMsg) (tea.Model, tea.Cmd) {
	if !msg.ok {
		if msg.err != nil {
			a.log.WithError(msg.err).Warn("login failed")
		}
		a.login = a.login.failed(msg)
		return a, nil
	}
	if err := a.prefs.SetAuthenticated(true); err != nil {
		a.log.WithError(err).Error("persist login")
	}
	a.log.Info("admin logged in")
	a.authed = true
	a.login = newLoginModel()
	var cmd tea.Cmd
	a.sync, cmd = a.sync.SwitchTab(a.sync.Mirror().Active())
	return withSpinner(a, cmd)
}

func (a App) logout() (tea.Model, tea.Cmd) {
	if err := a.prefs.SetAuthenticated(false); err != nil {
		a.log.WithError(err).Error("clear login")
	}
	a.log.Info("admin logged out")
	a.authed = false
	a.sync = mirror.NewSynchronizer(a.backend, a.log)
	a.list = listModel{width: a.list.width, height: a.list.height}
	a.formOpen = false
	a.detailOpen = false
	a.confirmID = ""
	a.notice = notice{}
	a.login = newLoginModel()
	return a, a.login.Init()
}

func (a App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := a.sync.Mirror().Active()
	records := a.sync.Mirror().Records(c)

	if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(domain.Collections) {
		return a.switchTab(domain.Collections[n-1])
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, keys.NextTab):
		return a.switchTab(a.tabOffset(1))
	case key.Matches(msg, keys.PrevTab):
		return a.switchTab(a.tabOffset(-1))
	case key.Matches(msg, keys.Down):
		a.list = a.list.move(1, len(records))
	case key.Matches(msg, keys.Up):
		a.list = a.list.move(-1, len(records))
	case key.Matches(msg, keys.Reload):
		var cmd tea.Cmd
		a.sync, cmd = a.sync.Load(c)
		return withSpinner(a, cmd)
	case key.Matches(msg, keys.Open):
		rec, ok := a.list.selected(records)
		if !ok {
			return a, nil
		}
		a.detail = newDetailModel(c, rec)
		a.detailOpen = true
		if c == domain.Contacts {
			var cmd tea.Cmd
			a.sync, cmd = a.sync.MarkRead(rec.ID())
			return withSpinner(a, cmd)
		}
	case key.Matches(msg, keys.Add):
		if c.Editable() {
			a.form = newFormModel(c, nil)
			a.formOpen = true
		}
	case key.Matches(msg, keys.Edit):
		if rec, ok := a.list.selected(records); ok && c.Editable() {
			a.form = newFormModel(c, rec)
			a.formOpen = true
		}
	case key.Matches(msg, keys.Delete):
		if rec, ok := a.list.selected(records); ok {
			a.confirmID = rec.ID()
		}
	case key.Matches(msg, keys.Theme):
		return a.toggleTheme()
	case key.Matches(msg, keys.Logout):
		return a.logout()
	case key.Matches(msg, keys.Dismiss):
		a.notice = notice{}
	}
	return a, nil
}

func (a App) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := a.detail.collection
	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, keys.Edit) && c.Editable():
		a.form = newFormModel(c, a.detail.record)
		a.formOpen = true
		a.detailOpen = false
		return a, nil
	case key.Matches(msg, keys.Delete):
		a.confirmID = a.detail.record.ID()
		return a, nil
	case key.Matches(msg, keys.Dismiss):
		a.notice = notice{}
		return a, nil
	}
	var cmd tea.Cmd
	a.detail, cmd = a.detail.Update(msg)
	if a.detail.closed {
		a.detailOpen = false
	}
	return a, cmd
}

func (a App) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Confirm):
		id := a.confirmID
		a.confirmID = ""
		var cmd tea.Cmd
		a.sync, cmd = a.sync.Remove(a.sync.Mirror().Active(), id)
		return withSpinner(a, cmd)
	case key.Matches(msg, keys.Cancel):
		a.confirmID = ""
	}
	return a, nil
}

func (a App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	if a.form.closed {
		a.formOpen = false
		return a, cmd
	}
	if !a.form.submitted {
		return a, cmd
	}
	a.form.submitted = false
	var sendCmd tea.Cmd
	var err error
	a.sync, sendCmd, err = a.sync.Submit(a.form.collection, a.form.valuesCopy(), a.form.id)
	if err != nil {
		a.form = a.form.fail(err)
		return a, cmd
	}
	a.form.saving = true
	return withSpinner(a, tea.Batch(cmd, tagSave(a.form.token, sendCmd)))
}

// tagSave wraps a save command so its result names the submitting form.
func tagSave(form uuid.UUID, save tea.Cmd) tea.Cmd {
	return func() tea.Msg {
		msg := save()
		if saved, ok := msg.(mirror.SavedMsg); ok {
			return formSavedMsg{form: form, saved: saved}
		}
		return msg
	}
}

func (a App) switchTab(c domain.Collection) (tea.Model, tea.Cmd) {
	a.list.cursor = 0
	var cmd tea.Cmd
	a.sync, cmd = a.sync.SwitchTab(c)
	return withSpinner(a, cmd)
}

// tabOffset returns the collection delta tabs away from the active one.
func (a App) tabOffset(delta int) domain.Collection {
	active := a.sync.Mirror().Active()
	n := len(domain.Collections)
	for i, c := range domain.Collections {
		if c == active {
			return domain.Collections[((i+delta)%n+n)%n]
		}
	}
	return domain.Collections[0]
}

func (a App) toggleTheme() (tea.Model, tea.Cmd) {
	next := state.ThemeLight
	if a.theme == state.ThemeLight {
		next = state.ThemeDark
	}
	a.theme = next
	applyTheme(next)
	if err := a.prefs.SetTheme(next); err != nil {
		a.log.WithError(err).Warn("persist theme")
	}
	return a, nil
}

func (a App) showNotice(kind noticeKind, text string, cmd tea.Cmd) (App, tea.Cmd) {
	n, expire := newNotice(kind, text, a.opts.NoticeTTL)
	a.notice = n
	return a, tea.Batch(cmd, expire)
}

// withSpinner starts the spinner when requests are in flight.
func withSpinner(a App, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if a.sync.Pending() > 0 {
		return a.startSpinner(cmd)
	}
	return a, cmd
}

func (a App) startSpinner(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if a.spinning {
		return a, cmd
	}
	a.spinning = true
	return a, tea.Batch(cmd, a.spinner.Tick)
}

func (a *App) refreshDetail() {
	if a.detailOpen {
		a.detail = a.detail.refresh(a.sync.Mirror().Find)
	}
}

func (a App) activeLen() int {
	return a.sync.Mirror().Len(a.sync.Mirror().Active())
}

func (a App) View() string {
	if !a.authed {
		help := " " + helpEntry("enter", "login") + "  " + helpEntry("esc", "quit")
		return a.login.View() + "\n\n" + help
	}

	m := a.sync.Mirror()
	active := m.Active()

	header := " " + titleStyle.Render("TEAM TITANS") + "  " + dimStyle.Render("admin console")
	if a.opts.Version != "" {
		header += " " + metaStyle.Render(a.opts.Version)
	}
	if a.sync.Pending() > 0 {
		header += "  " + a.spinner.View()
	}

	var tabBar strings.Builder
	for i, c := range domain.Collections {
		var label string
		if c == active {
			label = accentStyle.Render(strconv.Itoa(i+1)) + " " + selectedStyle.Underline(true).Render(c.Title())
		} else {
			label = metaStyle.Render(strconv.Itoa(i+1)) + " " + dimStyle.Render(c.Title())
		}
		if c == domain.Contacts && m.Loaded(c) && m.ContactStats().Unread > 0 {
			label += " " + unreadDot.Render(fmt.Sprintf("●%d", m.ContactStats().Unread))
		}
		tabBar.WriteString(" " + label + "  ")
	}

	var body, help string
	switch {
	case a.confirmID != "":
		body = overlayStyle.Render(confirmText+"\n\n"+helpEntry("y", "yes")+"  "+helpEntry("n", "no")) + "\n"
		help = helpBar(keys.Confirm, keys.Cancel)
	case a.formOpen:
		body = a.form.View()
		help = a.form.helpKeys()
	case a.detailOpen:
		body = a.detail.View()
		help = a.detail.helpKeys()
	default:
		loading := !m.Loaded(active) && a.sync.Pending() > 0
		body = a.list.View(active, m.Records(active), m.ContactStats(), loading)
		bindings := []key.Binding{keys.NextTab, keys.Down, keys.Up, keys.Open}
		if active.Editable() {
			bindings = append(bindings, keys.Add, keys.Edit)
		}
		bindings = append(bindings, keys.Delete, keys.Reload, keys.Theme, keys.Logout, keys.Quit)
		help = helpBar(bindings...)
	}
	if a.notice.active() {
		help += "  " + helpEntry("x", "dismiss")
	}

	chrome := 5
	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")

	line := lipgloss.NewStyle()
	if a.width > 0 {
		line = line.MaxWidth(a.width)
	}
	return fmt.Sprintf("%s\n%s\n\n%s\n%s\n%s",
		line.Render(header), line.Render(tabBar.String()), body, line.Render(a.notice.View()), line.Render(help))
}
