package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// DefaultNoticeTTL is how long a notice stays up when no TTL is configured.
const DefaultNoticeTTL = 4 * time.Second

type noticeKind int

const (
	noticeSuccess noticeKind = iota
	noticeError
)

// notice is the transient banner line. The zero value shows nothing.
type notice struct {
	id   uuid.UUID
	kind noticeKind
	text string
}

// noticeExpiredMsg fires when a notice's time is up.
type noticeExpiredMsg struct {
	id uuid.UUID
}

// newNotice creates a notice and the tick that expires it.
func newNotice(kind noticeKind, text string, ttl time.Duration) (notice, tea.Cmd) {
	if ttl <= 0 {
		ttl = DefaultNoticeTTL
	}
	n := notice{id: uuid.New(), kind: kind, text: text}
	id := n.id
	return n, tea.Tick(ttl, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

func (n notice) active() bool { return n.text != "" }

// expire clears n only if msg belongs to it, so a stale tick never hides a
// newer notice.
func (n notice) expire(msg noticeExpiredMsg) notice {
	if msg.id == n.id {
		return notice{}
	}
	return n
}

func (n notice) View() string {
	if !n.active() {
		return ""
	}
	if n.kind == noticeError {
		return " " + errorStyle.Render("✗ "+n.text)
	}
	return " " + successStyle.Render("✓ "+n.text)
}
