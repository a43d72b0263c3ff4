package tui

import (
	"strings"
	"testing"
	"time"
)

func TestNoticeExpireMatchesID(t *testing.T) {
	n, cmd := newNotice(noticeSuccess, "Item deleted successfully.", time.Millisecond)
	if cmd == nil {
		t.Fatal("expected expiry command")
	}
	msg, ok := cmd().(noticeExpiredMsg)
	if !ok {
		t.Fatalf("expiry command produced %T", cmd())
	}
	if n.expire(msg).active() {
		t.Error("notice should clear on its own expiry")
	}
}

func TestNoticeStaleExpiryKeepsNewer(t *testing.T) {
	old, _ := newNotice(noticeSuccess, "old", time.Second)
	cur, _ := newNotice(noticeError, "new", time.Second)
	if got := cur.expire(noticeExpiredMsg{id: old.id}); !got.active() {
		t.Error("stale expiry cleared a newer notice")
	}
}

func TestNoticeView(t *testing.T) {
	if (notice{}).View() != "" {
		t.Error("zero notice should render nothing")
	}
	n, _ := newNotice(noticeError, "Failed to delete item. Please try again.", 0)
	if !strings.Contains(n.View(), "Failed to delete item. Please try again.") {
		t.Errorf("View() = %q", n.View())
	}
}
