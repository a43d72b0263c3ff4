package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alwaysganesh09/teamtitans06/pkg/domain"
)

const (
	messagePreviewLen     = 100
	descriptionPreviewLen = 150

	emptyListText = "No items found."
	rowHeight     = 3 // two content lines plus a spacer
	contactsHead  = 2 // totals line plus a spacer
)

// listModel tracks the cursor over the active collection's rows.
type listModel struct {
	cursor int
	height int
	width  int
}

func (l listModel) move(delta, n int) listModel {
	l.cursor += delta
	return l.clamp(n)
}

// clamp keeps the cursor inside a list of n rows.
func (l listModel) clamp(n int) listModel {
	if l.cursor >= n {
		l.cursor = n - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	return l
}

func (l listModel) selected(records []domain.Record) (domain.Record, bool) {
	if l.cursor < 0 || l.cursor >= len(records) {
		return nil, false
	}
	return records[l.cursor], true
}

// window returns the slice bounds of rows that fit in height minus reserved
// lines, with the cursor visible.
func (l listModel) window(n, reserved int) (int, int) {
	visible := (l.height - reserved) / rowHeight
	if visible < 1 {
		visible = 1
	}
	start := 0
	if l.cursor >= visible {
		start = l.cursor - visible + 1
	}
	end := start + visible
	if end > n {
		end = n
	}
	return start, end
}

// View renders the collection. loading is true while the first fetch of c is
// still outstanding.
func (l listModel) View(c domain.Collection, records []domain.Record, stats domain.ContactStats, loading bool) string {
	var b strings.Builder

	reserved := 1 // count line
	if c == domain.Contacts {
		reserved += contactsHead
		fmt.Fprintf(&b, " %s  %s\n\n",
			selectedStyle.Render(fmt.Sprintf("%d Total", stats.Total)),
			unreadDot.Render(fmt.Sprintf("%d Unread", stats.Unread)))
	}

	if len(records) == 0 {
		if loading {
			b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		} else {
			b.WriteString(" " + dimStyle.Render(emptyListText) + "\n")
		}
		return b.String()
	}

	start, end := l.window(len(records), reserved)
	for i := start; i < end; i++ {
		var row string
		if c == domain.Contacts {
			row = contactRow(records[i], l.width)
		} else {
			row = recordRow(c, records[i], l.width)
		}
		if i == l.cursor {
			lines := strings.Split(row, "\n")
			for j, line := range lines {
				lines[j] = selectedRowBg.Render(line)
			}
			row = strings.Join(lines, "\n")
		}
		b.WriteString(row + "\n\n")
	}

	noun := "items"
	if len(records) == 1 {
		noun = "item"
	}
	b.WriteString(" " + metaStyle.Render(fmt.Sprintf("%d %s", len(records), noun)) + "\n")
	return b.String()
}

func contactRow(r domain.Record, width int) string {
	marker := "  "
	nameStyle := normalStyle
	if !r.Bool("isRead") {
		marker = unreadDot.Render("●") + " "
		nameStyle = unreadStyle
	}
	date := formatDate(r.CreatedAt())
	name := clip(r.String("name"), (width-len(date))/2-4, width)
	email := clip("<"+r.String("email")+">", width-len(date)-lipgloss.Width(name)-8, width)
	head := fmt.Sprintf(" %s%s %s  %s",
		marker,
		nameStyle.Render(name),
		dimStyle.Render(email),
		metaStyle.Render(date))

	subject := clip(r.String("subject"), width/2, width)
	msg := clip(preview(r.String("message"), messagePreviewLen), width-lipgloss.Width(subject)-7, width)
	body := "   " + normalStyle.Render(subject) + dimStyle.Render(" — "+msg)
	return head + "\n" + body
}

func recordRow(c domain.Collection, r domain.Record, width int) string {
	tag := recordTag(c, r)
	head := " " + selectedStyle.Render(clip(r.String("title"), width-lipgloss.Width(tag)-4, width))
	if tag != "" {
		head += "  " + accentStyle.Render(tag)
	}
	body := "   " + dimStyle.Render(clip(preview(r.String("description"), descriptionPreviewLen), width-4, width))
	return head + "\n" + body
}

// recordTag is the short enum badge shown next to a title.
func recordTag(c domain.Collection, r domain.Record) string {
	switch c {
	case domain.Projects:
		if p, err := domain.Decode[domain.Project](r); err == nil {
			return p.Status
		}
	case domain.Resources:
		if res, err := domain.Decode[domain.Resource](r); err == nil {
			return res.Category
		}
	case domain.Courses:
		course, err := domain.Decode[domain.Course](r)
		if err != nil {
			return ""
		}
		parts := []string{}
		for _, v := range []string{course.Level, course.Duration} {
			if v != "" {
				parts = append(parts, v)
			}
		}
		return strings.Join(parts, " · ")
	}
	return ""
}

// clip cuts s to room columns so a row never wraps. An unknown terminal
// width (<= 0) leaves s alone.
func clip(s string, room, width int) string {
	if width <= 0 {
		return s
	}
	return truncStr(s, max(room, 1))
}
