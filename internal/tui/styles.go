package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alwaysganesh09/teamtitans06/internal/state"
)

// palette is the set of colors a theme provides.
type palette struct {
	text      lipgloss.Color
	bright    lipgloss.Color
	dim       lipgloss.Color
	meta      lipgloss.Color
	accent    lipgloss.Color
	success   lipgloss.Color
	danger    lipgloss.Color
	unread    lipgloss.Color
	selection lipgloss.Color
	faint     lipgloss.Color
}

var palettes = map[string]palette{
	state.ThemeDark: {
		text:      lipgloss.Color("#c0c4d0"),
		bright:    lipgloss.Color("#e4e4ec"),
		dim:       lipgloss.Color("#8890a0"),
		meta:      lipgloss.Color("#505868"),
		accent:    lipgloss.Color("#6c8cff"),
		success:   lipgloss.Color("#4ade80"),
		danger:    lipgloss.Color("#e06060"),
		unread:    lipgloss.Color("#f59e0b"),
		selection: lipgloss.Color("#1e1e2a"),
		faint:     lipgloss.Color("#343c4a"),
	},
	state.ThemeLight: {
		text:      lipgloss.Color("#2a2e38"),
		bright:    lipgloss.Color("#0b0d12"),
		dim:       lipgloss.Color("#5a6170"),
		meta:      lipgloss.Color("#8a90a0"),
		accent:    lipgloss.Color("#3451d1"),
		success:   lipgloss.Color("#15803d"),
		danger:    lipgloss.Color("#b91c1c"),
		unread:    lipgloss.Color("#b45309"),
		selection: lipgloss.Color("#e4e7f0"),
		faint:     lipgloss.Color("#b8bdc8"),
	},
}

var (
	normalStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	dimStyle      lipgloss.Style
	metaStyle     lipgloss.Style
	accentStyle   lipgloss.Style
	titleStyle    lipgloss.Style

	// Rows
	selectedRowBg lipgloss.Style
	unreadStyle   lipgloss.Style
	unreadDot     lipgloss.Style

	// Notices
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style

	// Help bar
	helpKeyStyle   lipgloss.Style
	helpLabelStyle lipgloss.Style

	// Forms
	labelStyle            lipgloss.Style
	inputPlaceholderStyle lipgloss.Style
	overlayStyle          lipgloss.Style
)

func init() {
	applyTheme(state.ThemeDark)
}

// applyTheme rebuilds the package styles from the named palette. Unknown
// names fall back to dark.
func applyTheme(name string) {
	p, ok := palettes[name]
	if !ok {
		p = palettes[state.ThemeDark]
	}

	normalStyle = lipgloss.NewStyle().Foreground(p.text)
	selectedStyle = lipgloss.NewStyle().Foreground(p.bright).Bold(true)
	dimStyle = lipgloss.NewStyle().Foreground(p.dim)
	metaStyle = lipgloss.NewStyle().Foreground(p.meta)
	accentStyle = lipgloss.NewStyle().Foreground(p.accent)
	titleStyle = lipgloss.NewStyle().Foreground(p.accent).Bold(true)

	selectedRowBg = lipgloss.NewStyle().Background(p.selection)
	unreadStyle = lipgloss.NewStyle().Foreground(p.bright).Bold(true)
	unreadDot = lipgloss.NewStyle().Foreground(p.unread)

	successStyle = lipgloss.NewStyle().Foreground(p.success)
	errorStyle = lipgloss.NewStyle().Foreground(p.danger)

	helpKeyStyle = lipgloss.NewStyle().Foreground(p.dim)
	helpLabelStyle = lipgloss.NewStyle().Foreground(p.meta)

	labelStyle = lipgloss.NewStyle().Foreground(p.dim)
	inputPlaceholderStyle = lipgloss.NewStyle().Foreground(p.faint)
	overlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.accent).
		Padding(0, 2)
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}
