package tui

import (
	"strings"
	"testing"

	"github.com/alwaysganesh09/teamtitans06/internal/state"
)

func TestHelpEntryContainsKeyAndLabel(t *testing.T) {
	got := helpEntry("q", "quit")
	if !strings.Contains(got, "q") || !strings.Contains(got, "quit") {
		t.Errorf("helpEntry() = %q, want key and label", got)
	}
}

func TestPalettesCoverEveryTheme(t *testing.T) {
	for _, name := range []string{state.ThemeDark, state.ThemeLight} {
		if _, ok := palettes[name]; !ok {
			t.Errorf("no palette for theme %q", name)
		}
	}
}

func TestApplyThemeUnknownFallsBack(t *testing.T) {
	defer applyTheme(state.ThemeDark)
	applyTheme("neon")
	if got := errorStyle.GetForeground(); got != palettes[state.ThemeDark].danger {
		t.Errorf("error foreground = %v, want dark palette", got)
	}
	applyTheme(state.ThemeLight)
	if got := errorStyle.GetForeground(); got != palettes[state.ThemeLight].danger {
		t.Errorf("error foreground = %v, want light palette", got)
	}
}
