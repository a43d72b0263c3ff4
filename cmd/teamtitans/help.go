package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

func printHelp(w io.Writer) {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6c8cff")).
		Bold(true).
		Render("T E A M   T I T A N S")

	tagline := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render("Portfolio admin console")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	commands := []struct{ cmd, desc string }{
		{"teamtitans", "Open the admin console (interactive TUI)"},
		{"teamtitans login", "Sign in with the admin password"},
		{"teamtitans logout", "Forget the saved login"},
		{"teamtitans contact", "Send a message through the contact form"},
		{"teamtitans theme [name]", "Show or set the theme (dark, light)"},
		{"teamtitans --version", "Show version"},
		{"teamtitans help", "You are here"},
	}

	fmt.Fprintf(w, "\n  %s\n  %s\n\n  Commands:\n", title, tagline)
	for _, c := range commands {
		fmt.Fprintf(w, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-24s", c.cmd)), descStyle.Render(c.desc))
	}

	envs := []struct{ name, desc string }{
		{"TEAMTITANS_API_URL", "API base URL (default http://localhost:5000)"},
		{"TEAMTITANS_STATE_DIR", "Saved login and theme (default ~/.teamtitans)"},
		{"TEAMTITANS_LOG_FILE", "Log file (default <state dir>/teamtitans.log)"},
		{"TEAMTITANS_LOG_LEVEL", "debug, info, warn, error (default info)"},
		{"TEAMTITANS_HTTP_TIMEOUT", "Per-request timeout (default 30s)"},
		{"TEAMTITANS_NOTICE_TTL", "How long notices stay up (default 4s)"},
	}
	fmt.Fprintf(w, "\n  Environment (also read from .env):\n")
	for _, e := range envs {
		fmt.Fprintf(w, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-24s", e.name)), descStyle.Render(e.desc))
	}
	fmt.Fprintln(w)
}
