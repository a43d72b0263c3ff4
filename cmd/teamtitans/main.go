package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/alwaysganesh09/teamtitans06/internal/config"
	"github.com/alwaysganesh09/teamtitans06/internal/logging"
	"github.com/alwaysganesh09/teamtitans06/internal/state"
	"github.com/alwaysganesh09/teamtitans06/internal/tui"
	"github.com/alwaysganesh09/teamtitans06/pkg/client"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	cmd := ""
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "--version", "version", "-v":
		fmt.Fprintln(out, "teamtitans "+version)
		return nil
	case "help", "--help", "-h":
		printHelp(out)
		return nil
	case "", "login", "logout", "contact", "theme":
	default:
		return fmt.Errorf("unknown command %q (run: teamtitans help)", cmd)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck

	store := state.Open(cfg.StateDir)
	opts := tui.Options{Version: version, NoticeTTL: cfg.NoticeTTL, Log: log}

	switch cmd {
	case "logout":
		return runLogout(store, log, out)
	case "theme":
		return runTheme(store, args[1:], out)
	case "login":
		if store.Authenticated() {
			fmt.Fprintln(out, "Already logged in. Run teamtitans to open the console.")
			return nil
		}
	}

	c := client.New(cfg.APIURL, cfg.HTTPTimeout)
	log.WithFields(logrus.Fields{"cmd": cmd, "api": cfg.APIURL, "version": version}).Info("starting")

	var model tea.Model
	if cmd == "contact" {
		model = tui.NewContactApp(c, opts)
	} else {
		model = tui.NewApp(c, store, opts)
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func runLogout(store *state.Store, log logrus.FieldLogger, out io.Writer) error {
	if !store.Authenticated() {
		fmt.Fprintln(out, "Already logged out.")
		return nil
	}
	if err := store.SetAuthenticated(false); err != nil {
		return fmt.Errorf("clear login: %w", err)
	}
	log.Info("admin logged out")
	fmt.Fprintln(out, "Logged out.")
	return nil
}

func runTheme(store *state.Store, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintln(out, store.Theme())
		return nil
	}
	if err := store.SetTheme(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(out, "Theme set to %s.\n", args[0])
	return nil
}
