// Package main is the entry point for the lazysvn application.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	urfavecli "github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/unijfdev/lazysvn/internal/app"
	"github.com/unijfdev/lazysvn/internal/buildinfo"
	"github.com/unijfdev/lazysvn/internal/config"
	"github.com/unijfdev/lazysvn/internal/log"
	"github.com/unijfdev/lazysvn/internal/theme"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	buildinfo.Set(version, commit, date)
	buildinfo.Enrich()

	cliApp := &urfavecli.App{
		Name:      "lazysvn",
		Usage:     "A TUI front-end for Subversion working copies",
		UsageText: "lazysvn [options] [working-copy-path]",
		Version:   buildinfo.Version(),

		Flags: globalFlags(),

		Action: runTUI,
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// runTUI launches the interactive UI against the working copy named by the
// first positional argument, defaulting to the current directory.
func runTUI(c *urfavecli.Context) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("lazysvn requires an interactive terminal")
	}

	// Set up debug logging before loading config
	if debugLog := c.String("debug-log"); debugLog != "" {
		path := debugLog
		if expanded, err := config.ExpandPath(debugLog); err == nil {
			path = expanded
		}
		if err := log.SetFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", path, err)
		}
	}

	cfg, err := config.LoadConfig(c.String("config-file"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	// If debug log wasn't set via flag, check if it's in the config
	if c.String("debug-log") == "" {
		if cfg.DebugLog != "" {
			path := cfg.DebugLog
			if expanded, err := config.ExpandPath(cfg.DebugLog); err == nil {
				path = expanded
			}
			if err := log.SetFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "Error opening debug log file from config %q: %v\n", path, err)
			}
		} else {
			// No debug log configured, discard any buffered logs
			_ = log.SetFile("")
		}
	}

	if name := c.String("theme"); name != "" {
		if !theme.IsKnown(name) {
			_ = log.Close()
			return fmt.Errorf("unknown theme %q (available: %s)",
				name, strings.Join(theme.AvailableThemes(), ", "))
		}
		cfg.Theme = name
	}
	if bin := c.String("svn-bin"); bin != "" {
		cfg.SvnBin = bin
	}
	if c.Bool("no-icons") {
		cfg.ShowIcons = false
	}

	workingCopy := c.Args().First()
	if workingCopy == "" {
		workingCopy = "."
	}
	if expanded, err := config.ExpandPath(workingCopy); err == nil {
		workingCopy = expanded
	}

	log.Printf("lazysvn %s starting in %s", buildinfo.String(), workingCopy)

	model := app.NewAppModel(cfg, workingCopy)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		_ = log.Close()
		return err
	}

	return log.Close()
}
