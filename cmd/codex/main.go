// ABOUTME: Entry point for the codex terminal client
// ABOUTME: Loads env and config, opens history, then starts the Bubbletea app
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/lauraanormann/codex/internal/config"
	"github.com/lauraanormann/codex/internal/history"
	"github.com/lauraanormann/codex/internal/logger"
	"github.com/lauraanormann/codex/internal/tui"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// Optional .env for local overrides; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if cfg.Logging.Enabled {
		logger.SetVerbose(cfg.Logging.Level == "debug")
		if err := logger.SetupFile(cfg.Logging.File); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer logger.Close()
	}
	logger.Info("codex %s (built %s) starting", version, buildTime)

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	m := tui.NewModel(cfg, store)

	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
