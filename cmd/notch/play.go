package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/notch-dino/internal/config"
	"github.com/vovakirdan/notch-dino/internal/core"
	"github.com/vovakirdan/notch-dino/internal/platform/tui"
	"github.com/vovakirdan/notch-dino/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the widget locally",
	Long: `Show the notch island at the top of the terminal.

Controls:
  Enter / click island   - Open the island (starts or resumes the game)
  Esc / click elsewhere  - Collapse the island (pauses the game)
  Space / tap            - Jump; restart after game over
  Tab                    - Toggle the runs table
  ?                      - Show all keys
  Q / Ctrl+C             - Quit

Examples:
  notch play
  notch play --seed 42
  notch play --config ./fast.toml --log-file /tmp/notch.log --log-level debug`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := playWidget(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playWidget runs the local widget. Everything it opens is closed before it
// returns, so the caller may exit right after.
func playWidget() error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logOut, err := openLogFile()
	if err != nil {
		return err
	}
	defer logOut.Close()

	logger, err := newLogger(logOut, "notch")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// The ledger only feeds the runs table of this process
	store, err := storage.Open()
	if err != nil {
		logger.Warn("Could not open run ledger", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	err = tui.Run(tui.Options{
		Game: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Session: localSession(),
		Store:   store,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("Widget stopped", "error", err)
		return fmt.Errorf("running widget: %w", err)
	}
	return nil
}

// localSession names local runs after the OS user.
func localSession() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
