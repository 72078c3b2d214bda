package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Start an interactive game. Press the start key to begin.

Default controls:
  Left/A, Right/D  - Move
  Up/W             - Rotate clockwise
  Down/S           - Soft drop (+1 point)
  Space            - Hard drop (+2 points per row)
  C                - Hold
  P                - Pause
  Enter/R          - Start or restart
  Tab              - Session high scores
  Q/Ctrl+C         - Quit

Scores are kept only until the program exits.

Examples:
  blockfall play
  blockfall play --seed 42
  blockfall play --log-file /tmp/blockfall.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	bindings, err := cfg.Bindings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, cfg)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	// Open the session scoreboard
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open scoreboard", "error", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	runErr := tui.Run(rc, tui.Options{
		Keys:   bindings,
		Ghost:  cfg.Display.Ghost,
		Theme:  cfg.Display.Theme,
		Logger: logger,
		Store:  store,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
