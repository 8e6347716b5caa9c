package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Play in the current terminal.

Controls:
  Space/Up/W/Enter/Click - Flap (start and restart too)
  Tab                    - Leaderboard (when not playing)
  Q/Ctrl+C               - Quit

The terminal owns stdout, so logs are only written with --log-file.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --log-file /tmp/flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Only a log file receives output; the alt screen owns stdout.
	logger, closeLog, err := newLogger(cfg, nil)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("config loaded", "source", source)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open attempt ledger", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	err = tui.Run(tui.ModelOptions{
		Game:            flappy.New(cfg.GameOptions()),
		Store:           store,
		Logger:          logger,
		Runtime:         cfg.Runtime(width, height),
		Mouse:           cfg.Terminal.Mouse,
		LeaderboardSize: cfg.Leaderboard.Size,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
