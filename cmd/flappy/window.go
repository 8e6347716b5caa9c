package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/window"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 game window.

Controls:
  Space/Up/W/Enter/Click - Flap (start and restart too)
  Esc or close the window - Quit

Examples:
  flappy window
  flappy window --scale 1.5`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 0, "Window scale factor (default from config: 1)")
}

func runWindow(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("scale") {
		cfg.Window.Scale = flagScale
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("config loaded", "source", source)

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open attempt ledger", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return window.Run(window.Options{
		Game:     flappy.New(cfg.GameOptions()),
		Store:    store,
		Logger:   logger,
		TickRate: cfg.TickRate,
		Scale:    cfg.Window.Scale,
		Title:    cfg.Window.Title,
	})
}
