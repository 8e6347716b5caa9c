package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/flappy.yaml and is the base every file is decoded over.
func Default() Config {
	return Config{
		TickRate: core.DefaultTickRate,
		Timing:   TimingTicks,
		Terminal: TerminalConfig{
			Mouse: true,
		},
		Window: WindowConfig{
			Scale: 1,
			Title: "Flappy Bird Clone",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Leaderboard: LeaderboardConfig{
			Size: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
