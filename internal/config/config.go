// Package config provides YAML-based configuration for the frontends.
// Physics and obstacle constants are fixed in the game package; only
// platform concerns (pacing, seeding, terminal, window, SSH, logging)
// are configurable.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// Timing selects how obstacle spawns are paced.
type Timing string

const (
	// TimingTicks spawns every fixed number of simulation ticks.
	TimingTicks Timing = "ticks"
	// TimingWallClock spawns after a fixed amount of real time.
	TimingWallClock Timing = "wallclock"
)

// MaxTickRate bounds tick_rate; beyond it the terminal cannot keep up.
const MaxTickRate = 240

// Config is the complete runtime configuration.
type Config struct {
	TickRate    int               `yaml:"tick_rate"`
	Seed        int64             `yaml:"seed"` // 0 = seed from the clock
	Timing      Timing            `yaml:"timing"`
	Terminal    TerminalConfig    `yaml:"terminal"`
	Window      WindowConfig      `yaml:"window"`
	SSH         SSHConfig         `yaml:"ssh"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Log         LogConfig         `yaml:"log"`
}

// TerminalConfig controls the Bubble Tea frontend.
type TerminalConfig struct {
	Mouse bool `yaml:"mouse"` // Whether a left click flaps
}

// WindowConfig controls the desktop frontend.
type WindowConfig struct {
	Scale float64 `yaml:"scale"`
	Title string  `yaml:"title"`
}

// SSHConfig controls the SSH server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"` // Empty = ~/.flappy/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LeaderboardConfig controls the attempt table.
type LeaderboardConfig struct {
	Size int `yaml:"size"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty = stderr, or nowhere in terminal mode
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.TickRate <= 0 || c.TickRate > MaxTickRate {
		return fmt.Errorf("config: tick_rate must be in [1, %d], got %d", MaxTickRate, c.TickRate)
	}
	switch c.Timing {
	case TimingTicks, TimingWallClock:
	default:
		return fmt.Errorf("config: unknown timing %q (want %q or %q)", c.Timing, TimingTicks, TimingWallClock)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("config: window.scale must be positive, got %v", c.Window.Scale)
	}
	if c.Leaderboard.Size < 0 {
		return fmt.Errorf("config: leaderboard.size must not be negative, got %d", c.Leaderboard.Size)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("config: ssh.idle_timeout must not be negative, got %v", c.SSH.IdleTimeout)
	}
	return nil
}

// Runtime returns the core runtime settings for a screen of the given size.
func (c Config) Runtime(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: c.TickRate,
		Seed:     c.Seed,
	}
}

// GameOptions returns fresh collaborators for one game instance.
// Each call builds a new spawn clock, so games never share pacing state.
func (c Config) GameOptions() flappy.Options {
	opts := flappy.Options{Seed: c.Seed}
	if c.Timing == TimingWallClock {
		opts.Clock = flappy.NewWallClock(flappy.SpawnInterval, nil)
	} else {
		opts.Clock = flappy.NewTickClock(flappy.SpawnIntervalTicks)
	}
	return opts
}
