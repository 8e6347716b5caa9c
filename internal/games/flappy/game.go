// Package flappy implements a Flappy Bird-style game.
// The player keeps a falling avatar alive by flapping through the gaps of
// obstacles that scroll in from the right. The package holds only the
// simulation; frontends read a Snapshot and draw it themselves.
package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// World geometry, in world units. Frontends scale it to cells or pixels.
const (
	WorldWidth   = 800.0
	WorldHeight  = 600.0
	GroundHeight = 100.0
	PlayBottom   = WorldHeight - GroundHeight // Top of the ground band
)

// Physics constants, tuned for 60 ticks per second.
const (
	Gravity      = 0.5  // Downward acceleration per tick
	FlapImpulse  = -8.0 // Velocity set by a flap (negative = up)
	AvatarRadius = 20.0
	AvatarX      = float64(int(WorldWidth) / 3)
	AvatarStartY = WorldHeight / 2
)

// Obstacle constants.
const (
	ScrollSpeed   = 3.0   // How far obstacles move left per tick
	ObstacleWidth = 70.0  // Width of every obstacle
	GapHeight     = 150.0 // Height of the passable opening
	GapMargin     = 150.0 // Minimum distance from gap center to screen top or ground

	SpawnInterval      = 1800 * time.Millisecond
	SpawnIntervalTicks = 108 // SpawnInterval at 60 ticks per second
)

// Mode is the state of the game's state machine.
type Mode int

const (
	ModeStart Mode = iota
	ModePlaying
	ModeGameOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Options carries the game's collaborators. Zero values pick defaults.
type Options struct {
	// Rand draws obstacle gap positions. Nil seeds a new source from Seed.
	Rand *rand.Rand
	// Seed is used when Rand is nil; 0 means seed from the current time.
	Seed int64
	// Clock paces obstacle spawns. Nil uses a TickClock.
	Clock SpawnClock
}

// Game owns the avatar, the obstacle field and the score.
type Game struct {
	avatar    Avatar
	field     *ObstacleField
	clock     SpawnClock
	mode      Mode
	score     int
	highScore int
	attempt   int
	tick      uint64
}

// New creates a game in the start state.
func New(opts Options) *Game {
	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	clock := opts.Clock
	if clock == nil {
		clock = NewTickClock(SpawnIntervalTicks)
	}

	g := &Game{
		field: NewObstacleField(rng),
		clock: clock,
	}
	g.Reset()
	return g
}

// ID returns the identifier used for logs and the attempt ledger.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset returns to the start screen with a fresh avatar and no obstacles.
// The high score survives.
func (g *Game) Reset() {
	g.avatar = NewAvatar()
	g.field.Clear()
	g.mode = ModeStart
	g.score = 0
	g.attempt = 0
	g.tick = 0
	g.clock.Restart(g.tick)
}

// Restart begins a new attempt immediately, skipping the start screen.
// Everything but the high score and the attempt counter is reinitialized.
func (g *Game) Restart() {
	g.avatar = NewAvatar()
	g.field.Clear()
	g.score = 0
	g.begin()
}

func (g *Game) begin() {
	g.mode = ModePlaying
	g.attempt++
	g.clock.Restart(g.tick)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	primary := in.Has(core.ActionPrimary)

	var events core.Event
	switch g.mode {
	case ModeStart:
		if primary {
			g.begin()
			events |= core.EventStarted
		}
	case ModeGameOver:
		if primary {
			g.Restart()
			events |= core.EventRestarted
		}
	case ModePlaying:
		events = g.simulate(primary)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// simulate runs one playing tick: flap, physics, spawning, scoring,
// collision and the transition to game over.
func (g *Game) simulate(flap bool) core.Event {
	var events core.Event

	if flap {
		g.avatar.Flap()
		events |= core.EventFlapped
	}
	g.avatar.Advance()

	if g.clock.Due(g.tick) {
		g.field.Spawn()
		events |= core.EventSpawned
	}

	passed, hit := g.field.Update(&g.avatar)
	if passed > 0 {
		g.score += passed
		events |= core.EventScored
	}
	if hit {
		g.avatar.Alive = false
	}

	if !g.avatar.Alive {
		g.mode = ModeGameOver
		events |= core.EventDied
		if g.score > g.highScore {
			g.highScore = g.score
			events |= core.EventHighScore
		}
	}
	return events
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		Attempt:   g.attempt,
		Playing:   g.mode == ModePlaying,
		GameOver:  g.mode == ModeGameOver,
	}
}

// Mode returns the current state machine mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Score returns the number of obstacles passed in the current attempt.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score seen by this game.
func (g *Game) HighScore() int {
	return g.highScore
}

// Avatar returns a copy of the avatar.
func (g *Game) Avatar() Avatar {
	return g.avatar
}

// Tick returns the number of steps taken since the last Reset.
func (g *Game) Tick() uint64 {
	return g.tick
}
