package core

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig contains what a frontend knows about its environment.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells (terminal) or pixels (window)
	ScreenH  int   // Screen height in cells or pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means seed from the current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// EffectiveTickRate returns TickRate, falling back to the default when the
// configured rate is not positive.
func (c RuntimeConfig) EffectiveTickRate() int {
	if c.TickRate <= 0 {
		return DefaultTickRate
	}
	return c.TickRate
}

// GameState summarizes the game for the platform layer.
type GameState struct {
	Score     int  // Obstacles passed in the current attempt
	HighScore int  // Best score seen during this process
	Attempt   int  // 1-based attempt number, 0 before the first start
	Playing   bool // Whether the simulation is advancing
	GameOver  bool // Whether the current attempt has ended
}

// Event flags things that happened during a single tick.
type Event uint16

const (
	EventStarted Event = 1 << iota
	EventFlapped
	EventSpawned
	EventScored
	EventDied
	EventRestarted
	EventHighScore
)

// Has reports whether all bits of flag are set.
func (e Event) Has(flag Event) bool {
	return e&flag == flag
}

// StepResult is returned by each simulation tick.
type StepResult struct {
	State  GameState
	Events Event
}
