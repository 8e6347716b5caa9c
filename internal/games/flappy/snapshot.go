package flappy

// Snapshot captures everything a frontend needs to draw one frame.
// It shares no memory with the game.
type Snapshot struct {
	Tick      uint64
	Mode      Mode
	Score     int
	HighScore int
	Attempt   int
	Avatar    Avatar
	Obstacles []Obstacle
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]Obstacle, g.field.Len())
	copy(obstacles, g.field.Obstacles())

	return Snapshot{
		Tick:      g.tick,
		Mode:      g.mode,
		Score:     g.score,
		HighScore: g.highScore,
		Attempt:   g.attempt,
		Avatar:    g.avatar,
		Obstacles: obstacles,
	}
}
