package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Obstacle is a vertical barrier with a passable gap, scrolling leftwards.
type Obstacle struct {
	X         float64 // Left edge
	GapCenter float64 // Vertical middle of the gap, fixed at spawn
	Passed    bool    // Set once the trailing edge is behind the avatar
}

// Right returns the x-coordinate of the trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + ObstacleWidth
}

// GapTop returns the y-coordinate where the gap begins.
func (o Obstacle) GapTop() float64 {
	return o.GapCenter - GapHeight/2
}

// GapBottom returns the y-coordinate where the gap ends.
func (o Obstacle) GapBottom() float64 {
	return o.GapCenter + GapHeight/2
}

// TopRect returns the collision box from the top of the screen to the gap.
func (o Obstacle) TopRect() core.Box {
	return core.BoxSpan(o.X, 0, o.Right(), o.GapTop())
}

// BottomRect returns the collision box from the gap to the ground.
func (o Obstacle) BottomRect() core.Box {
	return core.BoxSpan(o.X, o.GapBottom(), o.Right(), PlayBottom)
}

// Collides reports whether box touches either solid segment.
func (o Obstacle) Collides(box core.Box) bool {
	return box.Overlaps(o.TopRect()) || box.Overlaps(o.BottomRect())
}

// Offscreen reports whether the obstacle has fully left the visible area.
func (o Obstacle) Offscreen() bool {
	return o.Right() < 0
}

// Advance scrolls the obstacle one tick to the left.
func (o *Obstacle) Advance() {
	o.X -= ScrollSpeed
}

// ObstacleField handles spawning, scrolling and retirement of obstacles.
// Obstacles are kept in spawn order, which is also their screen order.
type ObstacleField struct {
	obstacles []Obstacle
	rng       *rand.Rand
}

// NewObstacleField creates an empty field drawing gap positions from rng.
func NewObstacleField(rng *rand.Rand) *ObstacleField {
	return &ObstacleField{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
	}
}

// Clear removes all obstacles. The RNG stream continues.
func (f *ObstacleField) Clear() {
	f.obstacles = f.obstacles[:0]
}

// Spawn adds an obstacle at the right edge with a uniformly drawn gap center.
func (f *ObstacleField) Spawn() Obstacle {
	lo, hi := GapMargin, PlayBottom-GapMargin
	o := Obstacle{
		X:         WorldWidth,
		GapCenter: lo + f.rng.Float64()*(hi-lo),
	}
	f.obstacles = append(f.obstacles, o)
	return o
}

// Update scrolls every obstacle, then checks each one in spawn order for
// pass-through and collision against avatar. Obstacles that left the screen
// are retired after all checks. Returns the number of obstacles newly passed
// and whether any of them hit the avatar.
func (f *ObstacleField) Update(avatar *Avatar) (passed int, hit bool) {
	box := avatar.Box()
	for i := range f.obstacles {
		o := &f.obstacles[i]
		o.Advance()

		if !o.Passed && o.Right() < avatar.X {
			o.Passed = true
			passed++
		}
		if o.Collides(box) {
			hit = true
		}
	}

	f.retire()
	return passed, hit
}

// retire rebuilds the slice from the obstacles still on screen.
func (f *ObstacleField) retire() {
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if !o.Offscreen() {
			kept = append(kept, o)
		}
	}
	f.obstacles = kept
}

// Obstacles returns the live obstacles. The slice must not be modified.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of live obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}
