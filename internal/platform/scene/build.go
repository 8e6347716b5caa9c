package scene

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// Backdrop layout.
const (
	CloudCount   = 5
	CloudSpacing = 200.0
	CloudRow     = 100.0 // y of the first cloud
	CloudStep    = 30.0  // each further cloud sits this much lower
	cloudSpan    = uint64(flappy.WorldWidth + 400)
	cloudLead    = 200.0 // clouds wrap in from this far left of the screen

	GrassHeight = 20.0
	GrassStep   = 20.0
	GrassDash   = 10.0
)

// Obstacle decoration.
const (
	CapHeight    = 20.0
	CapOverhang  = 5.0
	OutlineWidth = 3.0
)

// HUD and overlay text positions.
const (
	hudX       = 20.0
	scoreY     = 20.0
	highScoreY = 60.0
)

// Build describes the frame for snap.
func Build(snap flappy.Snapshot) Frame {
	f := Frame{
		Width:      flappy.WorldWidth,
		Height:     flappy.WorldHeight,
		Background: core.ColorSky,
		Shapes:     make([]Shape, 0, 64),
	}

	f.clouds(snap.Tick)
	for _, o := range snap.Obstacles {
		f.obstacle(o)
	}
	f.ground()
	f.avatar(snap.Avatar, snap.Tick)
	f.hud(snap)
	f.overlay(snap)
	return f
}

// CloudX returns the left position of cloud i at the given tick.
// Clouds drift one unit every three ticks and wrap around.
func CloudX(tick uint64, i int) float64 {
	return float64((tick/3+uint64(i)*uint64(CloudSpacing))%cloudSpan) - cloudLead
}

func (f *Frame) clouds(tick uint64) {
	for i := range CloudCount {
		x := CloudX(tick, i)
		y := CloudRow + float64(i)*CloudStep
		f.Circle(x, y, 30, core.ColorCloud, false)
		f.Circle(x+20, y-10, 25, core.ColorCloud, false)
		f.Circle(x+40, y, 30, core.ColorCloud, false)
	}
}

func (f *Frame) obstacle(o flappy.Obstacle) {
	top := o.TopRect()
	f.Rect(top, core.ColorPipe)
	f.Outline(top, core.ColorPipeEdge, OutlineWidth, false)

	topCap := core.NewBox(o.X-CapOverhang, o.GapTop()-CapHeight, flappy.ObstacleWidth+2*CapOverhang, CapHeight)
	f.Rect(topCap, core.ColorPipe)
	f.Outline(topCap, core.ColorPipeEdge, OutlineWidth, true)

	// The bottom segment is drawn down to the screen edge; the ground covers the rest.
	bottom := core.BoxSpan(o.X, o.GapBottom(), o.Right(), flappy.WorldHeight)
	f.Rect(bottom, core.ColorPipe)
	f.Outline(bottom, core.ColorPipeEdge, OutlineWidth, false)

	bottomCap := core.NewBox(o.X-CapOverhang, o.GapBottom(), flappy.ObstacleWidth+2*CapOverhang, CapHeight)
	f.Rect(bottomCap, core.ColorPipe)
	f.Outline(bottomCap, core.ColorPipeEdge, OutlineWidth, true)
}

func (f *Frame) ground() {
	top := flappy.PlayBottom
	f.Rect(core.NewBox(0, top, flappy.WorldWidth, flappy.GroundHeight), core.ColorGround)
	f.Rect(core.NewBox(0, top, flappy.WorldWidth, GrassHeight), core.ColorGrass)

	y := top + GrassHeight/2
	for x := 0.0; x < flappy.WorldWidth; x += GrassStep {
		f.Line(Point{x, y}, Point{x + GrassDash, y}, core.ColorGrassDetail, OutlineWidth, true)
	}
}

// WingOffset returns the vertical wing displacement at tick.
func WingOffset(tick uint64) float64 {
	return math.Sin(float64(tick)/6) * 5
}

func (f *Frame) avatar(a flappy.Avatar, tick uint64) {
	x, y := a.X, a.Y
	f.Circle(x, y, a.Radius, core.ColorAvatar, false)

	f.Circle(x+8, y-5, 6, core.ColorEye, true)
	f.Circle(x+10, y-7, 2, core.ColorPupil, true)

	f.Triangle(Point{x + 15, y}, Point{x + 30, y - 5}, Point{x + 30, y + 5}, core.ColorBeak, false)

	w := WingOffset(tick)
	f.Triangle(Point{x - 10, y}, Point{x - 20, y - 10 + w}, Point{x, y + 5 + w}, core.ColorWing, true)
}

func (f *Frame) hud(snap flappy.Snapshot) {
	f.Text(hudX, scoreY, fmt.Sprintf("Score: %d", snap.Score), TextLarge, core.ColorText)
	f.Text(hudX, highScoreY, fmt.Sprintf("High Score: %d", snap.HighScore), TextSmall, core.ColorText)
}

func (f *Frame) overlay(snap flappy.Snapshot) {
	mid := f.Height / 2
	switch snap.Mode {
	case flappy.ModeStart:
		f.TextCentered(mid-100, "FLAPPY BIRD", TextLarge, core.ColorTitle)
		f.TextCentered(mid-50, "Press SPACE or Click to Start", TextLarge, core.ColorText)
	case flappy.ModeGameOver:
		f.TextCentered(mid-50, "GAME OVER", TextLarge, core.ColorAlert)
		f.TextCentered(mid, fmt.Sprintf("Score: %d", snap.Score), TextLarge, core.ColorText)
		f.TextCentered(mid+50, "Press SPACE or Click to Restart", TextLarge, core.ColorText)
	}
}
