package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/scene"
)

func rasterized(t *testing.T, snap flappy.Snapshot, w, h int) *core.Screen {
	t.Helper()
	s := core.NewScreen(w, h)
	Rasterize(scene.Build(snap), s)
	return s
}

func startSnapshot() flappy.Snapshot {
	return flappy.Snapshot{Mode: flappy.ModeStart, Avatar: flappy.NewAvatar()}
}

func TestRasterizeStartScreen(t *testing.T) {
	s := rasterized(t, startSnapshot(), 80, 24)

	tests := []struct {
		row  int
		text string
	}{
		{0, "Score: 0"},
		{2, "High Score: 0"},
		{8, "FLAPPY BIRD"},
		{10, "Press SPACE or Click to Start"},
	}
	for _, tc := range tests {
		if !strings.Contains(s.Row(tc.row), tc.text) {
			t.Errorf("row %d = %q, expected it to contain %q", tc.row, s.Row(tc.row), tc.text)
		}
	}
}

func TestRasterizeLayers(t *testing.T) {
	snap := startSnapshot()
	snap.Mode = flappy.ModePlaying
	snap.Obstacles = []flappy.Obstacle{{X: 400, GapCenter: 250}}
	s := rasterized(t, snap, 80, 24)

	tests := []struct {
		name  string
		x, y  int
		rune  rune
		color core.Color
	}{
		{"sky", 70, 18, ' ', core.ColorSky},
		{"grass", 5, 20, runeFill, core.ColorGrass},
		{"ground", 5, 23, runeFill, core.ColorGround},
		{"avatar", 26, 11, runeFill, core.ColorAvatar},
		{"beak", 29, 12, runeTriangle, core.ColorBeak},
		{"top pipe", 43, 3, runeFill, core.ColorPipe},
		{"top pipe edge", 40, 0, '┌', core.ColorPipeEdge},
		{"bottom pipe", 43, 15, runeFill, core.ColorPipe},
		{"gap", 43, 10, ' ', core.ColorSky},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := s.GetCell(tc.x, tc.y)
			if got.Rune != tc.rune || got.Color != tc.color {
				t.Errorf("cell (%d, %d) = %q/%v, expected %q/%v", tc.x, tc.y, got.Rune, got.Color, tc.rune, tc.color)
			}
		})
	}
}

func TestRasterizeSkipsDetails(t *testing.T) {
	s := rasterized(t, startSnapshot(), 80, 24)

	for y := range s.Height() {
		for x := range s.Width() {
			switch c := s.GetCell(x, y).Color; c {
			case core.ColorEye, core.ColorPupil, core.ColorWing, core.ColorGrassDetail:
				t.Fatalf("detail color %v drawn at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestRasterizeTinyCircleStillVisible(t *testing.T) {
	f := scene.Frame{Width: 800, Height: 600, Background: core.ColorSky}
	f.Circle(405, 305, 1, core.ColorAvatar, false)

	s := core.NewScreen(80, 24)
	Rasterize(f, s)

	if got := s.GetCell(40, 12); got.Color != core.ColorAvatar {
		t.Errorf("tiny circle missing, cell = %+v", got)
	}
}

func TestRasterizeScalesToScreen(t *testing.T) {
	f := scene.Frame{Width: 800, Height: 600, Background: core.ColorSky}
	f.Rect(core.NewBox(400, 300, 400, 300), core.ColorGround)

	for _, size := range [][2]int{{80, 24}, {120, 40}, {33, 11}} {
		s := core.NewScreen(size[0], size[1])
		Rasterize(f, s)

		if got := s.GetCell(size[0]-1, size[1]-1).Color; got != core.ColorGround {
			t.Errorf("%dx%d: bottom-right cell = %v, expected ground", size[0], size[1], got)
		}
		if got := s.GetCell(0, 0).Color; got != core.ColorSky {
			t.Errorf("%dx%d: top-left cell = %v, expected sky", size[0], size[1], got)
		}
	}
}

func TestRasterizeEmptyScreen(t *testing.T) {
	s := core.NewScreen(0, 0)
	Rasterize(scene.Build(startSnapshot()), s)
}

func TestInsideTriangle(t *testing.T) {
	xs := [3]float64{0, 10, 0}
	ys := [3]float64{0, 0, 10}

	tests := []struct {
		x, y     float64
		expected bool
	}{
		{1, 1, true},
		{5, 5, true}, // on the hypotenuse
		{6, 6, false},
		{-1, 1, false},
	}
	for _, tc := range tests {
		if got := insideTriangle(tc.x, tc.y, xs, ys); got != tc.expected {
			t.Errorf("insideTriangle(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}

	// Reversed winding gives the same answer.
	xs[1], xs[2] = xs[2], xs[1]
	ys[1], ys[2] = ys[2], ys[1]
	if !insideTriangle(1, 1, xs, ys) {
		t.Error("winding should not matter")
	}
}
