package tui

import (
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/platform/scene"
)

// Runes used when rasterizing shapes into cells.
const (
	runeFill     = '█'
	runeTriangle = '▶'
	runeHLine    = '─'
	runeVLine    = '│'
)

// Rasterize paints frame onto s, scaling world units to the screen size.
// Detail shapes are skipped: they are smaller than a cell at any
// reasonable terminal size.
func Rasterize(frame scene.Frame, s *core.Screen) {
	s.Fill(' ', frame.Background)
	if s.Width() == 0 || s.Height() == 0 || frame.Width <= 0 || frame.Height <= 0 {
		return
	}

	r := raster{
		s:  s,
		sx: float64(s.Width()) / frame.Width,
		sy: float64(s.Height()) / frame.Height,
	}
	for _, sh := range frame.Shapes {
		if sh.Detail {
			continue
		}
		switch sh.Kind {
		case scene.KindRect:
			s.FillRect(r.cells(sh.Box), runeFill, sh.Color)
		case scene.KindOutline:
			s.DrawBox(r.cells(sh.Box), sh.Color)
		case scene.KindCircle:
			r.circle(sh)
		case scene.KindTriangle:
			r.triangle(sh)
		case scene.KindLine:
			r.line(sh)
		case scene.KindText:
			r.text(sh)
		}
	}
}

// raster holds the world-to-cell scale for one frame.
type raster struct {
	s      *core.Screen
	sx, sy float64
}

func (r raster) cells(b core.Box) core.Rect {
	return b.Scale(r.sx, r.sy).Cells()
}

func (r raster) point(p scene.Point) (float64, float64) {
	return p.X * r.sx, p.Y * r.sy
}

// circle fills every cell whose center lies inside the scaled ellipse.
// A circle that covers no cell center still marks the cell it sits in.
func (r raster) circle(sh scene.Shape) {
	cx, cy := r.point(sh.Center)
	rx, ry := sh.Radius*r.sx, sh.Radius*r.sy
	if rx <= 0 || ry <= 0 {
		return
	}

	hit := false
	for y := int(math.Floor(cy - ry)); y <= int(math.Ceil(cy+ry)); y++ {
		for x := int(math.Floor(cx - rx)); x <= int(math.Ceil(cx+rx)); x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				r.s.SetCell(x, y, runeFill, sh.Color)
				hit = true
			}
		}
	}
	if !hit {
		r.s.SetCell(int(math.Floor(cx)), int(math.Floor(cy)), runeFill, sh.Color)
	}
}

// triangle fills cells whose centers lie inside the scaled triangle, or the
// cell holding its centroid when the triangle is too small to cover one.
func (r raster) triangle(sh scene.Shape) {
	var xs, ys [3]float64
	for i, p := range sh.Points {
		xs[i], ys[i] = r.point(p)
	}

	minX := int(math.Floor(min(xs[0], xs[1], xs[2])))
	maxX := int(math.Ceil(max(xs[0], xs[1], xs[2])))
	minY := int(math.Floor(min(ys[0], ys[1], ys[2])))
	maxY := int(math.Ceil(max(ys[0], ys[1], ys[2])))

	hit := false
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if insideTriangle(float64(x)+0.5, float64(y)+0.5, xs, ys) {
				r.s.SetCell(x, y, runeTriangle, sh.Color)
				hit = true
			}
		}
	}
	if !hit {
		cx := (xs[0] + xs[1] + xs[2]) / 3
		cy := (ys[0] + ys[1] + ys[2]) / 3
		r.s.SetCell(int(math.Floor(cx)), int(math.Floor(cy)), runeTriangle, sh.Color)
	}
}

// insideTriangle reports whether (px, py) is on the inner side of all three
// edges, for either winding.
func insideTriangle(px, py float64, xs, ys [3]float64) bool {
	var pos, neg bool
	for i := range 3 {
		j := (i + 1) % 3
		cross := (xs[j]-xs[i])*(py-ys[i]) - (ys[j]-ys[i])*(px-xs[i])
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
	}
	return !(pos && neg)
}

// line steps along the segment one cell at a time.
func (r raster) line(sh scene.Shape) {
	x0, y0 := r.point(sh.Points[0])
	x1, y1 := r.point(sh.Points[1])
	dx, dy := x1-x0, y1-y0

	ch := runeHLine
	if math.Abs(dy) > math.Abs(dx) {
		ch = runeVLine
	}

	steps := int(math.Ceil(max(math.Abs(dx), math.Abs(dy))))
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		x := int(math.Floor(x0 + dx*t))
		y := int(math.Floor(y0 + dy*t))
		r.s.SetCell(x, y, ch, sh.Color)
	}
}

func (r raster) text(sh scene.Shape) {
	x, y := r.point(sh.Center)
	row := int(math.Floor(y))
	if sh.Centered {
		r.s.DrawTextCentered(row, sh.Text, sh.Color)
		return
	}
	r.s.DrawText(int(math.Floor(x)), row, sh.Text, sh.Color)
}
