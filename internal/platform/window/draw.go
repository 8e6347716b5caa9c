package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy-arcade/internal/platform/scene"
)

// painter draws scene frames onto an ebiten image.
type painter struct {
	faces faces
	white *ebiten.Image
}

func newPainter(fs faces) *painter {
	return &painter{faces: fs}
}

// source returns a 1x1 white image used as the texture for filled paths.
func (p *painter) source() *ebiten.Image {
	if p.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		p.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return p.white
}

// Draw paints f onto dst. Frame units map one to one onto pixels.
func (p *painter) Draw(dst *ebiten.Image, f scene.Frame) {
	dst.Fill(rgba(f.Background))

	for _, s := range f.Shapes {
		clr := rgba(s.Color)
		switch s.Kind {
		case scene.KindRect:
			b := s.Box
			vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, false)
		case scene.KindOutline:
			b := s.Box
			vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), float32(s.Stroke), clr, false)
		case scene.KindCircle:
			vector.DrawFilledCircle(dst, float32(s.Center.X), float32(s.Center.Y), float32(s.Radius), clr, true)
		case scene.KindTriangle:
			p.triangle(dst, s.Points, clr)
		case scene.KindLine:
			a, b := s.Points[0], s.Points[1]
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(s.Stroke), clr, false)
		case scene.KindText:
			x, y := p.faces.origin(s)
			text.Draw(dst, s.Text, p.faces[s.Size], x, y, clr)
		}
	}
}

func (p *painter) triangle(dst *ebiten.Image, pts [3]scene.Point, clr color.RGBA) {
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	path.LineTo(float32(pts[1].X), float32(pts[1].Y))
	path.LineTo(float32(pts[2].X), float32(pts[2].Y))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, p.source(), op)
}
