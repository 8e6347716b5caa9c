// Package scene describes what a frame looks like, independent of how it is
// drawn. Build turns a game snapshot into an ordered list of shapes in world
// units; the terminal and the desktop window each rasterize that list their
// own way.
package scene

import (
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Kind selects how a Shape is interpreted.
type Kind uint8

const (
	KindRect     Kind = iota // Filled Box
	KindOutline              // Border of Box, Stroke units wide
	KindCircle               // Filled disc at Center with Radius
	KindTriangle             // Filled triangle through Points
	KindLine                 // Segment Points[0]-Points[1], Stroke units wide
	KindText                 // Text whose top edge is at Center.Y
)

// TextSize picks one of the two font sizes.
type TextSize uint8

const (
	TextLarge TextSize = iota
	TextSmall
)

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Shape is one drawing primitive. Only the fields relevant to Kind are set.
type Shape struct {
	Kind   Kind
	Color  core.Color
	Box    core.Box
	Center Point
	Radius float64
	Points [3]Point
	Stroke float64

	Text     string
	Size     TextSize
	Centered bool // Center.X is the horizontal middle of the text, not its left edge

	// Detail marks cosmetic shapes that low-resolution frontends may skip.
	Detail bool
}

// Frame is a complete picture, painted back to front.
type Frame struct {
	Width, Height float64
	Background    core.Color
	Shapes        []Shape
}

// Rect appends a filled rectangle.
func (f *Frame) Rect(b core.Box, c core.Color) {
	f.Shapes = append(f.Shapes, Shape{Kind: KindRect, Color: c, Box: b})
}

// Outline appends a rectangle border.
func (f *Frame) Outline(b core.Box, c core.Color, stroke float64, detail bool) {
	f.Shapes = append(f.Shapes, Shape{Kind: KindOutline, Color: c, Box: b, Stroke: stroke, Detail: detail})
}

// Circle appends a filled circle.
func (f *Frame) Circle(x, y, r float64, c core.Color, detail bool) {
	f.Shapes = append(f.Shapes, Shape{Kind: KindCircle, Color: c, Center: Point{x, y}, Radius: r, Detail: detail})
}

// Triangle appends a filled triangle.
func (f *Frame) Triangle(a, b, p Point, c core.Color, detail bool) {
	f.Shapes = append(f.Shapes, Shape{Kind: KindTriangle, Color: c, Points: [3]Point{a, b, p}, Detail: detail})
}

// Line appends a straight segment.
func (f *Frame) Line(a, b Point, c core.Color, stroke float64, detail bool) {
	f.Shapes = append(f.Shapes, Shape{Kind: KindLine, Color: c, Points: [3]Point{a, b}, Stroke: stroke, Detail: detail})
}

// Text appends a label with its top-left corner at (x, y).
func (f *Frame) Text(x, y float64, text string, size TextSize, c core.Color) {
	f.Shapes = append(f.Shapes, Shape{Kind: KindText, Color: c, Center: Point{x, y}, Text: text, Size: size})
}

// TextCentered appends a label horizontally centered on the frame.
func (f *Frame) TextCentered(y float64, text string, size TextSize, c core.Color) {
	f.Shapes = append(f.Shapes, Shape{
		Kind:     KindText,
		Color:    c,
		Center:   Point{f.Width / 2, y},
		Text:     text,
		Size:     size,
		Centered: true,
	})
}

// Texts returns the labels of the frame in paint order.
func (f Frame) Texts() []string {
	var out []string
	for _, s := range f.Shapes {
		if s.Kind == KindText {
			out = append(out, s.Text)
		}
	}
	return out
}
