package window

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/vovakirdan/flappy-arcade/internal/platform/scene"
)

// Point sizes of the two text styles.
const (
	largeTextSize = 32
	smallTextSize = 24
)

// faces maps a text style to its loaded font face.
type faces map[scene.TextSize]font.Face

func loadFaces() (faces, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("window: cannot parse font: %w", err)
	}

	const dpi = 72
	out := make(faces, 2)
	for size, points := range map[scene.TextSize]float64{
		scene.TextLarge: largeTextSize,
		scene.TextSmall: smallTextSize,
	} {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    points,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("window: cannot create font face: %w", err)
		}
		out[size] = face
	}
	return out, nil
}

// origin returns the baseline position for a text shape. Shapes give the
// top edge of the text; the font draws from its baseline.
func (fs faces) origin(s scene.Shape) (x, y int) {
	face := fs[s.Size]
	x = int(s.Center.X)
	if s.Centered {
		x -= font.MeasureString(face, s.Text).Ceil() / 2
	}
	y = int(s.Center.Y) + face.Metrics().Ascent.Ceil()
	return x, y
}
