package window

import (
	"image/color"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// palette holds the RGB value of each drawing color.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:     {0, 0, 0, 255},
	core.ColorSky:         {113, 197, 255, 255},
	core.ColorCloud:       {255, 255, 255, 255},
	core.ColorPipe:        {111, 196, 69, 255},
	core.ColorPipeEdge:    {76, 145, 65, 255},
	core.ColorGround:      {160, 120, 40, 255},
	core.ColorGrass:       {111, 196, 69, 255},
	core.ColorGrassDetail: {76, 145, 65, 255},
	core.ColorAvatar:      {255, 221, 45, 255},
	core.ColorWing:        {200, 170, 0, 255},
	core.ColorEye:         {255, 255, 255, 255},
	core.ColorPupil:       {0, 0, 0, 255},
	core.ColorBeak:        {231, 76, 60, 255},
	core.ColorText:        {255, 255, 255, 255},
	core.ColorTitle:       {255, 221, 45, 255},
	core.ColorAlert:       {231, 76, 60, 255},
}

// rgba returns the color for c, falling back to black.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}
