package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// palette maps core.Color to lipgloss styles for one renderer.
// Every style paints on the sky so text and empty cells share the backdrop.
type palette map[core.Color]lipgloss.Style

// newPalette builds the styles for r. SSH sessions pass their own renderer
// so colors follow the client's terminal, not the server's.
func newPalette(r *lipgloss.Renderer) palette {
	base := r.NewStyle().Background(lipgloss.Color("117"))
	fg := func(c string) lipgloss.Style {
		return base.Foreground(lipgloss.Color(c))
	}

	return palette{
		core.ColorDefault:     base,
		core.ColorSky:         base,
		core.ColorCloud:       fg("255"),
		core.ColorPipe:        fg("71"),
		core.ColorPipeEdge:    fg("65"),
		core.ColorGround:      fg("136"),
		core.ColorGrass:       fg("71"),
		core.ColorGrassDetail: fg("65"),
		core.ColorAvatar:      fg("220"),
		core.ColorWing:        fg("178"),
		core.ColorEye:         fg("16"),
		core.ColorPupil:       fg("231"),
		core.ColorBeak:        fg("167"),
		core.ColorText:        fg("231").Bold(true),
		core.ColorTitle:       fg("220").Bold(true),
		core.ColorAlert:       fg("167").Bold(true),
	}
}

// style returns the style for c, falling back to the default entry.
func (p palette) style(c core.Color) lipgloss.Style {
	if s, ok := p[c]; ok {
		return s
	}
	return p[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
