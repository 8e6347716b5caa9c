package core

// Color names a palette entry for a drawn element.
// Frontends decide the concrete value: ANSI codes in the terminal,
// RGB in the desktop window.
type Color uint8

// Palette entries, named by what they paint.
const (
	ColorDefault Color = iota
	ColorSky
	ColorCloud
	ColorPipe
	ColorPipeEdge
	ColorGround
	ColorGrass
	ColorGrassDetail
	ColorAvatar
	ColorWing
	ColorEye
	ColorPupil
	ColorBeak
	ColorText
	ColorTitle
	ColorAlert
)
