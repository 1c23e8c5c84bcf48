package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette entries used by the world renderer and HUD.
const (
	ColorDefault Color = iota
	ColorWater
	ColorShallow
	ColorLand
	ColorLandDark
	ColorBridge
	ColorTree
	ColorStump
	ColorPlayer
	ColorText
	ColorDim
)
