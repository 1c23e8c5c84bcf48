package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/riverwood/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorWater:    lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
	core.ColorShallow:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	core.ColorLand:     lipgloss.NewStyle().Foreground(lipgloss.Color("70")),
	core.ColorLandDark: lipgloss.NewStyle().Foreground(lipgloss.Color("64")),
	core.ColorBridge:   lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorTree:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	core.ColorStump:    lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorPlayer:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	core.ColorText:     lipgloss.NewStyle().Foreground(lipgloss.Color("230")),
	core.ColorDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
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

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
