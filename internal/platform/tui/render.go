package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. High tiles are bold so
// they stand out on 16-color terminals.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("209")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("170")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
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
