package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/notch-dino/internal/core"
	"github.com/vovakirdan/notch-dino/internal/widget"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorWhite:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorBrightRed: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorYellow:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
}

// Island frame per view mode. The island is black like a notch; only the
// border changes so the three modes are distinguishable.
var (
	compactStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 3)

	minimalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("242")).
			Padding(0, 1)

	expandedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("252")).
			Padding(0, 1)

	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	scoreStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	hiStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	messageColor = core.ColorYellow
)

// islandStyle returns the frame style for a view mode.
func islandStyle(v widget.ViewMode) lipgloss.Style {
	switch v {
	case widget.ViewMinimal:
		return minimalStyle
	case widget.ViewExpanded:
		return expandedStyle
	default:
		return compactStyle
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
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

// overlayMessage returns a copy of s with the message lines centered on it.
// The source screen is left untouched so the next frame starts clean.
func overlayMessage(s *core.Screen, message string) *core.Screen {
	out := s.Clone()
	lines := strings.Split(message, "\n")
	top := (out.Height() - len(lines)) / 2
	if top < 0 {
		top = 0
	}

	for i, line := range lines {
		out.DrawTextCentered(top+i, line, messageColor)
	}
	return out
}
