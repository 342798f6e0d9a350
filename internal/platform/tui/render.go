package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("47")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("21")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("231")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("197")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("121")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("227")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("207")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("123")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBlack:         lipgloss.NewStyle().Foreground(lipgloss.Color("16")),
	core.ColorBrown:         lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorDarkBrown:     lipgloss.NewStyle().Foreground(lipgloss.Color("58")),
	core.ColorGold:          lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorPink:          lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	core.ColorSky:           lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorGrass:         lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
	core.ColorSkin:          lipgloss.NewStyle().Foreground(lipgloss.Color("223")),
	core.ColorDarkGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
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
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
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

const cellEpsilon = 1e-9

// FitArea returns the largest screen region that shows a worldW x worldH
// world without distortion, centered in a cols x rows screen. Terminal
// cells are about twice as tall as they are wide.
func FitArea(cols, rows int, worldW, worldH float64) core.Rect {
	if cols <= 0 || rows <= 0 || worldW <= 0 || worldH <= 0 {
		return core.Rect{}
	}
	scale := min(float64(cols)/worldW, float64(rows)*2/worldH)
	w := core.Clamp(int(worldW*scale+cellEpsilon), 1, cols)
	h := core.Clamp(int(worldH*scale/2+cellEpsilon), 1, rows)
	return core.Rect{X: (cols - w) / 2, Y: (rows - h) / 2, W: w, H: h}
}
