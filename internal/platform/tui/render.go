package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcadelab/bleed/internal/game"
	"github.com/arcadelab/bleed/internal/levels"
)

// paletteStyles maps level palette color names to lipgloss styles.
var paletteStyles = map[string]lipgloss.Style{
	"red":     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	"green":   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	"yellow":  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	"blue":    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	"magenta": lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	"cyan":    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	"orange":  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	"purple":  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
}

var (
	grayStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hudStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
)

// styleFor returns the style for a palette color name.
func styleFor(color string) lipgloss.Style {
	if style, ok := paletteStyles[color]; ok {
		return style
	}
	return grayStyle
}

const (
	coloredBlock   = "██"
	uncoloredBlock = "··"
)

// RenderBoard draws the session grid as styled two-character blocks. The
// cursor cell is rendered in reverse video. cursorRow/cursorCol of -1 hide
// the cursor (used by the ended overlay).
func RenderBoard(grid *game.Grid, palette []string, cursorRow, cursorCol int) string {
	var b strings.Builder
	size := grid.Size()

	for r := 0; r < size; r++ {
		if r > 0 {
			b.WriteString("\n")
		}
		for c := 0; c < size; c++ {
			value := grid.Get(r, c)

			block := uncoloredBlock
			style := grayStyle
			if value > 0 && value <= len(palette) {
				block = coloredBlock
				style = styleFor(palette[value-1])
			}
			if r == cursorRow && c == cursorCol {
				style = style.Reverse(true)
			}
			b.WriteString(style.Render(block))
		}
	}
	return b.String()
}

// RenderPalette draws the selectable color swatches with the active one
// highlighted and its 1-6 hotkey labels.
func RenderPalette(palette []string, selected int) string {
	var b strings.Builder
	for i, color := range palette {
		if i > 0 {
			b.WriteString("  ")
		}
		label := string(rune('1' + i))
		swatch := styleFor(color).Render("██")
		if i == selected {
			b.WriteString(selectedStyle.Render("[" + label + "]"))
		} else {
			b.WriteString(dimStyle.Render(" " + label + " "))
		}
		b.WriteString(swatch)
	}
	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if lipgloss.Width(text) >= width {
		return text
	}
	padding := (width - lipgloss.Width(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// difficultyLabel renders a difficulty with a matching tint.
func difficultyLabel(d levels.Difficulty) string {
	switch d {
	case levels.DifficultyEasy:
		return styleFor("green").Render(string(d))
	case levels.DifficultyMedium:
		return styleFor("yellow").Render(string(d))
	case levels.DifficultyHard:
		return styleFor("red").Render(string(d))
	default:
		return string(d)
	}
}
