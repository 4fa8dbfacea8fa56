package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/averycrespi/calc-mcp/internal/keypad"
)

// Colors
var (
	colorFrame    = lipgloss.Color("#24AFE6")
	colorDisplay  = lipgloss.Color("#9CC0D8")
	colorOperator = lipgloss.Color("#FF7675")
	colorEvaluate = lipgloss.Color("#74B9FF")
	colorClear    = lipgloss.Color("#D63031")
	colorNumber   = lipgloss.Color("#00B894")
	colorSpecial  = lipgloss.Color("#636E72")
	colorFg       = lipgloss.Color("#FFFFFF")
	colorMuted    = lipgloss.Color("#6B7280")
)

// Button geometry in terminal cells, borders included
const (
	buttonWidth   = 7
	buttonHeight  = 3
	displayHeight = 3
	columns       = 4
	gridWidth     = buttonWidth * columns
)

// Styles
var (
	DisplayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFrame).
			Foreground(colorDisplay).
			Bold(true).
			Align(lipgloss.Right).
			Width(gridWidth - 2)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	ButtonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Bold(true).
			Align(lipgloss.Center).
			Width(buttonWidth - 2)

	HiddenButtonStyle = lipgloss.NewStyle().
				Width(buttonWidth).
				Height(buttonHeight)
)

// buttonColor picks the key color the same way for every renderer
func buttonColor(category keypad.Category) lipgloss.Color {
	switch category {
	case keypad.CategoryClear:
		return colorClear
	case keypad.CategoryEvaluate:
		return colorEvaluate
	case keypad.CategoryDelete:
		return colorSpecial
	case keypad.CategoryOperator:
		return colorOperator
	default:
		return colorNumber
	}
}

func buttonStyle(key keypad.Key, pressed bool) lipgloss.Style {
	style := ButtonStyle.Foreground(buttonColor(key.Category))
	if pressed {
		style = style.BorderForeground(colorFg).Reverse(true)
	}
	return style
}
