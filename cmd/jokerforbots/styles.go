package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/jokerforbots/internal/game"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	priceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))
)

func header(title string) {
	fmt.Println(headerStyle.Render(title))
}

func row(label string, format string, args ...any) {
	fmt.Println(labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf(format, args...)))
}

func outcomeStyle(o game.Outcome) lipgloss.Style {
	switch o {
	case game.Won:
		return successStyle
	case game.Lost:
		return errorStyle
	default:
		return warningStyle
	}
}
