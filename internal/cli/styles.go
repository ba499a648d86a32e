package cli

import "github.com/charmbracelet/lipgloss"

// Theme holds the color scheme for the stats view.
type Theme struct {
	Title lipgloss.Color
	Label lipgloss.Color
	Hint  lipgloss.Color
}

// defaultTheme provides default colors.
var defaultTheme = Theme{
	Title: lipgloss.Color("#5FAFD7"), // light blue
	Label: lipgloss.Color("#00D787"), // green
	Hint:  lipgloss.Color("#6C6C6C"), // dim gray
}

func (t Theme) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Title).Bold(true)
}

func (t Theme) labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Label)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}
