// Package theme centralizes the lipgloss styles shared by the interactive
// menu, styled help, and pretty CLI output.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styles used across the tool's terminal output.
type Theme struct {
	Title    lipgloss.Style
	Accent   lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Selected lipgloss.Style
	Path     lipgloss.Style
}

// Dark palette (default).
const (
	darkAccent  = "#7FB4CA"
	darkMuted   = "#727169"
	darkGreen   = "#98BB6C"
	darkRed     = "#FF5D62"
	darkYellow  = "#FF9E3B"
	darkViolet  = "#957FB8"
	darkSelText = "#DCD7BA"
	darkSelBg   = "#223249"
)

// Light palette.
const (
	lightAccent  = "#4F7CAC"
	lightMuted   = "#6C7086"
	lightGreen   = "#4E7C5A"
	lightRed     = "#C34043"
	lightYellow  = "#A68A64"
	lightViolet  = "#674D7A"
	lightSelText = "#2B2F42"
	lightSelBg   = "#E2E6F3"
)

// DefaultTheme is chosen at init based on the terminal background.
var DefaultTheme = New(termenv.HasDarkBackground())

// New builds a theme for a dark or light terminal background.
func New(dark bool) *Theme {
	accent, muted, green, red, yellow, violet := lightAccent, lightMuted, lightGreen, lightRed, lightYellow, lightViolet
	selText, selBg := lightSelText, lightSelBg
	if dark {
		accent, muted, green, red, yellow, violet = darkAccent, darkMuted, darkGreen, darkRed, darkYellow, darkViolet
		selText, selBg = darkSelText, darkSelBg
	}

	return &Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color(violet)).Bold(true),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color(accent)),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color(green)).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(red)).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color(yellow)),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color(selText)).Background(lipgloss.Color(selBg)),
		Path:     lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Italic(true),
	}
}
