package console

import "charm.land/lipgloss/v2"

// Theme colors (catppuccin mocha)
var (
	ColorPrimary = lipgloss.Color("#cba6f7") // Mauve
	ColorMuted   = lipgloss.Color("#a6adc8") // Subtext0
	ColorBase    = lipgloss.Color("#cdd6f4") // Text
	ColorSuccess = lipgloss.Color("#a6e3a1") // Green
	ColorWarning = lipgloss.Color("#f9e2af") // Yellow
	ColorError   = lipgloss.Color("#f38ba8") // Red
	ColorBorder  = lipgloss.Color("#585b70") // Surface2
)

var (
	pointStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	errorText  = lipgloss.NewStyle().Foreground(ColorError)
	boldStyle  = lipgloss.NewStyle().Bold(true)
)
