package cli

import "github.com/charmbracelet/lipgloss"

// Colors defines the palette for command output.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow
}

var (
	successStyle = lipgloss.NewStyle().Foreground(Colors.Success).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(Colors.Warning)
	headerStyle  = lipgloss.NewStyle().Foreground(Colors.Primary).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(Colors.Muted)
	commandStyle = lipgloss.NewStyle().PaddingLeft(2)
)
