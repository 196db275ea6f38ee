package output

import "github.com/charmbracelet/lipgloss"

// Colors used by the interactive session.
var (
	ColorAccent  = lipgloss.Color("#20B9B4")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
	ColorMuted   = lipgloss.Color("#6B7280")
)

// Styles provides pre-configured lipgloss styles for the interactive session.
var Styles = struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
	Warn   lipgloss.Style
}{
	Title:  lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	Header: lipgloss.NewStyle().Foreground(ColorAccent),
	Muted:  lipgloss.NewStyle().Foreground(ColorMuted),
	Error:  lipgloss.NewStyle().Foreground(ColorError),
	Warn:   lipgloss.NewStyle().Foreground(ColorWarning),
}
