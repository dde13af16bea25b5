package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, focused pane
	ColorHighlight = "205" // Magenta - leader keys, zoom frame
	ColorDanger    = "196" // Red - errors
	ColorMuted     = "241" // Gray - hints, unfocused titles
	ColorText      = "252" // Light gray - pane body
	ColorBar       = "236" // Dark gray - status bar background
)

// Styles contains shared style definitions used by the workspace.
var Styles = struct {
	PaneTitle        lipgloss.Style // Title line of an unfocused pane
	PaneTitleFocused lipgloss.Style // Title line of the focused pane
	PaneBody         lipgloss.Style // Pane text
	PaneError        lipgloss.Style // Render or command failures inside a pane

	StatusBar   lipgloss.Style // Whole bottom line
	StatusMode  lipgloss.Style // Mode badge
	StatusError lipgloss.Style // Error message on the status bar

	HelpBox lipgloss.Style // Leader help box
	HelpKey lipgloss.Style // Key names in the leader help
	Muted   lipgloss.Style // Dimmed text
}{
	PaneTitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	PaneTitleFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	PaneBody: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	PaneError: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	StatusBar: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBar)).
		Foreground(lipgloss.Color(ColorText)),
	StatusMode: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorAccent)).
		Foreground(lipgloss.Color("0")).
		Bold(true).
		Padding(0, 1),
	StatusError: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBar)).
		Foreground(lipgloss.Color(ColorDanger)),
	HelpBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	HelpKey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
