package ui

import (
	"fmt"

	"panegrid/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar draws the bottom line: mode badge, focused pane and pane
// count on the left, then the last status message or the tree layout.
func renderStatusBar(ws *Workspace, width int) string {
	if width <= 0 {
		return ""
	}
	badge := Styles.StatusMode.Render(ws.Mode().String())

	title := "-"
	if active := ws.Active(); active != nil {
		title = active.Title()
	}
	left := fmt.Sprintf(" %s  %d panes ", title, len(ws.Panes()))

	msg, isErr := ws.Status()
	style := Styles.StatusBar
	if msg == "" {
		msg = ws.Group().String()
	} else if isErr {
		style = Styles.StatusError
	}

	room := max(width-lipgloss.Width(badge), 0)
	left = textutil.Truncate(left, room)
	room -= textutil.VisualWidth(left)
	right := textutil.PadRightVisual(textutil.Truncate(msg, room), room)

	return badge + Styles.StatusBar.Render(left) + style.Render(right)
}
