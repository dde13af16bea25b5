package ui

import (
	"panegrid/internal/geometry"
	"panegrid/internal/pty"
)

// SplitMsg splits the focused pane (SPC w h/j/k/l).
type SplitMsg struct {
	Direction geometry.SplitDirection
}

// CloseMsg closes the focused pane (SPC w d).
type CloseMsg struct{}

// ZoomMsg toggles zoom on the focused pane (SPC w z).
type ZoomMsg struct{}

// FocusMsg rotates focus through the panes in tree order.
type FocusMsg struct {
	Backward bool
}

// BalanceMsg resets every divider to equal sizes (SPC w =).
type BalanceMsg struct{}

// CommandOutputMsg carries the output of a command pane captured at Size.
type CommandOutputMsg struct {
	PaneID string
	Size   pty.Size
	Output string
	Err    error
}
