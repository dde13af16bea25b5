package ui

import (
	"context"
	"time"

	"panegrid/internal/pty"

	tea "github.com/charmbracelet/bubbletea"
)

// captureTimeout bounds a single command pane capture.
const captureTimeout = 10 * time.Second

// captureCmd returns a command that runs p's shell command in a PTY at size
// and reports the result as a CommandOutputMsg.
func captureCmd(runner pty.Runner, p *CommandPane, size pty.Size) tea.Cmd {
	id, command := p.ID(), p.Command
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), captureTimeout)
		defer cancel()
		out, err := pty.Capture(ctx, runner, size, "sh", "-c", command)
		return CommandOutputMsg{PaneID: id, Size: size, Output: out, Err: err}
	}
}

// captureStaleCmds starts a capture for every command pane whose output was
// taken at a different size than it is now drawn at.
func (a *AppModel) captureStaleCmds() tea.Cmd {
	if a.Runner == nil {
		return nil
	}
	var cmds []tea.Cmd
	for _, p := range a.Workspace.StaleCommandPanes() {
		cmds = append(cmds, captureCmd(a.Runner, p, p.begin()))
	}
	return tea.Batch(cmds...)
}
