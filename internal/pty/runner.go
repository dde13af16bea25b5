// Package pty runs pane commands in a pseudo-terminal sized to the pane so
// their output wraps the way it will be shown.
package pty

import (
	"context"
	"io"
	"os/exec"

	"github.com/creack/pty"
)

// Size represents terminal dimensions in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// Runner starts a command attached to a PTY. Tests swap in a fake that
// serves canned output.
type Runner interface {
	Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error)
}

// CreackPTY implements Runner using github.com/creack/pty.
type CreackPTY struct{}

var _ Runner = (*CreackPTY)(nil)

// Start spawns cmd in a PTY of the given size and returns the master side.
// Capture reads it until the child exits; cancelling ctx kills the child.
func (c *CreackPTY) Start(_ context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error) {
	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
	if err != nil {
		return nil, err
	}
	return f, nil
}
