package pty

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"syscall"
)

// Capture runs name with args in a PTY of the given size and returns what it
// wrote, with CRLF line endings folded to LF. The command is killed when ctx
// is done.
func Capture(ctx context.Context, r Runner, size Size, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(cmd.Environ(), "TERM=xterm-256color", fmt.Sprintf("COLUMNS=%d", size.Cols), fmt.Sprintf("LINES=%d", size.Rows))

	rwc, err := r.Start(ctx, cmd, size)
	if err != nil {
		return "", fmt.Errorf("start %s: %w", name, err)
	}
	defer rwc.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rwc); err != nil && !isClosedPTY(err) {
		return normalize(buf.String()), fmt.Errorf("read %s: %w", name, err)
	}
	if cmd.Process != nil {
		if err := cmd.Wait(); err != nil {
			return normalize(buf.String()), fmt.Errorf("wait %s: %w", name, err)
		}
	}
	return normalize(buf.String()), nil
}

// isClosedPTY reports the error Linux returns when reading the master side
// after the child has exited.
func isClosedPTY(err error) bool {
	return errors.Is(err, syscall.EIO)
}

func normalize(out string) string {
	out = strings.ReplaceAll(out, "\r\n", "\n")
	return strings.TrimRight(out, "\n")
}
