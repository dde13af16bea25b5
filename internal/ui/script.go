package ui

import (
	"bufio"
	"fmt"
	"math"
	"strconv"
	"strings"

	"panegrid/internal/geometry"
)

// CommandKind is the verb of a script command.
type CommandKind string

const (
	CmdSplit   CommandKind = "split"   // split <pane> <new> <direction>
	CmdRemove  CommandKind = "remove"  // remove <pane>
	CmdDrag    CommandKind = "drag"    // drag <handle> <distance>
	CmdFocus   CommandKind = "focus"   // focus <pane>
	CmdZoom    CommandKind = "zoom"    // zoom <pane>
	CmdUnzoom  CommandKind = "unzoom"  // unzoom
	CmdBalance CommandKind = "balance" // balance
)

// Command is one parsed script step.
type Command struct {
	Kind      CommandKind
	Pane      string
	NewPane   string
	Direction geometry.SplitDirection
	Handle    int
	Distance  float64
	Line      int
}

func (c Command) String() string {
	switch c.Kind {
	case CmdSplit:
		return fmt.Sprintf("split %s %s %s", c.Pane, c.NewPane, c.Direction)
	case CmdDrag:
		return fmt.Sprintf("drag %d %g", c.Handle, c.Distance)
	case CmdRemove, CmdFocus, CmdZoom:
		return fmt.Sprintf("%s %s", c.Kind, c.Pane)
	default:
		return string(c.Kind)
	}
}

// ParseScript parses commands separated by newlines or semicolons. Blank
// lines and lines starting with # are skipped.
func ParseScript(src string) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(strings.NewReader(src))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		for _, stmt := range strings.Split(line, ";") {
			fields := strings.Fields(stmt)
			if len(fields) == 0 {
				continue
			}
			cmd, err := parseCommand(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", lineNo, strings.TrimSpace(stmt), err)
			}
			cmd.Line = lineNo
			cmds = append(cmds, cmd)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return cmds, nil
}

func parseCommand(fields []string) (Command, error) {
	kind := CommandKind(strings.ToLower(fields[0]))
	args := fields[1:]
	want := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%s takes %d arguments, got %d", kind, n, len(args))
		}
		return nil
	}

	switch kind {
	case CmdSplit:
		if err := want(3); err != nil {
			return Command{}, err
		}
		dir, err := geometry.ParseSplitDirection(args[2])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: kind, Pane: args[0], NewPane: args[1], Direction: dir}, nil
	case CmdRemove, CmdFocus, CmdZoom:
		if err := want(1); err != nil {
			return Command{}, err
		}
		return Command{Kind: kind, Pane: args[0]}, nil
	case CmdDrag:
		if err := want(2); err != nil {
			return Command{}, err
		}
		handle, err := strconv.Atoi(args[0])
		if err != nil {
			return Command{}, fmt.Errorf("handle: %w", err)
		}
		distance, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return Command{}, fmt.Errorf("distance: %w", err)
		}
		if math.IsNaN(distance) || math.IsInf(distance, 0) {
			return Command{}, fmt.Errorf("distance %q must be finite", args[1])
		}
		return Command{Kind: kind, Handle: handle, Distance: distance}, nil
	case CmdUnzoom, CmdBalance:
		if err := want(0); err != nil {
			return Command{}, err
		}
		return Command{Kind: kind}, nil
	default:
		return Command{}, fmt.Errorf("unknown command %q", fields[0])
	}
}
