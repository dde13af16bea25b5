package main

import (
	"fmt"
	"os"
	"strings"

	"panegrid/internal/ui"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	width, height int
	root          string
	scriptPath    string
	plain         bool
}

func newRenderCmd(opts *options) *cobra.Command {
	ro := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render [command...]",
		Short: "Apply a layout script and print the resulting frame",
		Long: `Render starts from a single pane, applies script commands and prints the
frame, the tree and the pane order. Commands come from --script, then from the
arguments, one command per argument:

  split <pane> <new> <up|down|left|right>
  remove <pane>
  drag <handle> <distance>
  focus <pane>
  zoom <pane>
  unzoom
  balance`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ro.run(cmd, opts, args)
		},
	}
	cmd.Flags().IntVarP(&ro.width, "width", "w", 80, "Frame width in cells")
	cmd.Flags().IntVarP(&ro.height, "height", "H", 24, "Frame height in cells")
	cmd.Flags().StringVar(&ro.root, "root", "A", "Title of the initial pane")
	cmd.Flags().StringVarP(&ro.scriptPath, "script", "s", "", "Script file to apply before the arguments")
	cmd.Flags().BoolVar(&ro.plain, "plain", false, "Strip colours from the frame")
	return cmd
}

func (ro *renderOptions) run(cmd *cobra.Command, opts *options, args []string) error {
	if ro.width <= 0 || ro.height <= 0 {
		return fmt.Errorf("frame size must be positive, got %dx%d", ro.width, ro.height)
	}

	var src []string
	if ro.scriptPath != "" {
		data, err := os.ReadFile(ro.scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		src = append(src, string(data))
	}
	src = append(src, args...)
	cmds, err := ui.ParseScript(strings.Join(src, "\n"))
	if err != nil {
		return err
	}

	ws := ui.NewWorkspace(ui.NewTextPane(ro.root, ""), ui.Options{
		Theme:   opts.theme(),
		NewPane: func(title string) ui.Pane { return ui.NewTextPane(title, "") },
	})
	ws.Resize(ro.width, ro.height)
	if err := ws.Run(cmds); err != nil {
		return err
	}

	frame := ws.Frame()
	if ro.plain {
		frame = ansi.Strip(frame)
	}
	titles := make([]string, 0, len(ws.Panes()))
	for _, p := range ws.Panes() {
		titles = append(titles, p.Title())
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, frame)
	fmt.Fprintf(out, "tree:  %s\n", ws.Group())
	fmt.Fprintf(out, "panes: %s\n", strings.Join(titles, ", "))
	return nil
}
