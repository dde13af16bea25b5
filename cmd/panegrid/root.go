package main

import (
	"context"
	"fmt"
	"time"

	"panegrid/internal/config"
	"panegrid/internal/flex"
	"panegrid/internal/logger"
	"panegrid/internal/panegroup"
	"panegrid/internal/pty"
	"panegrid/internal/trace"
	"panegrid/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// options holds the flags shared by every command and the config they load.
type options struct {
	configPath string
	debug      bool
	command    string
	markdown   string

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "panegrid",
		Short: "Tiling pane workspace for the terminal",
		Long: `panegrid splits the terminal into a tree of panes. Panes are split,
closed, zoomed and focused from the keyboard (SPC w ...) and resized by
dragging the dividers between them.`,
		PersistentPreRunE: opts.load,
		RunE:              opts.runTUI,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default $PANEGRID_CONFIG or ~/.config/panegrid/config.toml)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	root.Flags().StringVar(&opts.command, "command", "", "Shell command new panes run")
	root.Flags().StringVar(&opts.markdown, "markdown", "", "Markdown file new panes render")

	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	return root
}

func (o *options) load(cmd *cobra.Command, _ []string) error {
	path := o.configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if o.command != "" {
		cfg.Pane.Command = o.command
	}
	if o.markdown != "" {
		cfg.Pane.Markdown = o.markdown
	}
	o.cfg = cfg

	if err := logger.Init(cfg.Log.Path); err != nil {
		return err
	}
	logger.SetDebug(cfg.Log.Debug || o.debug)
	return nil
}

// theme builds the tree theme from the loaded config.
func (o *options) theme() panegroup.Theme {
	t := panegroup.DefaultTheme()
	c := o.cfg
	t.DividerColor = c.Theme.DividerColor
	t.Background = c.Theme.Background
	t.LeaderBorderWidth = c.Theme.LeaderBorderWidth
	t.LeaderBorderOpacity = c.Theme.LeaderBorderOpacity
	if len(c.Theme.ReplicaColors) > 0 {
		t.ReplicaColors = c.Theme.ReplicaColors
	}
	t.MinSizes = flex.MinSizes{Horizontal: c.Layout.HorizontalMinSize, Vertical: c.Layout.VerticalMinSize}
	t.HandleSize = c.Layout.HandleHitboxSize
	return t
}

// newPane returns the factory for interactively created panes.
func (o *options) newPane() func(title string) ui.Pane {
	pane := o.cfg.Pane
	return func(title string) ui.Pane {
		switch {
		case pane.Command != "":
			return ui.NewCommandPane(title, pane.Command)
		case pane.Markdown != "":
			return ui.NewMarkdownPane(title, pane.Markdown)
		default:
			return ui.NewTextPane(title, "SPC w h/j/k/l to split, drag dividers to resize")
		}
	}
}

func (o *options) runTUI(cmd *cobra.Command, _ []string) error {
	defer logger.Close()
	log := logger.Component("main")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	tel := o.cfg.Telemetry
	tracer, err := trace.Setup(ctx, trace.Options{Endpoint: tel.Endpoint, ServiceName: tel.ServiceName, Insecure: tel.Insecure})
	if err != nil {
		return fmt.Errorf("error setting up tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			log.Warn("trace shutdown failed", "error", err)
		}
	}()

	newPane := o.newPane()
	ws := ui.NewWorkspace(newPane("pane 1"), ui.Options{
		Theme:   o.theme(),
		Tracer:  tracer,
		NewPane: newPane,
	})
	log.Info("starting", "config", o.configPath, "tracing", tracer.Enabled())

	model := ui.NewAppModel(ws, &pty.CreackPTY{}).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
