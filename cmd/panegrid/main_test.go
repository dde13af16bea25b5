package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"panegrid/internal/config"
	"panegrid/internal/logger"
	"panegrid/internal/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PANEGRID_CONFIG", filepath.Join(dir, "missing.toml"))
	t.Setenv("PANEGRID_LOG_PATH", filepath.Join(dir, "panegrid.log"))
	t.Cleanup(logger.Close)

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRender_Arguments(t *testing.T) {
	out, err := execute(t, "render", "--plain", "-w", "21", "-H", "3", "split A B right")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	for _, line := range lines[:3] {
		assert.Contains(t, line, "│")
	}
	assert.Contains(t, out, "tree:  H[A, B]\n")
	assert.Contains(t, out, "panes: A, B\n")
}

func TestRender_ScriptFileThenArguments(t *testing.T) {
	script := filepath.Join(t.TempDir(), "layout.txt")
	require.NoError(t, os.WriteFile(script, []byte("# two columns\nsplit A B right\n"), 0o644))

	out, err := execute(t, "render", "--plain", "--script", script, "split B C down", "remove A")
	require.NoError(t, err)
	assert.Contains(t, out, "tree:  V[B, C]\n")
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown pane", []string{"render", "focus Z"}, "unknown pane"},
		{"bad command", []string{"render", "explode"}, "unknown command"},
		{"bad size", []string{"render", "-w", "0"}, "frame size"},
		{"missing script", []string{"render", "--script", "/nonexistent/script"}, "read script"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRender_RootTitle(t *testing.T) {
	out, err := execute(t, "render", "--plain", "--root", "main")
	require.NoError(t, err)
	assert.Contains(t, out, "panes: main\n")
}

func TestNewPane_FollowsConfig(t *testing.T) {
	o := &options{}
	assert.IsType(t, &ui.TextPane{}, o.newPane()("x"))

	o.cfg.Pane.Command = "date"
	assert.IsType(t, &ui.CommandPane{}, o.newPane()("x"))

	o.cfg.Pane.Command = ""
	o.cfg.Pane.Markdown = filepath.Join(t.TempDir(), "notes.md")
	assert.IsType(t, &ui.MarkdownPane{}, o.newPane()("x"))
}

func TestTheme_FromConfig(t *testing.T) {
	o := &options{}
	o.cfg.Layout.HorizontalMinSize = 20
	o.cfg.Layout.VerticalMinSize = 6
	o.cfg.Layout.HandleHitboxSize = 2
	o.cfg.Theme.DividerColor = "#ff0000"

	theme := o.theme()
	assert.Equal(t, 20.0, theme.MinSizes.Horizontal)
	assert.Equal(t, 6.0, theme.MinSizes.Vertical)
	assert.Equal(t, 2.0, theme.HandleSize)
	assert.Equal(t, "#ff0000", theme.DividerColor)
	assert.NotEmpty(t, theme.ReplicaColors)
}

func TestConfigInit_WritesLoadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "panegrid.toml")

	out, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 12.0, cfg.Layout.HorizontalMinSize)
	assert.Equal(t, 4.0, cfg.Layout.VerticalMinSize)

	_, err = execute(t, "config", "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "config", "init", "--force", path)
	require.NoError(t, err)
}
