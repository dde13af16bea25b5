package ui

import (
	"log/slog"
	"strings"

	"panegrid/internal/flex"
	"panegrid/internal/geometry"
	"panegrid/internal/logger"
	"panegrid/internal/pty"

	tea "github.com/charmbracelet/bubbletea"
)

// statusBarHeight is the number of rows below the pane tree.
const statusBarHeight = 1

// AppModel is the root model: a workspace of panes above a status bar, with
// the leader key help drawn over the bottom of the panes while a sequence is
// being typed.
type AppModel struct {
	Workspace  *Workspace
	KeyHandler *KeyHandler
	Runner     pty.Runner

	width, height int
	log           *slog.Logger
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ws := a.Workspace
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		ws.Resize(msg.Width, max(msg.Height-statusBarHeight, 0))
		return a, a.captureStaleCmds()
	case SplitMsg:
		if _, err := ws.SplitActive(msg.Direction); err != nil {
			a.log.Warn("split from key failed", "error", err)
		}
		return a, a.captureStaleCmds()
	case CloseMsg:
		if _, err := ws.CloseActive(); err != nil {
			a.log.Warn("close from key failed", "error", err)
		}
		return a, a.captureStaleCmds()
	case ZoomMsg:
		ws.ToggleZoom()
		return a, a.captureStaleCmds()
	case FocusMsg:
		if msg.Backward {
			ws.FocusPrev()
		} else {
			ws.FocusNext()
		}
		return a, a.captureStaleCmds()
	case BalanceMsg:
		ws.Balance()
		return a, a.captureStaleCmds()
	case CommandOutputMsg:
		ws.SetCommandOutput(msg)
		return a, a.captureStaleCmds()
	case tea.MouseMsg:
		if ev, ok := mouseEvent(msg); ok && ws.Mouse(ev) {
			return a, a.captureStaleCmds()
		}
		return a, nil
	case tea.KeyMsg:
		if a.KeyHandler != nil {
			a.KeyHandler.Mode = ws.Mode()
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
		if msg.String() == "esc" && ws.Mode() == ModeZoomed {
			ws.Unzoom()
			return a, a.captureStaleCmds()
		}
	}
	return a, nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	frame := a.Workspace.Frame()
	if help := RenderKeybindHelp(a.KeyHandler, a.width); help != "" {
		frame = overlayBottom(frame, help)
	}
	return frame + "\n" + renderStatusBar(a.Workspace, a.width)
}

// overlayBottom replaces the last lines of frame with the lines of box.
func overlayBottom(frame, box string) string {
	lines := strings.Split(frame, "\n")
	boxLines := strings.Split(box, "\n")
	start := max(len(lines)-len(boxLines), 0)
	for i, line := range boxLines {
		if start+i >= len(lines) {
			break
		}
		lines[start+i] = line
	}
	return strings.Join(lines, "\n")
}

// mouseEvent converts a terminal mouse report to a pointer event at the
// centre of the reported cell. Only the left button starts gestures.
func mouseEvent(msg tea.MouseMsg) (flex.MouseEvent, bool) {
	pos := geometry.Vec(float64(msg.X)+0.5, float64(msg.Y)+0.5)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return flex.MouseEvent{}, false
		}
		return flex.MouseEvent{Action: flex.MousePress, Position: pos}, true
	case tea.MouseActionMotion:
		return flex.MouseEvent{Action: flex.MouseMotion, Position: pos}, true
	case tea.MouseActionRelease:
		return flex.MouseEvent{Action: flex.MouseRelease, Position: pos}, true
	}
	return flex.MouseEvent{}, false
}

func splitCmd(direction geometry.SplitDirection) tea.Cmd {
	return func() tea.Msg { return SplitMsg{Direction: direction} }
}

// NewKeybinds returns the workspace key bindings.
func NewKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("tab", func() tea.Msg { return FocusMsg{} }, "Next pane")
	reg.BindWithDesc("shift+tab", func() tea.Msg { return FocusMsg{Backward: true} }, "Previous pane")
	reg.BindWithDesc("SPC f n", func() tea.Msg { return FocusMsg{} }, "Next pane")
	reg.BindWithDesc("SPC f p", func() tea.Msg { return FocusMsg{Backward: true} }, "Previous pane")
	reg.BindWithDesc("SPC w h", splitCmd(geometry.Left), "Split left")
	reg.BindWithDesc("SPC w j", splitCmd(geometry.Down), "Split down")
	reg.BindWithDesc("SPC w k", splitCmd(geometry.Up), "Split up")
	reg.BindWithDesc("SPC w l", splitCmd(geometry.Right), "Split right")
	reg.BindWithDesc("SPC w d", func() tea.Msg { return CloseMsg{} }, "Close pane")
	reg.BindWithDesc("SPC w z", func() tea.Msg { return ZoomMsg{} }, "Toggle zoom")
	reg.BindWithDescForMode("SPC w =", func() tea.Msg { return BalanceMsg{} }, "Balance", []AppMode{ModeTiled})
	return reg
}

// NewAppModel creates the root application model around ws. Command panes
// are captured with runner; a nil runner leaves them empty.
func NewAppModel(ws *Workspace, runner pty.Runner) *AppModel {
	return &AppModel{
		Workspace:  ws,
		KeyHandler: NewKeyHandler(NewKeybinds()),
		Runner:     runner,
		log:        logger.Component("app"),
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
