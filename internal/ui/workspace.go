package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"panegrid/internal/flex"
	"panegrid/internal/geometry"
	"panegrid/internal/logger"
	"panegrid/internal/panegroup"
	"panegrid/internal/trace"

	"github.com/charmbracelet/lipgloss"
)

// zoomRegionKind covers the whole frame while a pane is zoomed, so the tree's
// drag handles underneath cannot be reached.
const zoomRegionKind = "zoom"

// Options configures a Workspace. Zero values get defaults.
type Options struct {
	Theme     panegroup.Theme
	Tracer    *trace.Provider
	Logger    *slog.Logger
	NewPane   func(title string) Pane
	Presence  panegroup.Presence
	Followers panegroup.FollowerStates
}

// Workspace owns a pane tree and everything needed to show and edit it:
// focus, zoom, the last painted scene and the pointer dispatcher.
type Workspace struct {
	group  *panegroup.PaneGroup
	panes  map[string]Pane
	focus  FocusManager
	zoomed Pane

	theme     panegroup.Theme
	presence  panegroup.Presence
	followers panegroup.FollowerStates
	newPane   func(title string) Pane
	tracer    *trace.Provider
	log       *slog.Logger
	ctx       context.Context

	dispatcher    *flex.Dispatcher
	width, height int
	frame         string
	created       int

	status    string
	statusErr bool
}

// NewWorkspace returns a workspace holding first.
func NewWorkspace(first Pane, opts Options) *Workspace {
	w := &Workspace{
		group:      panegroup.New(first),
		panes:      map[string]Pane{first.ID(): first},
		theme:      opts.Theme,
		presence:   opts.Presence,
		followers:  opts.Followers,
		newPane:    opts.NewPane,
		tracer:     opts.Tracer,
		log:        opts.Logger,
		ctx:        context.Background(),
		dispatcher: flex.NewDispatcher(),
		created:    1,
	}
	if w.newPane == nil {
		w.newPane = func(title string) Pane { return NewTextPane(title, "") }
	}
	if w.log == nil {
		w.log = logger.Component("workspace")
	}
	w.focus.OnChange = func(from, to string) {
		w.log.Debug("focus changed", "from", w.title(from), "to", w.title(to))
	}
	w.syncFocus()
	w.focus.SetFocus(first.ID())
	return w
}

func (w *Workspace) title(id string) string {
	if p, ok := w.panes[id]; ok {
		return p.Title()
	}
	return ""
}

// Group returns the pane tree.
func (w *Workspace) Group() *panegroup.PaneGroup { return w.group }

// Mode reports whether a pane is zoomed.
func (w *Workspace) Mode() AppMode {
	if w.zoomed != nil {
		return ModeZoomed
	}
	return ModeTiled
}

// Zoomed returns the zoomed pane, or nil.
func (w *Workspace) Zoomed() Pane { return w.zoomed }

// Active returns the focused pane.
func (w *Workspace) Active() Pane { return w.panes[w.focus.Current] }

// Panes returns the panes in tree order.
func (w *Workspace) Panes() []Pane {
	tree := w.group.Panes()
	out := make([]Pane, 0, len(tree))
	for _, p := range tree {
		out = append(out, p.(Pane))
	}
	return out
}

// PaneByTitle finds a pane by its title.
func (w *Workspace) PaneByTitle(title string) (Pane, bool) {
	for _, p := range w.Panes() {
		if p.Title() == title {
			return p, true
		}
	}
	return nil, false
}

// Status returns the last status message and whether it is an error.
func (w *Workspace) Status() (string, bool) { return w.status, w.statusErr }

func (w *Workspace) setStatus(msg string, isErr bool) {
	w.status, w.statusErr = msg, isErr
}

func (w *Workspace) syncFocus() {
	panes := w.Panes()
	ids := make([]string, len(panes))
	for i, p := range panes {
		ids[i] = p.ID()
	}
	w.focus.Sync(ids)
}

// Resize sets the size of the area the tree is drawn into and repaints.
func (w *Workspace) Resize(width, height int) {
	w.width, w.height = max(width, 0), max(height, 0)
	w.Render()
}

// Size returns the tree area size.
func (w *Workspace) Size() (width, height int) { return w.width, w.height }

// NextTitle returns the title for the next pane created interactively.
func (w *Workspace) NextTitle() string {
	w.created++
	return fmt.Sprintf("pane %d", w.created)
}

// Split puts newPane next to target in direction and focuses it.
func (w *Workspace) Split(target, newPane Pane, direction geometry.SplitDirection) error {
	_, span := w.tracer.Start(w.ctx, "pane.split",
		trace.Key("direction").String(direction.String()),
		trace.Key("target").String(target.Title()),
	)
	err := w.group.Split(target, newPane, direction)
	if err == nil {
		w.panes[newPane.ID()] = newPane
		w.zoomed = nil
		w.syncFocus()
		w.focus.SetFocus(newPane.ID())
		span.SetAttributes(trace.Key("panes").Int(len(w.panes)))
		w.log.Info("split", "target", target.Title(), "new", newPane.Title(), "direction", direction.String(), "tree", w.group.String())
		w.setStatus(fmt.Sprintf("split %s %s", target.Title(), direction), false)
	} else {
		w.log.Warn("split failed", "target", target.Title(), "error", err)
		w.setStatus(err.Error(), true)
	}
	trace.End(span, err)
	w.Render()
	return err
}

// SplitActive splits the focused pane with a newly created one.
func (w *Workspace) SplitActive(direction geometry.SplitDirection) (Pane, error) {
	active := w.Active()
	if active == nil {
		return nil, fmt.Errorf("split: no active pane")
	}
	p := w.newPane(w.NextTitle())
	if err := w.Split(active, p, direction); err != nil {
		return nil, err
	}
	return p, nil
}

// Remove takes p out of the tree. It reports false when p is the last pane.
func (w *Workspace) Remove(p Pane) (bool, error) {
	_, span := w.tracer.Start(w.ctx, "pane.remove", trace.Key("pane").String(p.Title()))
	removed, err := w.group.Remove(p)
	switch {
	case err != nil:
		w.log.Warn("remove failed", "pane", p.Title(), "error", err)
		w.setStatus(err.Error(), true)
	case !removed:
		w.setStatus("cannot close the last pane", true)
	default:
		delete(w.panes, p.ID())
		if w.zoomed == p {
			w.zoomed = nil
		}
		w.syncFocus()
		span.SetAttributes(trace.Key("panes").Int(len(w.panes)))
		w.log.Info("removed", "pane", p.Title(), "tree", w.group.String())
		w.setStatus("closed "+p.Title(), false)
	}
	span.SetAttributes(trace.Key("removed").Bool(removed))
	trace.End(span, err)
	w.Render()
	return removed, err
}

// CloseActive removes the focused pane.
func (w *Workspace) CloseActive() (bool, error) {
	active := w.Active()
	if active == nil {
		return false, nil
	}
	return w.Remove(active)
}

// Focus moves focus to p.
func (w *Workspace) Focus(p Pane) bool {
	ok := w.focus.SetFocus(p.ID())
	w.Render()
	return ok
}

// FocusNext moves focus forward in tree order.
func (w *Workspace) FocusNext() {
	w.focus.Next()
	w.followFocusWhileZoomed()
	w.Render()
}

// FocusPrev moves focus backward in tree order.
func (w *Workspace) FocusPrev() {
	w.focus.Prev()
	w.followFocusWhileZoomed()
	w.Render()
}

func (w *Workspace) followFocusWhileZoomed() {
	if w.zoomed != nil {
		w.zoomed = w.Active()
	}
}

// Zoom shows p over the whole frame.
func (w *Workspace) Zoom(p Pane) {
	_, span := w.tracer.Start(w.ctx, "pane.zoom", trace.Key("pane").String(p.Title()))
	w.zoomed = p
	w.focus.SetFocus(p.ID())
	w.dispatcher.Cancel()
	w.log.Info("zoomed", "pane", p.Title())
	trace.End(span, nil)
	w.Render()
}

// Unzoom returns to the tiled layout.
func (w *Workspace) Unzoom() {
	if w.zoomed == nil {
		return
	}
	_, span := w.tracer.Start(w.ctx, "pane.unzoom", trace.Key("pane").String(w.zoomed.Title()))
	w.log.Info("unzoomed", "pane", w.zoomed.Title())
	w.zoomed = nil
	trace.End(span, nil)
	w.Render()
}

// ToggleZoom zooms the focused pane, or unzooms.
func (w *Workspace) ToggleZoom() {
	if w.zoomed != nil {
		w.Unzoom()
		return
	}
	if active := w.Active(); active != nil {
		w.Zoom(active)
	}
}

// Balance resets every axis in the tree to equal weights.
func (w *Workspace) Balance() {
	var walk func(m panegroup.Member)
	walk = func(m panegroup.Member) {
		axis, ok := m.(*panegroup.PaneAxis)
		if !ok {
			return
		}
		axis.Weights().Reset(len(axis.Members()))
		for _, child := range axis.Members() {
			walk(child)
		}
	}
	walk(w.group.Root())
	w.log.Info("balanced", "tree", w.group.String())
	w.Render()
}

// Mouse feeds a pointer event to the dispatcher and repaints when it changed
// anything.
func (w *Workspace) Mouse(ev flex.MouseEvent) bool {
	wasDragging := w.dispatcher.Dragging()
	active, _ := w.dispatcher.Active()

	handled := w.dispatcher.Dispatch(ev)
	notified := w.dispatcher.TakeNotified()

	if ev.Action == flex.MouseRelease && wasDragging && active.Kind == flex.ResizeHandleKind {
		w.log.Debug("resize finished", "handle", active.Index, "tree", w.group.String())
	}
	if handled || notified {
		w.Render()
	}
	return handled
}

// DragHandle drags the divider with the given handle ID by distance cells
// along its axis, as a press, one motion and a release.
func (w *Workspace) DragHandle(id int, distance float64) error {
	if math.IsNaN(distance) || math.IsInf(distance, 0) {
		return fmt.Errorf("drag %d: distance %v is not finite", id, distance)
	}
	scene := w.dispatcher.Scene()
	if scene == nil {
		return fmt.Errorf("drag %d: nothing painted yet", id)
	}
	region, ok := scene.Region(flex.RegionID{Kind: flex.ResizeHandleKind, Index: id})
	if !ok {
		return fmt.Errorf("drag %d: no such resize handle", id)
	}
	start := region.Bounds.Origin.Add(geometry.Vec(region.Bounds.Width()/2, region.Bounds.Height()/2))
	delta := geometry.Vec(distance, 0)
	if scene.CursorAt(start) == flex.CursorResizeUpDown {
		delta = geometry.Vec(0, distance)
	}

	if top, ok := scene.RegionAt(start); !ok || top.ID != region.ID {
		return fmt.Errorf("drag %d: handle is covered", id)
	}

	w.Mouse(flex.MouseEvent{Action: flex.MousePress, Position: start})
	w.Mouse(flex.MouseEvent{Action: flex.MouseMotion, Position: start.Add(delta)})
	w.Mouse(flex.MouseEvent{Action: flex.MouseRelease, Position: start.Add(delta)})
	return nil
}

// Render lays the tree out at the current size, paints it, hands the scene to
// the dispatcher and rasterizes it. The result is also kept for Frame.
func (w *Workspace) Render() string {
	for id, p := range w.panes {
		p.SetFocused(id == w.focus.Current)
	}

	bounds := geometry.NewRect(0, 0, float64(w.width), float64(w.height))
	cx := &panegroup.RenderContext{
		Theme:     w.theme,
		Followers: w.followers,
		Presence:  w.presence,
		OnActivate: func(p panegroup.Pane) {
			if wp, ok := p.(Pane); ok {
				w.focus.SetFocus(wp.ID())
			}
		},
	}
	if w.zoomed != nil {
		cx.Zoomed = w.zoomed
	}

	root := flex.NewStack(w.group.Render(cx))
	if w.zoomed != nil {
		shield := flex.NewBox(nil).
			OnClick(flex.RegionID{Kind: zoomRegionKind}, func(flex.ClickEvent, *flex.EventContext) {})
		root.WithChild(shield).
			WithChild(flex.NewContainer(flex.NewBox(w.zoomed.Render), flex.BorderAll(1, lipgloss.Color(ColorHighlight))))
	}
	root.Layout(geometry.Strict(bounds.Size))

	scene := flex.NewScene(bounds)
	root.Paint(scene, geometry.Vector{}, bounds)
	w.dispatcher.SetScene(scene)
	w.frame = flex.Rasterize(scene, w.width, w.height)
	return w.frame
}

// Frame returns the last rendered frame.
func (w *Workspace) Frame() string { return w.frame }

// StaleCommandPanes returns command panes whose output no longer matches
// their size.
func (w *Workspace) StaleCommandPanes() []*CommandPane {
	var out []*CommandPane
	for _, p := range w.Panes() {
		if cp, ok := p.(*CommandPane); ok && cp.stale() {
			out = append(out, cp)
		}
	}
	return out
}

// SetCommandOutput stores captured output on the command pane with id.
func (w *Workspace) SetCommandOutput(msg CommandOutputMsg) {
	cp, ok := w.panes[msg.PaneID].(*CommandPane)
	if !ok {
		return
	}
	if msg.Err != nil {
		w.log.Warn("command failed", "pane", cp.Title(), "command", cp.Command, "error", msg.Err)
	}
	cp.setOutput(msg.Size, msg.Output, msg.Err)
	w.Render()
}

// ErrUnknownPane is returned by Run for a script naming a pane that does not
// exist.
var ErrUnknownPane = errors.New("unknown pane")

// Run applies script commands in order and stops at the first failure.
func (w *Workspace) Run(cmds []Command) error {
	for _, cmd := range cmds {
		if err := w.apply(cmd); err != nil {
			return fmt.Errorf("line %d: %s: %w", cmd.Line, cmd, err)
		}
	}
	return nil
}

func (w *Workspace) lookup(title string) (Pane, error) {
	p, ok := w.PaneByTitle(title)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPane, title)
	}
	return p, nil
}

func (w *Workspace) apply(cmd Command) error {
	switch cmd.Kind {
	case CmdSplit:
		target, err := w.lookup(cmd.Pane)
		if err != nil {
			return err
		}
		if _, exists := w.PaneByTitle(cmd.NewPane); exists {
			return fmt.Errorf("pane %q already exists", cmd.NewPane)
		}
		return w.Split(target, w.newPane(cmd.NewPane), cmd.Direction)
	case CmdRemove:
		p, err := w.lookup(cmd.Pane)
		if err != nil {
			return err
		}
		removed, err := w.Remove(p)
		if err == nil && !removed {
			return fmt.Errorf("cannot remove the last pane")
		}
		return err
	case CmdDrag:
		return w.DragHandle(cmd.Handle, cmd.Distance)
	case CmdFocus:
		p, err := w.lookup(cmd.Pane)
		if err != nil {
			return err
		}
		w.Focus(p)
	case CmdZoom:
		p, err := w.lookup(cmd.Pane)
		if err != nil {
			return err
		}
		w.Zoom(p)
	case CmdUnzoom:
		w.Unzoom()
	case CmdBalance:
		w.Balance()
	default:
		return fmt.Errorf("unsupported command %q", cmd.Kind)
	}
	return nil
}
