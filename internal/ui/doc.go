// Package ui is the Bubble Tea front end of the split workspace.
//
// Core pieces:
//   - Workspace: owns the pane tree, the focused pane and the zoom state, and
//     renders the tree into a frame through the flex scene rasterizer
//   - KeyHandler: SPC leader sequences dispatched through a KeybindRegistry
//   - FocusManager: tab order over pane IDs, kept in tree order
//   - Panes: text, markdown and command panes
//   - Script: a small command language that drives a Workspace headlessly
package ui
